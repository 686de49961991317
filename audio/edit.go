// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"log/slog"
	"time"
)

// Part is one stream handed to Append, optionally rescaled first.
type Part struct {
	Stream     *Stream
	Percent    float64
	HasPercent bool
}

// Whole appends s at its current level.
func Whole(s *Stream) Part { return Part{Stream: s} }

// Scaled appends s after scaling it to percent (see ChangeVolume).
func Scaled(percent float64, s *Stream) Part {
	return Part{Stream: s, Percent: percent, HasPercent: true}
}

// Append concatenates the parts onto base, in order. Parts that are empty or
// use another format are skipped. base is modified in place; the appended
// samples are copies, and the parts themselves are left as they were.
func Append(base *Stream, parts ...Part) error {
	if base.Len() == 0 {
		return ErrStreamEmpty
	}

	for i, p := range parts {
		switch {
		case p.Stream == nil || p.Stream.Len() == 0:
			slog.Debug("audio: append skip part", "part", i, "reason", "empty")
			continue
		case !base.format.Equal(p.Stream.format):
			slog.Debug("audio: append skip part", "part", i, "reason", "format",
				"want", base.format, "got", p.Stream.format)
			continue
		}

		percent := 100.0
		if p.HasPercent {
			percent = p.Percent
		}

		s := p.Stream.Clone()
		if err := ChangeVolume(percent, s); err != nil {
			return fmt.Errorf("append part %d: %w", i, err)
		}
		base.samples = append(base.samples, s.samples...)
	}
	return nil
}

// Crop shortens s in place to d, dropping the tail. A stream that already
// fits in d is left alone; Crop never pads.
func Crop(s *Stream, d time.Duration) error {
	if s.Len() == 0 {
		return ErrStreamEmpty
	}
	if d <= 0 {
		return fmt.Errorf("%w: crop to %s", ErrInvalidDuration, d)
	}

	if d >= s.Duration() {
		return nil
	}
	if n := s.format.SamplesIn(d); n < s.Len() {
		s.truncate(n)
	}
	return nil
}

// Silence returns ceil(d * SampleRate) zero samples.
func Silence(f *Format, d time.Duration) *Stream {
	return silence(f, f.SamplesIn(d))
}

func silence(f *Format, n int) *Stream {
	s := &Stream{format: f, samples: make([]Sample, n)}
	for i := range s.samples {
		s.samples[i] = NewSample(f, 0)
	}
	return s
}
