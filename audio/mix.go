// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"log/slog"
	"time"
)

// Track is one weighted input of Mix.
type Track struct {
	Weight float64
	Stream *Stream
}

// Placement is one input of Interlace: Stream starts at Start on the shared
// timeline and plays at Percent volume.
type Placement struct {
	Start   time.Duration
	Percent float64
	Stream  *Stream
}

// Mix adds the tracks together. Tracks that are empty, have a zero weight or
// use a format other than f are dropped. Each remaining track is scaled to
// its share of the total weight, so the contributions add up to at most
// 100%, and the sum is then scaled to peakPercent. The result is as long as
// the longest remaining track; shorter tracks are silent past their end.
//
// When nothing survives (or the weights do not add up to a positive value)
// Mix returns silence as long as the longest input. The inputs are not
// modified.
func Mix(f *Format, peakPercent float64, tracks ...Track) *Stream {
	longest := 0
	live := make([]Track, 0, len(tracks))
	var totalWeight float64

	for i, t := range tracks {
		if t.Stream == nil {
			continue
		}
		longest = max(longest, t.Stream.Len())

		switch {
		case t.Stream.Len() == 0:
			slog.Debug("audio: mix drop track", "track", i, "reason", "empty")
		case t.Weight == 0:
			slog.Debug("audio: mix drop track", "track", i, "reason", "zero weight")
		case !f.Equal(t.Stream.format):
			slog.Debug("audio: mix drop track", "track", i, "reason", "format",
				"want", f, "got", t.Stream.format)
		default:
			live = append(live, t)
			totalWeight += t.Weight
		}
	}

	if len(live) == 0 || totalWeight <= 0 {
		return silence(f, longest)
	}

	longest = 0
	scaled := make([]*Stream, len(live))
	for i, t := range live {
		s := t.Stream.Clone()
		// Clone of a non-empty stream, cannot fail.
		_ = ChangeVolume(t.Weight/totalWeight*100, s)
		scaled[i] = s
		longest = max(longest, s.Len())
	}

	out := &Stream{format: f, samples: make([]Sample, longest)}
	column := make([]Sample, 0, len(scaled))
	for i := range longest {
		column = column[:0]
		for _, s := range scaled {
			if i < s.Len() {
				column = append(column, s.samples[i])
			}
		}
		out.samples[i] = Combine(f, column...)
	}

	_ = ChangeVolume(peakPercent, out)
	return out
}

// Interlace lays each placement on a shared timeline and sums the overlaps
// the way Mix does, with one clip per output sample. The output runs until
// the last kept placement ends. Every kept placement is scaled to its own
// Percent first and the whole result is then scaled to peakPercent.
// Placements that are empty or use a format other than f are dropped and do
// not extend the timeline. A negative start, or a timeline longer than
// MaxSamples, fails with ErrInvalidDuration.
func Interlace(f *Format, peakPercent float64, placements ...Placement) (*Stream, error) {
	live := make([]Placement, 0, len(placements))
	length := 0
	for i, p := range placements {
		if p.Start < 0 {
			return nil, fmt.Errorf("%w: placement %d starts at %s", ErrInvalidDuration, i, p.Start)
		}

		switch {
		case p.Stream == nil || p.Stream.Len() == 0:
			slog.Debug("audio: interlace drop placement", "placement", i, "reason", "empty")
			continue
		case !f.Equal(p.Stream.format):
			slog.Debug("audio: interlace drop placement", "placement", i, "reason", "format",
				"want", f, "got", p.Stream.format)
			continue
		}

		start := f.SamplesIn(p.Start)
		if start > MaxSamples-p.Stream.Len() {
			return nil, fmt.Errorf("%w: placement %d ends past %d samples", ErrInvalidDuration, i, MaxSamples)
		}
		length = max(length, start+p.Stream.Len())
		live = append(live, p)
	}

	acc := make([]int64, length*f.channels)
	for _, p := range live {
		s := p.Stream.Clone()
		_ = ChangeVolume(p.Percent, s)

		base := f.SamplesIn(p.Start) * f.channels
		for j := range s.samples {
			for ch := range f.channels {
				acc[base+j*f.channels+ch] += s.samples[j].Channel(ch)
			}
		}
	}

	out := silence(f, length)
	if len(live) == 0 || length == 0 {
		return out, nil
	}

	for i := range out.samples {
		for ch := range f.channels {
			out.samples[i].SetChannel(ch, acc[i*f.channels+ch])
		}
	}
	_ = ChangeVolume(peakPercent, out)
	return out, nil
}
