// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ik5/audsynth"
	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/synth"
)

// Render builds every track and combines them according to the scene's
// mode. The result is then scaled to Peak (mix and interlace do this while
// combining), cropped, and normalized when asked for.
func (s *Scene) Render(ctx context.Context) (*audio.Stream, error) {
	gen := s.generator()
	reg := audsynth.NewRegistry(s.format.BitDepth())

	streams := make([]*audio.Stream, len(s.Tracks))
	for i := range s.Tracks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t := &s.Tracks[i]
		st, err := s.renderTrack(gen, reg, t)
		if err != nil {
			return nil, fmt.Errorf("track %s: %w", t.label(i), err)
		}
		slog.Debug("scene: track rendered", "track", t.label(i), "samples", st.Len())
		streams[i] = st
	}

	peak := valueOr(s.Peak, 100)

	var (
		out *audio.Stream
		err error
	)
	switch s.Mode {
	case ModeAppend:
		out, err = s.appendTracks(streams, peak)
	case ModeInterlace:
		out, err = s.interlaceTracks(streams, peak)
	default:
		out = s.mixTracks(streams, peak)
	}
	if err != nil {
		return nil, err
	}

	if s.crop > 0 && out.Len() > 0 {
		if err := audio.Crop(out, s.crop); err != nil {
			return nil, err
		}
	}
	if s.Normalize && out.Len() > 0 {
		if err := audio.NormalizePeaks(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Scene) renderTrack(gen *synth.Generator, reg *audio.Registry, t *Track) (*audio.Stream, error) {
	if t.File == "" {
		return gen.Sequence(s.format, t.wave, valueOr(t.Amplitude, 100), t.tones...)
	}

	st, err := audsynth.DecodeFile(reg, s.resolve(t.File))
	if err != nil {
		return nil, err
	}
	if !st.Format().Equal(s.format) {
		return nil, fmt.Errorf("%w: %s is %v, scene is %v", ErrFormatMismatch, t.File, st.Format(), s.format)
	}
	if t.duration > 0 && st.Len() > 0 {
		if err := audio.Crop(st, t.duration); err != nil {
			return nil, err
		}
	}
	if t.Amplitude != nil && st.Len() > 0 {
		if err := audio.ChangeVolume(*t.Amplitude, st); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (s *Scene) mixTracks(streams []*audio.Stream, peak float64) *audio.Stream {
	tracks := make([]audio.Track, len(streams))
	for i, st := range streams {
		tracks[i] = audio.Track{Weight: valueOr(s.Tracks[i].Weight, 1), Stream: st}
	}
	return audio.Mix(s.format, peak, tracks...)
}

func (s *Scene) appendTracks(streams []*audio.Stream, peak float64) (*audio.Stream, error) {
	out := streams[0]
	if v := s.Tracks[0].Volume; v != nil && out.Len() > 0 {
		if err := audio.ChangeVolume(*v, out); err != nil {
			return nil, err
		}
	}

	parts := make([]audio.Part, 0, len(streams)-1)
	for i, st := range streams[1:] {
		if v := s.Tracks[i+1].Volume; v != nil {
			parts = append(parts, audio.Scaled(*v, st))
			continue
		}
		parts = append(parts, audio.Whole(st))
	}
	if err := audio.Append(out, parts...); err != nil {
		return nil, err
	}

	if peak != 100 {
		if err := audio.ChangeVolume(peak, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Scene) interlaceTracks(streams []*audio.Stream, peak float64) (*audio.Stream, error) {
	placements := make([]audio.Placement, len(streams))
	for i, st := range streams {
		t := &s.Tracks[i]
		placements[i] = audio.Placement{
			Start:   t.start,
			Percent: valueOr(t.Volume, 100),
			Stream:  st,
		}
	}
	return audio.Interlace(s.format, peak, placements...)
}
