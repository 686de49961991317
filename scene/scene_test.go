// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/synth"
)

const exampleScene = `
format: {sample_rate: 8000, bit_depth: 16, channels: 1}
mode: Interlace
peak: 90
crop: 2s
normalize: true
seed: 7
attenuation_cycles: 1
tracks:
  - name: a
    wave: square
    frequency: 440
    amplitude: 80
    duration: 1s
    volume: 50
    start: 250ms
  - name: b
    note: C#5
    duration: 100ms
  - name: c
    wave: triangle
    notes: [A4, rest, E5]
    duration: 50ms
`

func mustLoad(t *testing.T, src string) *Scene {
	t.Helper()

	s, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func TestLoad(t *testing.T) {
	t.Parallel()

	s := mustLoad(t, exampleScene)

	if !s.AudioFormat().Equal(audio.MustFormat(8000, 16, 1)) {
		t.Errorf("AudioFormat() = %v", s.AudioFormat())
	}
	if s.Mode != ModeInterlace {
		t.Errorf("Mode = %q, want %q", s.Mode, ModeInterlace)
	}
	if s.Peak == nil || *s.Peak != 90 {
		t.Errorf("Peak = %v, want 90", s.Peak)
	}
	if s.crop != 2*time.Second || !s.Normalize {
		t.Errorf("crop = %s, normalize = %v", s.crop, s.Normalize)
	}
	if s.Seed == nil || *s.Seed != 7 || s.AttenuationCycles == nil || *s.AttenuationCycles != 1 {
		t.Errorf("Seed = %v, AttenuationCycles = %v", s.Seed, s.AttenuationCycles)
	}
	if len(s.Tracks) != 3 {
		t.Fatalf("len(Tracks) = %d, want 3", len(s.Tracks))
	}

	a := s.Tracks[0]
	if a.wave != synth.Square || a.duration != time.Second || a.start != 250*time.Millisecond {
		t.Errorf("track a = %v %s %s", a.wave, a.duration, a.start)
	}
	if a.Amplitude == nil || *a.Amplitude != 80 || a.Volume == nil || *a.Volume != 50 {
		t.Errorf("track a amplitude = %v, volume = %v", a.Amplitude, a.Volume)
	}

	b := s.Tracks[1]
	if b.wave != synth.Sine || len(b.tones) != 1 || int(b.tones[0].Frequency) != 554 {
		t.Errorf("track b = %v %v", b.wave, b.tones)
	}

	c := s.Tracks[2]
	if len(c.tones) != 3 || c.tones[1].Frequency != synth.Rest || c.tones[2].Duration != 50*time.Millisecond {
		t.Errorf("track c tones = %v", c.tones)
	}
}

func TestLoad_DefaultMode(t *testing.T) {
	t.Parallel()

	s := mustLoad(t, `
format: {sample_rate: 8000, bit_depth: 8, channels: 2}
tracks:
  - {wave: saw, frequency: 100, duration: 1s}
`)
	if s.Mode != ModeMix {
		t.Errorf("Mode = %q, want %q", s.Mode, ModeMix)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	const format = "format: {sample_rate: 8000, bit_depth: 16, channels: 1}\n"

	tests := []struct {
		name string
		src  string
		want error
	}{
		{"bad format", "format: {sample_rate: 0, bit_depth: 16, channels: 1}\ntracks: [{frequency: 1, duration: 1s}]", audio.ErrInvalidFormat},
		{"unknown mode", format + "mode: shuffle\ntracks: [{frequency: 1, duration: 1s}]", ErrUnknownMode},
		{"no tracks", format, ErrNoTracks},
		{"unknown field", format + "volume: 3\ntracks: [{frequency: 1, duration: 1s}]", ErrInvalidScene},
		{"bad crop", format + "crop: -1s\ntracks: [{frequency: 1, duration: 1s}]", audio.ErrInvalidDuration},
		{"missing duration", format + "tracks: [{frequency: 440}]", ErrInvalidScene},
		{"zero duration", format + "tracks: [{frequency: 440, duration: 0s}]", audio.ErrInvalidDuration},
		{"bad start", format + "tracks: [{frequency: 440, duration: 1s, start: soon}]", ErrInvalidScene},
		{"bad wave", format + "tracks: [{wave: organ, frequency: 440, duration: 1s}]", synth.ErrInvalidWaveform},
		{"bad note", format + "tracks: [{note: H2, duration: 1s}]", synth.ErrInvalidNote},
		{"no frequency", format + "tracks: [{wave: sine, duration: 1s}]", synth.ErrInvalidFrequency},
		{"note and frequency", format + "tracks: [{note: A4, frequency: 440, duration: 1s}]", ErrInvalidScene},
		{"file and wave", format + "tracks: [{file: a.wav, wave: sine}]", ErrInvalidScene},
		{"not yaml", "format: [", ErrInvalidScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Load(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
			if s != nil {
				t.Error("Load() returned a scene on error")
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile("testdata/does-not-exist.yaml"); err == nil {
		t.Error("LoadFile() of a missing file succeeded")
	}
}
