// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/internal/audiotest"
)

func TestChangeVolume_Empty(t *testing.T) {
	t.Parallel()

	s := audio.NewStream(audio.MustFormat(8000, 16, 1))
	if err := audio.ChangeVolume(50, s); !errors.Is(err, audio.ErrStreamEmpty) {
		t.Errorf("ChangeVolume() error = %v, want ErrStreamEmpty", err)
	}
}

func TestChangeVolume(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(8000, 16, 1)

	tests := []struct {
		name    string
		percent float64
		in      int64
		want    int64
	}{
		{"unity", 100, 12345, 12345},
		{"half", 50, 1001, 500},
		{"half negative truncates toward zero", 50, -1001, -500},
		{"negative percent uses magnitude", -50, 1000, 500},
		{"above 100 is capped", 400, 1000, 1000},
		{"mute", 0, 32767, 0},
		{"quarter", 25, -32768, -8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := audiotest.NewConstantStream(f, 3, tt.in)
			if err := audio.ChangeVolume(tt.percent, s); err != nil {
				t.Fatalf("ChangeVolume() error = %v", err)
			}
			for i, v := range audiotest.Values(s) {
				if v != tt.want {
					t.Errorf("sample %d = %d, want %d", i, v, tt.want)
				}
			}
		})
	}
}

func TestChangeVolume_UnityIsIdempotent(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(44100, 24, 2)
	s := audiotest.NewSineStream(f, 500, 1000)
	want := s.Payload()

	for range 2 {
		if err := audio.ChangeVolume(100, s); err != nil {
			t.Fatalf("ChangeVolume() error = %v", err)
		}
	}
	if !slices.Equal(s.Payload(), want) {
		t.Error("ChangeVolume(100) twice changed the stream")
	}
}

func TestNormalizePeaks(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(8000, 16, 1)
	s := audiotest.NewStream(f, 4, func(i, _ int) int64 {
		return []int64{0, 100, -200, 50}[i]
	})

	if err := audio.NormalizePeaks(s); err != nil {
		t.Fatalf("NormalizePeaks() error = %v", err)
	}

	want := []int64{0, 16383, -32767, 8191}
	if got := audiotest.Values(s); !slices.Equal(got, want) {
		t.Errorf("NormalizePeaks() = %v, want %v", got, want)
	}
	if s.Peak() != f.MaxValue() {
		t.Errorf("Peak() = %d, want %d", s.Peak(), f.MaxValue())
	}
}

func TestNormalizePeaks_FullScaleNegative(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(8000, 8, 1)
	s := audiotest.NewStream(f, 2, func(i, _ int) int64 {
		return []int64{-128, 64}[i]
	})

	if err := audio.NormalizePeaks(s); err != nil {
		t.Fatalf("NormalizePeaks() error = %v", err)
	}
	// gain = 127/128
	if got, want := audiotest.Values(s), []int64{-127, 63}; !slices.Equal(got, want) {
		t.Errorf("NormalizePeaks() = %v, want %v", got, want)
	}
}

func TestNormalizePeaks_SilenceAndEmpty(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(8000, 16, 1)

	s := audiotest.NewSilentStream(f, 10)
	if err := audio.NormalizePeaks(s); err != nil {
		t.Fatalf("NormalizePeaks() error = %v", err)
	}
	if s.Peak() != 0 {
		t.Error("NormalizePeaks() changed a silent stream")
	}

	if err := audio.NormalizePeaks(audio.NewStream(f)); !errors.Is(err, audio.ErrStreamEmpty) {
		t.Errorf("NormalizePeaks() error = %v, want ErrStreamEmpty", err)
	}
}
