// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/internal/audiotest"
)

func TestAppend(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(8000, 16, 1)
	base := audiotest.NewConstantStream(f, 2, 1)
	a := audiotest.NewConstantStream(f, 3, 2)
	b := audiotest.NewConstantStream(f, 1, 400)

	if err := audio.Append(base, audio.Whole(a), audio.Scaled(50, b)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	want := []int64{1, 1, 2, 2, 2, 200}
	if got := audiotest.Values(base); !slices.Equal(got, want) {
		t.Errorf("Append() = %v, want %v", got, want)
	}
	if b.At(0).Channel(0) != 400 {
		t.Error("Append() rescaled the caller's stream")
	}
}

func TestAppend_LengthLaw(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(44100, 24, 2)
	base := audiotest.NewRampStream(f, 10, 7)
	parts := []*audio.Stream{
		audiotest.NewRampStream(f, 25, 1),
		audiotest.NewSilentStream(f, 1),
		audiotest.NewSineStream(f, 300, 220),
	}

	want := base.Len()
	args := make([]audio.Part, 0, len(parts))
	for _, p := range parts {
		want += p.Len()
		args = append(args, audio.Whole(p))
	}

	if err := audio.Append(base, args...); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if base.Len() != want {
		t.Errorf("Len() = %d, want %d", base.Len(), want)
	}
}

func TestAppend_SkipsNonConforming(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(8000, 16, 1)
	base := audiotest.NewConstantStream(f, 1, 5)

	err := audio.Append(base,
		audio.Whole(audio.NewStream(f)),
		audio.Whole(nil),
		audio.Whole(audiotest.NewConstantStream(audio.MustFormat(8000, 16, 2), 4, 9)),
		audio.Whole(audiotest.NewConstantStream(f, 1, 6)),
	)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if got, want := audiotest.Values(base), []int64{5, 6}; !slices.Equal(got, want) {
		t.Errorf("Append() = %v, want %v", got, want)
	}
}

func TestAppend_EmptyBase(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(8000, 16, 1)
	err := audio.Append(audio.NewStream(f), audio.Whole(audiotest.NewConstantStream(f, 2, 1)))
	if !errors.Is(err, audio.ErrStreamEmpty) {
		t.Errorf("Append() error = %v, want ErrStreamEmpty", err)
	}
}

func TestCrop(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(1000, 16, 1)

	tests := []struct {
		name    string
		length  int
		d       time.Duration
		wantLen int
	}{
		{"shorter", 10, 4 * time.Millisecond, 4},
		{"partial sample rounds up", 10, 4*time.Millisecond + time.Microsecond, 5},
		{"exact fit", 10, 10 * time.Millisecond, 10},
		{"never pads", 10, time.Second, 10},
		{"hours past the end", 10, 100 * time.Hour, 10},
		{"longest duration", 10, math.MaxInt64, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := audiotest.NewRampStream(f, tt.length, 1)
			if err := audio.Crop(s, tt.d); err != nil {
				t.Fatalf("Crop() error = %v", err)
			}
			if s.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", s.Len(), tt.wantLen)
			}
			for i, v := range audiotest.Values(s) {
				if v != int64(i) {
					t.Errorf("sample %d = %d, want the original head", i, v)
				}
			}
		})
	}
}

func TestCrop_Errors(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(1000, 16, 1)

	if err := audio.Crop(audio.NewStream(f), time.Second); !errors.Is(err, audio.ErrStreamEmpty) {
		t.Errorf("Crop(empty) error = %v, want ErrStreamEmpty", err)
	}
	for _, d := range []time.Duration{0, -time.Second} {
		s := audiotest.NewSilentStream(f, 5)
		if err := audio.Crop(s, d); !errors.Is(err, audio.ErrInvalidDuration) {
			t.Errorf("Crop(%s) error = %v, want ErrInvalidDuration", d, err)
		}
		if s.Len() != 5 {
			t.Errorf("Crop(%s) changed the stream length to %d", d, s.Len())
		}
	}
}

func TestSilence(t *testing.T) {
	t.Parallel()

	f := audio.MustFormat(8000, 16, 2)

	tests := []struct {
		d    time.Duration
		want int
	}{
		{time.Second, 8000},
		{10 * time.Millisecond, 80},
		{time.Microsecond, 1},
		{0, 0},
		{-time.Second, 0},
	}

	for _, tt := range tests {
		s := audio.Silence(f, tt.d)
		if s.Len() != tt.want {
			t.Errorf("Silence(%s) Len() = %d, want %d", tt.d, s.Len(), tt.want)
		}
		if s.Peak() != 0 {
			t.Errorf("Silence(%s) is not silent", tt.d)
		}
		if !s.Format().Equal(f) {
			t.Errorf("Silence(%s) format = %v", tt.d, s.Format())
		}
	}
}
