// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/audsynth/audio"
)

// Rest is the frequency of a silent Tone.
const Rest = 0.0

// Tone is one step of a melody.
type Tone struct {
	Frequency float64 // Hz, Rest for silence
	Duration  time.Duration
}

// Sequence renders the tones one after the other. Rests become silence of
// the tone's duration; every other tone is generated (and padded to a whole
// cycle) as Generate does.
func (g *Generator) Sequence(f *audio.Format, kind Waveform, amplitude float64, tones ...Tone) (*audio.Stream, error) {
	if len(tones) == 0 {
		return nil, ErrNoTones
	}

	var out *audio.Stream
	for i, tone := range tones {
		s, err := g.tone(f, kind, amplitude, tone)
		if err != nil {
			return nil, fmt.Errorf("tone %d: %w", i, err)
		}

		if out == nil {
			out = s
			continue
		}
		if err := audio.Append(out, audio.Whole(s)); err != nil {
			return nil, fmt.Errorf("tone %d: %w", i, err)
		}
	}
	return out, nil
}

func (g *Generator) tone(f *audio.Format, kind Waveform, amplitude float64, t Tone) (*audio.Stream, error) {
	if t.Frequency != Rest {
		return g.Generate(f, kind, amplitude, t.Duration, t.Frequency)
	}
	if t.Duration <= 0 || f.SamplesIn(t.Duration) > audio.MaxSamples {
		return nil, fmt.Errorf("%w: rest of %s", audio.ErrInvalidDuration, t.Duration)
	}
	return audio.Silence(f, t.Duration), nil
}

var noteOffsets = map[byte]int{
	'c': -9, 'd': -7, 'e': -5, 'f': -4, 'g': -2, 'a': 0, 'b': 2,
}

// NoteFrequency returns the equal-tempered frequency of a note name such as
// "A4" (440 Hz), "C#5" or "Eb3". "rest" maps to Rest.
func NoteFrequency(name string) (float64, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "rest" {
		return Rest, nil
	}
	if len(n) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}

	semitones, ok := noteOffsets[n[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}

	rest := n[1:]
	switch rest[0] {
	case '#', 's':
		semitones++
		rest = rest[1:]
	case 'b':
		semitones--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil || octave < 0 || octave > 9 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNote, name)
	}

	semitones += (octave - 4) * 12
	return 440 * math.Pow(2, float64(semitones)/12), nil
}
