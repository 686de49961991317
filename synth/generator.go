// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/ik5/audsynth/audio"
)

// DefaultAttenuationCycles is the fade length, in waveform cycles, used at
// both ends of a generated stream.
const DefaultAttenuationCycles = 2

// Option configures a Generator.
type Option interface {
	apply(*Generator)
}

type attenuationOption int

func (o attenuationOption) apply(g *Generator) {
	g.cycles = max(int(o), 0)
}

// WithAttenuationCycles sets how many cycles the fade-in and fade-out span.
// Zero disables fading.
func WithAttenuationCycles(n int) Option {
	return attenuationOption(n)
}

type randOption struct {
	rng *rand.Rand
}

func (o randOption) apply(g *Generator) {
	if o.rng != nil {
		g.rng = o.rng
	}
}

// WithRand sets the random source WhiteNoise draws from. Pass a seeded
// source for reproducible noise.
func WithRand(rng *rand.Rand) Option {
	return randOption{rng: rng}
}

// Generator synthesizes waveforms into audio streams. Every waveform except
// WhiteNoise is a pure function of the Generate arguments. A Generator is
// not safe for concurrent use when it produces WhiteNoise.
type Generator struct {
	cycles int
	rng    *rand.Rand
}

// NewGenerator returns a Generator with DefaultAttenuationCycles and a
// randomly seeded noise source unless options say otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{cycles: DefaultAttenuationCycles}
	for _, opt := range opts {
		opt.apply(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// AttenuationCycles returns the configured fade length in cycles.
func (g *Generator) AttenuationCycles() int { return g.cycles }

// Generate draws kind at frequency Hz for d, at amplitude percent of the
// format's full scale (sign ignored, capped at 100).
//
// The stream is padded past d so it ends on a whole cycle: a cycle is
// SampleRate/frequency samples (integer division, at least one), and
// cycle - (n mod cycle) samples are added to the n samples d needs. The
// first and last AttenuationCycles cycles fade linearly in and out.
// Every channel of a sample carries the same value.
func (g *Generator) Generate(f *audio.Format, kind Waveform, amplitude float64, d time.Duration, frequency float64) (*audio.Stream, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: %s", audio.ErrInvalidDuration, d)
	}
	if !(frequency > 0) || math.IsInf(frequency, 1) {
		return nil, fmt.Errorf("%w: %v Hz", ErrInvalidFrequency, frequency)
	}
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWaveform, kind)
	}

	rate := float64(f.SampleRate())
	if rate/frequency > audio.MaxSamples {
		return nil, fmt.Errorf("%w: %v Hz cycle is longer than %d samples", ErrInvalidFrequency, frequency, audio.MaxSamples)
	}
	cycle := max(int(rate/frequency), 1)
	total := f.SamplesIn(d)
	if total > audio.MaxSamples-cycle {
		return nil, fmt.Errorf("%w: %s is longer than %d samples", audio.ErrInvalidDuration, d, audio.MaxSamples)
	}
	n := total + cycle - total%cycle
	window := cycle * g.cycles

	peak := f.PeakAmplitude(amplitude)
	var noiseGain float64
	if f.MaxValue() > 0 {
		noiseGain = peak / float64(f.MaxValue())
	}

	s := audio.NewStream(f)
	for i := range n {
		var v float64
		switch kind {
		case Sine:
			v = peak * math.Sin(2*math.Pi*float64(i)*frequency/rate)
		case Sawtooth:
			if peak > 0 {
				v = math.Mod(peak*(2*float64(i)/float64(cycle)+1), 2*peak) - peak
			}
		case Square:
			if i%cycle*2 < cycle {
				v = peak
			} else {
				v = -peak
			}
		case Triangle:
			v = 2 * peak / math.Pi * math.Asin(math.Sin(2*math.Pi*frequency*float64(i)/rate))
		case WhiteNoise:
			span := f.MaxValue() - f.MinValue() + 1
			v = float64(f.MinValue()+g.rng.Int64N(span)) * noiseGain
		}

		s.Push(audio.NewSample(f, int64(v*fade(i, n, window))))
	}
	return s, nil
}

// fade returns the envelope factor for index i of n. Where the fade-in and
// fade-out overlap the quieter factor wins.
func fade(i, n, window int) float64 {
	if window <= 0 {
		return 1
	}

	factor := 1.0
	if i < window {
		factor = float64(i) / float64(window)
	}
	if remaining := n - 1 - i; remaining < window {
		factor = min(factor, float64(remaining)/float64(window))
	}
	return factor
}

// Generate draws a waveform with a default Generator.
func Generate(f *audio.Format, kind Waveform, amplitude float64, d time.Duration, frequency float64) (*audio.Stream, error) {
	return NewGenerator().Generate(f, kind, amplitude, d, frequency)
}
