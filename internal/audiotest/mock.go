// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/audsynth/audio"
)

// NewStream builds a stream of totalSamples samples whose channel values come
// from waveform(sample, channel).
func NewStream(f *audio.Format, totalSamples int, waveform func(sample int, channel int) int64) *audio.Stream {
	s := audio.NewStream(f)
	for i := range totalSamples {
		smp := audio.NewSample(f, 0)
		for ch := range f.Channels() {
			smp.SetChannel(ch, waveform(i, ch))
		}
		s.Push(smp)
	}
	return s
}

// NewSilentStream creates a stream of zeros.
func NewSilentStream(f *audio.Format, totalSamples int) *audio.Stream {
	return NewStream(f, totalSamples, func(int, int) int64 { return 0 })
}

// NewConstantStream creates a stream with every channel at value.
func NewConstantStream(f *audio.Format, totalSamples int, value int64) *audio.Stream {
	return NewStream(f, totalSamples, func(int, int) int64 { return value })
}

// NewRampStream creates a stream whose sample i holds i*step on every channel.
func NewRampStream(f *audio.Format, totalSamples int, step int64) *audio.Stream {
	return NewStream(f, totalSamples, func(i, _ int) int64 { return int64(i) * step })
}

// NewSineStream creates a sine wave at the format's full scale, without any
// fading.
func NewSineStream(f *audio.Format, totalSamples int, frequency float64) *audio.Stream {
	peak := float64(f.MaxValue())
	return NewStream(f, totalSamples, func(i, _ int) int64 {
		t := float64(i) / float64(f.SampleRate())
		return int64(peak * math.Sin(2*math.Pi*frequency*t))
	})
}

// Negate returns a copy of s with every channel value negated.
func Negate(s *audio.Stream) *audio.Stream {
	f := s.Format()
	return NewStream(f, s.Len(), func(i, ch int) int64 { return -s.At(i).Channel(ch) })
}

// Values returns the channel-0 values of s.
func Values(s *audio.Stream) []int64 {
	out := make([]int64, s.Len())
	for i := range out {
		out[i] = s.At(i).Channel(0)
	}
	return out
}
