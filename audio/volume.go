// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

// ChangeVolume scales every channel of s in place to percent of its current
// value. The percentage is absolute: its sign is dropped and it never goes
// above 100, so the call can only keep or lower the level. Results are
// truncated toward zero, which keeps scaling symmetric for positive and
// negative values.
func ChangeVolume(percent float64, s *Stream) error {
	if s.Len() == 0 {
		return ErrStreamEmpty
	}

	r := ratio(percent)
	f := s.format
	for i := range s.samples {
		smp := &s.samples[i]
		for ch := range f.channels {
			v := math.Trunc(float64(smp.Channel(ch)) * r)
			smp.SetChannel(ch, int64(v))
		}
	}
	return nil
}

// NormalizePeaks rescales s in place so that the magnitude of its loudest
// channel value lands exactly on the format's MaxValue. Every value is
// multiplied by MaxValue/peak in integer arithmetic and truncated toward
// zero, so nothing clips. Silent streams are left untouched.
func NormalizePeaks(s *Stream) error {
	if s.Len() == 0 {
		return ErrStreamEmpty
	}

	peak := s.Peak()
	if peak == 0 {
		return nil
	}

	f := s.format
	for i := range s.samples {
		smp := &s.samples[i]
		for ch := range f.channels {
			smp.SetChannel(ch, smp.Channel(ch)*f.maxValue/peak)
		}
	}
	return nil
}
