// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Sample holds every channel of one time instant. Each channel takes
// BytesPerSample bytes stored little-endian, channel after channel.
type Sample struct {
	format *Format
	data   []byte
}

// NewSample returns a sample with all channels set to initial (clipped).
func NewSample(f *Format, initial int64) Sample {
	s := Sample{
		format: f,
		data:   make([]byte, f.FrameSize()),
	}
	if initial != 0 {
		for ch := range f.channels {
			s.SetChannel(ch, initial)
		}
	}
	return s
}

// Format returns the sample's format.
func (s *Sample) Format() *Format { return s.format }

// Bytes exposes the packed buffer. It is owned by the sample.
func (s *Sample) Bytes() []byte { return s.data }

// Clone returns a copy that shares nothing with s.
func (s *Sample) Clone() Sample {
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return Sample{format: s.format, data: data}
}

// SetChannel clips v to the format bounds and stores it in channel ch.
func (s *Sample) SetChannel(ch int, v int64) {
	off := s.offset(ch)
	v = s.format.Clip(v)

	for i := range s.format.bytesPerSample {
		s.data[off+i] = byte(v >> (8 * i))
	}
}

// Channel decodes channel ch, sign-extending from the most significant
// stored byte.
func (s *Sample) Channel(ch int) int64 {
	off := s.offset(ch)
	width := s.format.bytesPerSample

	var u uint64
	for i := range width {
		u |= uint64(s.data[off+i]) << (8 * i)
	}

	// Missing high-order bytes are 0xFF when the stored sign bit is set.
	if s.data[off+width-1]&0x80 != 0 {
		u |= ^uint64(0) << (8 * width)
	}
	return int64(u)
}

func (s *Sample) offset(ch int) int {
	if ch < 0 || ch >= s.format.channels {
		panic(fmt.Errorf("%w: %d (channels %d)", ErrIndexOutOfRange, ch, s.format.channels))
	}
	return ch * s.format.bytesPerSample
}

// Combine adds the samples together channel by channel. The sums are kept
// unclipped until they are written into the returned sample.
func Combine(f *Format, samples ...Sample) Sample {
	sums := make([]int64, f.channels)
	for i := range samples {
		for ch := range f.channels {
			sums[ch] += samples[i].Channel(ch)
		}
	}

	out := NewSample(f, 0)
	for ch, v := range sums {
		out.SetChannel(ch, v)
	}
	return out
}
