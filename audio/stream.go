// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Stream is a finite sequence of samples in playback order. It owns its
// samples: nothing handed out by a Stream is shared with another Stream.
type Stream struct {
	format  *Format
	samples []Sample
}

// NewStream builds a stream over f. The given samples are copied.
func NewStream(f *Format, samples ...Sample) *Stream {
	s := &Stream{
		format:  f,
		samples: make([]Sample, 0, len(samples)),
	}
	for i := range samples {
		s.samples = append(s.samples, samples[i].Clone())
	}
	return s
}

// FromPayload decodes a packed byte payload (the layout Payload produces).
func FromPayload(f *Format, data []byte) (*Stream, error) {
	frame := f.FrameSize()
	if len(data)%frame != 0 {
		return nil, fmt.Errorf("%w: %d bytes, frame %d", ErrInvalidPayload, len(data), frame)
	}

	s := &Stream{
		format:  f,
		samples: make([]Sample, len(data)/frame),
	}
	for i := range s.samples {
		buf := make([]byte, frame)
		copy(buf, data[i*frame:])
		s.samples[i] = Sample{format: f, data: buf}
	}
	return s, nil
}

// FromInts builds a stream from interleaved channel values, as found in a
// go-audio IntBuffer. Values are clipped to f.
func FromInts(f *Format, data []int) (*Stream, error) {
	if len(data)%f.channels != 0 {
		return nil, fmt.Errorf("%w: %d values, channels %d", ErrInvalidPayload, len(data), f.channels)
	}

	s := &Stream{
		format:  f,
		samples: make([]Sample, len(data)/f.channels),
	}
	for i := range s.samples {
		smp := NewSample(f, 0)
		for ch := range f.channels {
			smp.SetChannel(ch, int64(data[i*f.channels+ch]))
		}
		s.samples[i] = smp
	}
	return s, nil
}

func (s *Stream) Format() *Format { return s.format }
func (s *Stream) Len() int        { return len(s.samples) }

// At returns the sample at index i for in-place edits.
func (s *Stream) At(i int) *Sample { return &s.samples[i] }

// Push appends a copy of smp.
func (s *Stream) Push(smp Sample) {
	s.samples = append(s.samples, smp.Clone())
}

// Duration is Len divided by the sample rate.
func (s *Stream) Duration() time.Duration {
	return s.format.DurationOf(len(s.samples))
}

// Clone deep-copies the stream.
func (s *Stream) Clone() *Stream {
	return NewStream(s.format, s.samples...)
}

// Peak returns the largest absolute channel value in the stream.
func (s *Stream) Peak() int64 {
	var peak int64
	for i := range s.samples {
		for ch := range s.format.channels {
			v := s.samples[i].Channel(ch)
			if v < 0 {
				v = -v
			}
			peak = max(peak, v)
		}
	}
	return peak
}

// Ints flattens the stream to interleaved channel values.
func (s *Stream) Ints() []int {
	out := make([]int, 0, len(s.samples)*s.format.channels)
	for i := range s.samples {
		for ch := range s.format.channels {
			out = append(out, int(s.samples[i].Channel(ch)))
		}
	}
	return out
}

// Payload concatenates every sample's packed bytes. This is the body a PCM
// container stores.
func (s *Stream) Payload() []byte {
	out := make([]byte, 0, len(s.samples)*s.format.FrameSize())
	for i := range s.samples {
		out = append(out, s.samples[i].data...)
	}
	return out
}

// WriteTo writes the payload to w in chunks of about 8KB.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	const chunkSize = 8192

	frame := s.format.FrameSize()
	buf := make([]byte, 0, min(len(s.samples)*frame, chunkSize)+frame)

	var written int64
	flush := func() error {
		n, err := w.Write(buf)
		written += int64(n)
		buf = buf[:0]
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		return nil
	}

	for i := range s.samples {
		buf = append(buf, s.samples[i].data...)
		if len(buf) >= chunkSize {
			if err := flush(); err != nil {
				return written, err
			}
		}
	}
	if len(buf) > 0 {
		if err := flush(); err != nil {
			return written, err
		}
	}
	return written, nil
}

// truncate keeps the first n samples.
func (s *Stream) truncate(n int) {
	clear(s.samples[n:])
	s.samples = s.samples[:n]
}
