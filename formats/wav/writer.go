// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audsynth/audio"
)

const headerSize = 44

// WriteStream writes s as a PCM WAV file to any writer, stdout included.
// The header is built up front, so it works for every bit depth the audio
// package supports. Depths that do not fill their bytes are stored
// left-justified, and depths up to 8 bits are written unsigned, as WAV
// expects.
func WriteStream(w io.Writer, s *audio.Stream) error {
	f := s.Format()

	dataSize := uint64(s.Len()) * uint64(f.FrameSize())
	if dataSize > math.MaxUint32-(headerSize-8) {
		return fmt.Errorf("%w: %d bytes", ErrStreamTooLarge, dataSize)
	}

	if _, err := w.Write(header(f, uint32(dataSize))); err != nil {
		return fmt.Errorf("%w", err)
	}

	shift := f.BytesPerSample()*8 - f.BitDepth()
	if shift == 0 && f.BitDepth() > 8 {
		if _, err := s.WriteTo(w); err != nil {
			return fmt.Errorf("%w", err)
		}
		return nil
	}

	return writeRepacked(w, s, shift)
}

func header(f *audio.Format, dataSize uint32) []byte {
	h := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], headerSize-8+dataSize)
	copy(h[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], formatPCM)
	binary.LittleEndian.PutUint16(h[22:24], uint16(f.Channels()))
	binary.LittleEndian.PutUint32(h[24:28], uint32(f.SampleRate()))
	binary.LittleEndian.PutUint32(h[28:32], uint32(f.SampleRate()*f.FrameSize()))
	binary.LittleEndian.PutUint16(h[32:34], uint16(f.FrameSize()))
	binary.LittleEndian.PutUint16(h[34:36], uint16(f.BitDepth()))

	// data chunk header (8 bytes)
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)

	return h
}

// writeRepacked writes samples whose stored bytes differ from the in-memory
// layout, in chunks of about 8KB.
func writeRepacked(w io.Writer, s *audio.Stream, shift int) error {
	const chunkSize = 8192

	f := s.Format()
	width := f.BytesPerSample()
	unsigned := f.BitDepth() <= 8

	buf := make([]byte, 0, chunkSize+f.FrameSize())
	for i := range s.Len() {
		smp := s.At(i)
		for ch := range f.Channels() {
			v := smp.Channel(ch) << shift
			for b := range width {
				buf = append(buf, byte(v>>(8*b)))
			}
			if unsigned {
				buf[len(buf)-1] ^= 0x80
			}
		}

		if len(buf) >= chunkSize {
			if _, err := w.Write(buf); err != nil {
				return fmt.Errorf("%w", err)
			}
			buf = buf[:0]
		}
	}

	if len(buf) > 0 {
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}
