// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audsynth/audio"
)

// Encode writes s as a PCM WAV file. The go-audio encoder patches the chunk
// sizes once the data is written, so ws has to be seekable (a file); use
// WriteStream for pipes. Only 8, 16, 24 and 32-bit formats are supported.
func Encode(ws io.WriteSeeker, s *audio.Stream) error {
	if s.Len() == 0 {
		return audio.ErrStreamEmpty
	}

	f := s.Format()
	if !supportedDepth(f.BitDepth()) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, f.BitDepth())
	}

	data := s.Ints()
	if f.BitDepth() == 8 {
		for i := range data {
			data[i] += 128
		}
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: f.Channels(),
			SampleRate:  f.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: f.BitDepth(),
	}

	enc := wav.NewEncoder(ws, f.SampleRate(), f.BitDepth(), f.Channels(), formatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
