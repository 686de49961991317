// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audsynth/audio"
)

// go-mp3 always produces interleaved 16-bit little-endian stereo.
const (
	bitDepth = 16
	channels = 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder decodes MP3 files into 16-bit stereo streams at the file's
// sample rate.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}
	return decode(dec)
}

func decode(dec mp3Reader) (*audio.Stream, error) {
	f, err := audio.NewFormat(dec.SampleRate(), bitDepth, channels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	// The payload layout already matches audio.Stream.
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	data = data[:len(data)-len(data)%f.FrameSize()]

	return audio.FromPayload(f, data)
}
