// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audsynth/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decoder reads PCM WAV files with 8, 16, 24 or 32 bits per sample.
type Decoder struct{}

// Decode reads the whole file into a Stream. Readers that cannot seek are
// buffered in memory first.
func (Decoder) Decode(r io.Reader) (*audio.Stream, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		rs = bytes.NewReader(data)
	}

	d := wav.NewDecoder(rs)
	if !d.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if d.WavAudioFormat != formatPCM && d.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedWavLayout, d.WavAudioFormat)
	}
	if !supportedDepth(int(d.BitDepth)) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, d.BitDepth)
	}

	f, err := audio.NewFormat(int(d.SampleRate), int(d.BitDepth), int(d.NumChans))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	data := buf.Data[:len(buf.Data)-len(buf.Data)%f.Channels()]
	if f.BitDepth() == 8 {
		// 8-bit WAV samples are unsigned
		for i := range data {
			data[i] -= 128
		}
	}

	return audio.FromInts(f, data)
}

func supportedDepth(depth int) bool {
	switch depth {
	case 8, 16, 24, 32:
		return true
	}
	return false
}
