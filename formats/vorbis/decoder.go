// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/utils"
)

// DefaultBitDepth is the resolution decoded streams use unless
// Decoder.BitDepth says otherwise.
const DefaultBitDepth = 16

// maxEmptyReads bounds the number of consecutive reads without data.
const maxEmptyReads = 100

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder decodes Ogg Vorbis files. Vorbis has no integer resolution of its
// own, so the decoded floats are scaled to BitDepth bits (DefaultBitDepth
// when zero).
type Decoder struct {
	BitDepth int
}

func (d Decoder) Decode(r io.Reader) (*audio.Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}
	return d.decode(dec)
}

func (d Decoder) decode(dec oggReader) (*audio.Stream, error) {
	depth := d.BitDepth
	if depth == 0 {
		depth = DefaultBitDepth
	}
	if depth < 0 || depth > audio.MaxBitDepth {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}

	f, err := audio.NewFormat(dec.SampleRate(), depth, dec.Channels())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	buf := make([]float32, 4096*f.Channels())
	var values []int

	for empty := 0; ; {
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			values = append(values, int(utils.FloatToPCM(v, f.MaxValue())))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}

	values = values[:len(values)-len(values)%f.Channels()]
	return audio.FromInts(f, values)
}
