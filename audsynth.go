// SPDX-License-Identifier: EPL-2.0

package audsynth

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/formats/aiff"
	"github.com/ik5/audsynth/formats/mp3"
	"github.com/ik5/audsynth/formats/vorbis"
	"github.com/ik5/audsynth/formats/wav"
)

// Render writes s to w as a PCM WAV file. w does not need to be seekable, so
// this is the way to write to stdout or a network connection.
func Render(w io.Writer, s *audio.Stream) error {
	if s.Len() == 0 {
		return audio.ErrStreamEmpty
	}
	return wav.WriteStream(w, s)
}

// RenderFile writes s to a new WAV file at path, replacing any existing one.
// A partially written file is removed on failure.
func RenderFile(path string, s *audio.Stream) (err error) {
	if s.Len() == 0 {
		return audio.ErrStreamEmpty
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return wav.Encode(out, s)
}

// NewRegistry returns a registry holding every decoder of the formats
// packages, keyed by file extension. Vorbis streams have no integer
// resolution of their own and are decoded at vorbisBitDepth bits
// (vorbis.DefaultBitDepth when zero).
func NewRegistry(vorbisBitDepth int) *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{BitDepth: vorbisBitDepth})
	r.Register("oga", vorbis.Decoder{BitDepth: vorbisBitDepth})

	return r
}

// DecodeFile decodes the file at path with the decoder r holds for its
// extension.
func DecodeFile(r *audio.Registry, path string) (*audio.Stream, error) {
	dec, ok := r.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer in.Close()

	s, err := dec.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
