// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbisFile indicates the input is not an Ogg Vorbis stream.
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")

	// ErrUnsupportedBitDepth indicates a target bit depth outside 1..32.
	ErrUnsupportedBitDepth = errors.New("unsupported target bit depth")
)
