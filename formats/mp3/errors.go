// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File indicates the input could not be parsed as an MP3 stream.
var ErrNotMP3File = errors.New("not an MP3 file")
