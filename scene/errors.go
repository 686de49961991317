// SPDX-License-Identifier: EPL-2.0

package scene

import "errors"

var (
	ErrInvalidScene   = errors.New("invalid scene")
	ErrUnknownMode    = errors.New("unknown scene mode")
	ErrNoTracks       = errors.New("scene has no tracks")
	ErrFormatMismatch = errors.New("track format does not match the scene format")
)
