// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidFormat reports a format built with a non-positive field.
	ErrInvalidFormat = errors.New("invalid audio format")

	// ErrStreamEmpty reports an edit on a stream without samples.
	ErrStreamEmpty = errors.New("stream has no samples")

	// ErrInvalidDuration reports a non-positive (or negative offset) duration.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrIndexOutOfRange is the panic value for a bad channel index.
	ErrIndexOutOfRange = errors.New("channel index out of range")

	// ErrInvalidPayload reports a byte payload that is not a whole number of frames.
	ErrInvalidPayload = errors.New("payload size must be a multiple of the frame size")
)
