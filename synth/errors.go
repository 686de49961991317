// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	// ErrInvalidWaveform reports an unknown waveform kind or name.
	ErrInvalidWaveform = errors.New("invalid waveform")

	// ErrInvalidFrequency reports a non-positive tone frequency.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidNote reports a note name that cannot be parsed.
	ErrInvalidNote = errors.New("invalid note name")

	// ErrNoTones reports a sequence called without any tone.
	ErrNoTones = errors.New("sequence has no tones")
)
