// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"strings"
)

// Waveform selects the shape Generate draws.
type Waveform int

const (
	Sine Waveform = iota
	Sawtooth
	Square
	Triangle
	WhiteNoise
)

var waveformNames = [...]string{
	Sine:       "sine",
	Sawtooth:   "sawtooth",
	Square:     "square",
	Triangle:   "triangle",
	WhiteNoise: "white-noise",
}

// Aliases accepted by ParseWaveform next to the canonical names.
var waveformAliases = map[string]Waveform{
	"saw":         Sawtooth,
	"noise":       WhiteNoise,
	"white_noise": WhiteNoise,
	"whitenoise":  WhiteNoise,
}

func (w Waveform) String() string {
	if !w.valid() {
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
	return waveformNames[w]
}

func (w Waveform) valid() bool {
	return w >= Sine && w <= WhiteNoise
}

// ParseWaveform maps a name such as "sine" or "White-Noise" to its Waveform.
func ParseWaveform(name string) (Waveform, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for w, n := range waveformNames {
		if n == key {
			return Waveform(w), nil
		}
	}
	if w, ok := waveformAliases[key]; ok {
		return w, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWaveform, name)
}
