// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"cmp"
	"math"
)

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// FloatToPCM scales a normalized float in [-1, 1] to a signed integer with
// the given full-scale value (32767 for 16-bit). Out-of-range input is
// clamped first and NaN maps to silence. The result is truncated toward
// zero, so -1 maps to -maxValue.
func FloatToPCM(x float32, maxValue int64) int64 {
	if math.IsNaN(float64(x)) {
		return 0
	}
	return int64(float64(Clamp(x, -1, 1)) * float64(maxValue))
}

// PCMToFloat is the inverse of FloatToPCM.
func PCMToFloat(v, maxValue int64) float32 {
	if maxValue <= 0 {
		return 0
	}
	return Clamp(float32(float64(v)/float64(maxValue)), -1, 1)
}
