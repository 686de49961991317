// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"math/bits"
	"time"
)

// MaxBitDepth is the widest supported channel resolution.
const MaxBitDepth = 32

// MaxSamples bounds the length of streams built from a duration (Interlace,
// synth). About 12 hours at 48 kHz.
const MaxSamples = math.MaxInt32

// Format describes how samples are laid out: rate, resolution and channels.
// A Format never changes after NewFormat returns it, so one value can be
// shared by every stream that has to interoperate.
type Format struct {
	sampleRate     int
	bitDepth       int
	bytesPerSample int
	channels       int

	maxValue int64
	minValue int64
}

// NewFormat validates and builds a Format. A bit depth above MaxBitDepth is
// clamped to it.
func NewFormat(sampleRate, bitDepth, channels int) (*Format, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, sampleRate)
	}
	if bitDepth <= 0 {
		return nil, fmt.Errorf("%w: bit depth %d", ErrInvalidFormat, bitDepth)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: channels %d", ErrInvalidFormat, channels)
	}

	bitDepth = min(bitDepth, MaxBitDepth)
	maxValue := int64(1)<<(bitDepth-1) - 1

	return &Format{
		sampleRate:     sampleRate,
		bitDepth:       bitDepth,
		bytesPerSample: (bitDepth + 7) / 8,
		channels:       channels,
		maxValue:       maxValue,
		minValue:       -maxValue - 1,
	}, nil
}

// MustFormat is NewFormat for package-level values and tests.
func MustFormat(sampleRate, bitDepth, channels int) *Format {
	f, err := NewFormat(sampleRate, bitDepth, channels)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Format) SampleRate() int     { return f.sampleRate }
func (f *Format) BitDepth() int       { return f.bitDepth }
func (f *Format) BytesPerSample() int { return f.bytesPerSample }
func (f *Format) Channels() int       { return f.channels }
func (f *Format) MaxValue() int64     { return f.maxValue }
func (f *Format) MinValue() int64     { return f.minValue }

// FrameSize is the number of bytes one Sample occupies.
func (f *Format) FrameSize() int {
	return f.bytesPerSample * f.channels
}

// Equal reports whether two formats can be combined.
func (f *Format) Equal(o *Format) bool {
	if f == o {
		return true
	}
	if f == nil || o == nil {
		return false
	}
	return f.sampleRate == o.sampleRate &&
		f.bitDepth == o.bitDepth &&
		f.bytesPerSample == o.bytesPerSample &&
		f.channels == o.channels
}

// PeakAmplitude returns MaxValue scaled by percent. The sign of percent is
// ignored and anything above 100 counts as 100.
func (f *Format) PeakAmplitude(percent float64) float64 {
	return float64(f.maxValue) * ratio(percent)
}

// Clip saturates v to [MinValue, MaxValue].
func (f *Format) Clip(v int64) int64 {
	if v > f.maxValue {
		return f.maxValue
	}
	if v < f.minValue {
		return f.minValue
	}
	return v
}

// SamplesIn returns ceil(d * SampleRate), the number of samples needed to
// cover d. Non-positive durations need none; counts that do not fit an int
// saturate at math.MaxInt.
func (f *Format) SamplesIn(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	const second = uint64(time.Second)

	hi, lo := bits.Mul64(uint64(d), uint64(f.sampleRate))
	lo, carry := bits.Add64(lo, second-1, 0)
	hi += carry
	if hi >= second {
		return math.MaxInt
	}

	n, _ := bits.Div64(hi, lo, second)
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// DurationOf returns how long n samples play for.
func (f *Format) DurationOf(n int) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(f.sampleRate)
}

// String returns the format in media type notation.
func (f *Format) String() string {
	return fmt.Sprintf("audio/L%d; rate=%d; channels=%d", f.bitDepth, f.sampleRate, f.channels)
}

// ratio turns a volume percentage into a factor in [0, 1].
func ratio(percent float64) float64 {
	if math.IsNaN(percent) {
		return 0
	}
	return min(math.Abs(percent), 100) / 100
}
