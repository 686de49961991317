// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory PCM model and the operations that
// combine and edit it.
//
// # Format
//
// A Format fixes sample rate, bit depth and channel count. It is created
// once and shared by pointer; two streams can only be combined when their
// formats are Equal:
//
//	f, err := audio.NewFormat(8000, 16, 1)
//
// Bit depths above 32 are clamped. Each channel is stored in
// ceil(bitDepth/8) bytes, so a 12-bit format still uses two bytes per channel
// while clipping to the 12-bit range.
//
// # Samples and Streams
//
// A Sample is one time instant across all channels, packed little-endian
// channel after channel. Values written with SetChannel are clipped to the
// format bounds; Channel sign-extends them back.
//
// A Stream is an ordered slice of samples. Stream.Payload (or WriteTo)
// returns the exact byte sequence a PCM container stores, and FromPayload is
// its inverse.
//
// # Editing
//
// The editing operations work on whole streams:
//   - Mix sums weighted tracks and scales the result to a peak percentage
//   - Append concatenates streams onto a base stream
//   - Crop shortens a stream to a duration
//   - Silence builds a zero stream of a given duration
//   - ChangeVolume scales a stream to a percentage of its level
//   - NormalizePeaks scales a stream so its loudest value hits full scale
//   - Interlace places streams at time offsets on a shared timeline
//
// Mix, Append and Interlace are lenient: inputs with a different format, or
// with no samples, are left out and logged at debug level. Operations that
// need a first sample fail with ErrStreamEmpty instead.
//
// # Format Registry
//
// The registry maps container names to decoders that turn a file into a
// Stream:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.ForPath("intro.wav")
package audio
