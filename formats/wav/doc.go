// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files.
//
// # Decoding
//
// Decoder turns a WAV file into an audio.Stream with the file's own format.
// It is built on github.com/go-audio/wav and accepts 8, 16, 24 and 32-bit
// PCM:
//
//	file, _ := os.Open("audio.wav")
//	stream, err := wav.Decoder{}.Decode(file)
//
// 8-bit WAV data is unsigned on disk; the decoder converts it to signed
// values centred on zero.
//
// # Encoding
//
// Encode writes through the go-audio encoder and needs an io.WriteSeeker
// such as an *os.File:
//
//	file, _ := os.Create("output.wav")
//	err := wav.Encode(file, stream)
//
// WriteStream writes to any io.Writer, stdout included, because it
// computes the header before the data. It also handles bit depths that do
// not fill whole bytes (12 or 20-bit), which are stored left-justified.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a readable WAV file
//   - ErrUnsupportedWavLayout: the file is not integer PCM
//   - ErrUnsupportedBitDepth: the bit depth cannot be encoded or decoded
//   - ErrStreamTooLarge: the payload does not fit the 32-bit RIFF sizes
package wav
