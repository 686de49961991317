// SPDX-License-Identifier: EPL-2.0

// Package audsynth synthesizes, edits and stores PCM audio in memory.
//
// The work is split across subpackages:
//   - audio: formats, samples, streams and the stream algebra (Mix, Append,
//     Crop, Interlace, ChangeVolume, NormalizePeaks)
//   - synth: waveform generation with faded edges, and tone sequences
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: containers
//   - scene: YAML scene files rendered into a single stream
//
// This package ties them together for the common cases.
//
// # Quick Start
//
//	f := audio.MustFormat(8000, 16, 1)
//	tone, _ := synth.Generate(f, synth.Sine, 80, time.Second, 440)
//	_ = audsynth.RenderFile("tone.wav", tone)
//
// # Writing WAV Files
//
// RenderFile goes through the go-audio encoder, which needs a seekable file.
// Render builds the header up front and works with any io.Writer:
//
//	audsynth.Render(os.Stdout, tone)
//
// # Decoding Files
//
// NewRegistry collects the decoders of every formats package, keyed by
// extension, and DecodeFile picks one for a path:
//
//	reg := audsynth.NewRegistry(16)
//	s, err := audsynth.DecodeFile(reg, "intro.ogg")
//
// Decoded streams keep the file's own format; nothing is resampled or
// remixed to another channel count.
package audsynth
