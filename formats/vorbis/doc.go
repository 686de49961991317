// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files into an audio.Stream:
//
//	file, _ := os.Open("audio.ogg")
//	stream, err := vorbis.Decoder{}.Decode(file)
//
// Vorbis decodes to floating point, so the decoder scales every value to a
// signed integer of Decoder.BitDepth bits (16 by default). Values outside
// [-1, 1] are clamped. The sample rate and channel count come from the file.
package vorbis
