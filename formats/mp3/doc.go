// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files into
// an audio.Stream. go-mp3 always produces 16-bit stereo, so every decoded
// stream has that shape at the file's sample rate:
//
//	file, _ := os.Open("audio.mp3")
//	stream, err := mp3.Decoder{}.Decode(file)
//
// The whole file is decoded into memory. Mixing an MP3 with streams of
// another format requires the other streams to use the same format; no
// resampling or channel conversion is done.
package mp3
