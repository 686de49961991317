// SPDX-License-Identifier: EPL-2.0

// Package scene renders YAML scene files into a single audio.Stream.
//
// A scene names an output format, a list of tracks and the way they are
// combined:
//
//	format: {sample_rate: 8000, bit_depth: 16, channels: 1}
//	mode: mix            # mix | append | interlace
//	peak: 100            # output peak percent
//	crop: 2s             # optional
//	normalize: false
//	seed: 42             # optional, reproducible white noise
//	tracks:
//	  - name: a
//	    wave: sine
//	    frequency: 440
//	    amplitude: 80
//	    duration: 1s
//	    weight: 1        # mix
//	    volume: 100      # append / interlace percent
//	    start: 0s        # interlace
//	  - name: b
//	    file: intro.wav  # decoded by extension
//
// Synthesized tracks use a waveform (sine by default) with a frequency, a
// note name or a list of notes, each played for the track's duration.
// Decoded tracks must already use the scene's format; they are never
// resampled or remixed, and a mismatch fails with ErrFormatMismatch.
//
// Durations are Go duration strings ("250ms", "1.5s").
package scene
