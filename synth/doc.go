// SPDX-License-Identifier: EPL-2.0

// Package synth generates audio streams from waveforms.
//
// A Generator draws sine, sawtooth, square, triangle and white-noise waves
// into an audio.Stream of any audio.Format:
//
//	f := audio.MustFormat(8000, 16, 1)
//	g := synth.NewGenerator()
//	s, err := g.Generate(f, synth.Sine, 80, time.Second, 440)
//
// Generated streams always end on a whole waveform cycle and fade in and out
// over DefaultAttenuationCycles cycles to avoid clicks at the edges. Use
// WithAttenuationCycles to change the fade and WithRand to make white noise
// reproducible.
//
// Sequence renders a melody of Tones, and NoteFrequency turns note names such
// as "A4" into frequencies.
package synth
