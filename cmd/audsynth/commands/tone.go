// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/audsynth/audio"
	"github.com/ik5/audsynth/synth"
)

var (
	toneWave      string
	toneFrequency float64
	toneNote      string
	toneAmplitude float64
	toneDuration  time.Duration
	toneRate      int
	toneBits      int
	toneChannels  int
	toneCycles    int
	toneSeed      uint64
	toneOutput    string
)

var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Generate a single waveform",
	Long: `Generate one waveform and write it as a PCM WAV file.

The output is padded to a whole cycle and fades in and out over
--cycles cycles, so it starts and ends at zero.

Waveforms: sine, sawtooth, square, triangle, white-noise.

Examples:
  audsynth tone --freq 440 --duration 1s -o a4.wav
  audsynth tone --wave triangle --note Eb3 --bits 24 --channels 2 -o eb3.wav
  audsynth tone --wave noise --seed 42 -o - > noise.wav`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := audio.NewFormat(toneRate, toneBits, toneChannels)
		if err != nil {
			return err
		}

		kind, err := synth.ParseWaveform(toneWave)
		if err != nil {
			return err
		}

		frequency := toneFrequency
		if toneNote != "" {
			if cmd.Flags().Changed("freq") {
				return fmt.Errorf("--note and --freq cannot be combined")
			}
			if frequency, err = synth.NoteFrequency(toneNote); err != nil {
				return err
			}
		}

		opts := []synth.Option{synth.WithAttenuationCycles(toneCycles)}
		if cmd.Flags().Changed("seed") {
			opts = append(opts, synth.WithRand(rand.New(rand.NewPCG(toneSeed, toneSeed))))
		}

		s, err := synth.NewGenerator(opts...).Generate(f, kind, toneAmplitude, toneDuration, frequency)
		if err != nil {
			return err
		}
		slog.Debug("tone generated", "wave", kind, "frequency", frequency, "format", f, "samples", s.Len())

		return writeOutput(cmd, toneOutput, s)
	},
}

func init() {
	toneCmd.Flags().StringVarP(&toneWave, "wave", "w", synth.Sine.String(), "waveform")
	toneCmd.Flags().Float64Var(&toneFrequency, "freq", 440, "frequency in Hz")
	toneCmd.Flags().StringVar(&toneNote, "note", "", "note name instead of --freq, e.g. A4, C#5, Eb3")
	toneCmd.Flags().Float64VarP(&toneAmplitude, "amp", "a", 80, "amplitude in percent of full scale")
	toneCmd.Flags().DurationVarP(&toneDuration, "duration", "d", time.Second, "duration")
	toneCmd.Flags().IntVarP(&toneRate, "rate", "r", 8000, "sample rate in Hz")
	toneCmd.Flags().IntVarP(&toneBits, "bits", "b", 16, "bit depth (8, 16, 24 or 32)")
	toneCmd.Flags().IntVarP(&toneChannels, "channels", "c", 1, "channel count")
	toneCmd.Flags().IntVar(&toneCycles, "cycles", synth.DefaultAttenuationCycles, "fade length in cycles")
	toneCmd.Flags().Uint64Var(&toneSeed, "seed", 0, "white noise seed")
	toneCmd.Flags().StringVarP(&toneOutput, "output", "o", "", `output WAV file, "-" for stdout`)

	rootCmd.AddCommand(toneCmd)
}
