// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"

	"github.com/ik5/audsynth/scene"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <scene.yaml>",
	Short: "Render a scene file",
	Long: `Render a YAML scene file into a PCM WAV file.

Example scene.yaml:
  format: {sample_rate: 8000, bit_depth: 16, channels: 1}
  mode: mix
  tracks:
    - {name: a, wave: sine, note: A4, amplitude: 80, duration: 1s}
    - {name: b, wave: square, frequency: 220, duration: 1s, weight: 0.5}
    - {name: c, file: intro.wav}

Files are resolved relative to the scene file and must use the
scene's format.

Example:
  audsynth render scene.yaml -o scene.wav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scene.LoadFile(args[0])
		if err != nil {
			return err
		}

		s, err := sc.Render(cmd.Context())
		if err != nil {
			return err
		}
		return writeOutput(cmd, renderOutput, s)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", `output WAV file, "-" for stdout`)

	rootCmd.AddCommand(renderCmd)
}
