// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/audsynth"
	"github.com/ik5/audsynth/formats/vorbis"
	"github.com/ik5/audsynth/utils"
)

var infoBits int

var infoCmd = &cobra.Command{
	Use:   "info <file>...",
	Short: "Print the format of audio files",
	Long: `Decode audio files and print their format, length and peak.

Supported by extension: wav, aiff, aif, mp3, ogg.
Ogg Vorbis has no integer resolution and is decoded at --bits.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := audsynth.NewRegistry(infoBits)

		for _, path := range args {
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			s, err := audsynth.DecodeFile(reg, path)
			if err != nil {
				return err
			}

			peak := utils.PCMToFloat(s.Peak(), s.Format().MaxValue()) * 100
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v, %d samples, %s, peak %.1f%%\n",
				path, s.Format(), s.Len(), s.Duration(), peak)
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().IntVarP(&infoBits, "bits", "b", vorbis.DefaultBitDepth, "bit depth for Ogg Vorbis files")

	rootCmd.AddCommand(infoCmd)
}
