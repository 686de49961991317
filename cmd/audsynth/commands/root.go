// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ik5/audsynth"
	"github.com/ik5/audsynth/audio"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "audsynth",
	Short: "Generate, combine and inspect PCM audio",
	Long: `audsynth - synthesize PCM audio and write it as WAV.

Examples:
  # One second of a 440 Hz sine at 8 kHz, 16-bit mono
  audsynth tone --freq 440 --duration 1s -o a4.wav

  # Pipe a square wave into another program
  audsynth tone --wave square --note C5 -o - | aplay

  # Render a scene file
  audsynth render scene.yaml -o scene.wav

  # Inspect audio files
  audsynth info a4.wav intro.ogg`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr())
	},
}

// Execute runs the root command. An interrupt cancels the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// writeOutput writes s as WAV to path, or to the command's stdout when path
// is "-".
func writeOutput(cmd *cobra.Command, path string, s *audio.Stream) error {
	if path == "" {
		return fmt.Errorf("output file is required, use -o flag")
	}

	if path == "-" {
		return audsynth.Render(cmd.OutOrStdout(), s)
	}

	if err := audsynth.RenderFile(path, s); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %v, %d samples, %s\n", path, s.Format(), s.Len(), s.Duration())
	return nil
}
