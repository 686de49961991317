// SPDX-License-Identifier: EPL-2.0

// Command audsynth generates tones, renders scene files and inspects audio
// files.
//
// Usage:
//
//	audsynth [flags] <command> [args]
//
// Commands:
//
//	tone     - generate a single waveform into a WAV file
//	render   - render a YAML scene file into a WAV file
//	info     - print the format of audio files
//	version  - print version information
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audsynth/cmd/audsynth/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
