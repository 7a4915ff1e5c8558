// SPDX-License-Identifier: EPL-2.0

// chordgen renders a library of chord samples through a SoundFont
// synthesizer and writes one normalized audio file per chord.
package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordgen",
	Short: "Batch chord sample generator",
	Long: `chordgen drives a SoundFont synthesizer through every playable
(root, chord shape) pair in a pitch range and writes one peak-normalized
sample file per pair.`,
	SilenceUsage: true,
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
