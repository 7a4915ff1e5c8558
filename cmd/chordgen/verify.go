// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/chordgen"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Audit a sample directory against the normalization target",
	Long: `Decode every recognized audio file in a directory (wav, mp3, ogg,
aiff), measure its true peak and report files that drifted from the
0.95 peak target.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "chord-samples"
		if len(args) == 1 {
			dir = args[0]
		}

		reports, err := chordgen.Verify(dir, chordgen.NewRegistry())
		if err != nil {
			return err
		}

		bad := 0
		for _, r := range reports {
			status := "ok"
			if !r.Normalized {
				status = "off-target"
				bad++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d Hz\t%d frames\tpeak %.4f\t%s\n",
				r.Path, r.SampleRate, r.Frames, r.Peak, status)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d files checked, %d off target\n", len(reports), bad)
		return nil
	},
}
