// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/chordgen/chord"
	"github.com/ik5/chordgen/midiexport"
)

var (
	exportMinPitch int
	exportMaxPitch int
)

func init() {
	f := exportMidiCmd.Flags()
	f.IntVar(&exportMinPitch, "min-pitch", 35, "lowest root note (MIDI)")
	f.IntVar(&exportMaxPitch, "max-pitch", 100, "highest playable note (MIDI)")

	rootCmd.AddCommand(exportMidiCmd)
}

var exportMidiCmd = &cobra.Command{
	Use:   "export-midi [file]",
	Short: "Write the chord set as a standard MIDI file",
	Long: `Write one MIDI file containing every playable chord in sequence,
for auditioning the set in a sequencer without rendering audio.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "chords.mid"
		if len(args) == 1 {
			path = args[0]
		}

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		instances := chord.Enumerate(exportMinPitch, exportMaxPitch, chord.DefaultShapes)
		if err := midiexport.Write(f, instances, midiexport.Options{}); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}
