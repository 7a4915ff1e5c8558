// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/chordgen"
	"github.com/ik5/chordgen/chord"
	"github.com/ik5/chordgen/formats/wav"
	"github.com/ik5/chordgen/synth/melty"
)

var genCfg = chordgen.DefaultConfig()

func init() {
	f := generateCmd.Flags()
	f.IntVar(&genCfg.MinPitch, "min-pitch", genCfg.MinPitch, "lowest root note (MIDI)")
	f.IntVar(&genCfg.MaxPitch, "max-pitch", genCfg.MaxPitch, "highest playable note (MIDI)")
	f.IntVar(&genCfg.SampleRate, "sample-rate", genCfg.SampleRate, "engine render rate in Hz")
	f.IntVar(&genCfg.OutputRate, "output-rate", genCfg.OutputRate, "artifact rate in Hz (0 keeps the render rate)")
	f.Float64Var(&genCfg.Sustain, "sustain", genCfg.Sustain, "seconds the chord is held")
	f.Float64Var(&genCfg.Decay, "decay", genCfg.Decay, "seconds captured after release")
	f.IntVar(&genCfg.Velocity, "velocity", genCfg.Velocity, "MIDI velocity for every chord tone")
	f.Float64Var(&genCfg.Gain, "gain", genCfg.Gain, "engine output gain")
	f.StringVar(&genCfg.SoundFont, "soundfont", genCfg.SoundFont, "SoundFont (.sf2) path")
	f.IntVar(&genCfg.Bank, "bank", genCfg.Bank, "SoundFont bank")
	f.IntVar(&genCfg.Preset, "preset", genCfg.Preset, "SoundFont preset")
	f.StringVar(&genCfg.OutDir, "out", genCfg.OutDir, "output directory")

	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the chord sample library",
	Long: `Render every playable (root, shape) pair in the configured pitch
range and write one WAV file per pair.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sf := os.Getenv("CHORDGEN_SOUNDFONT"); sf != "" && !cmd.Flags().Changed("soundfont") {
			genCfg.SoundFont = sf
		}

		opener := melty.NewOpener(genCfg.SampleRate)

		count := 0
		err := chordgen.Run(genCfg, opener.Open, wav.Encoder{}, func(inst chord.Instance) {
			count++
			fmt.Fprintf(cmd.OutOrStdout(), "rendering %s\n", inst.Tag)
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d samples to %s\n", count, genCfg.OutDir)
		return nil
	},
}
