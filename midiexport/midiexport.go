// SPDX-License-Identifier: EPL-2.0

// Package midiexport writes the enumerated chord set as a standard
// MIDI file, so the full set can be auditioned in a sequencer without
// rendering any audio.
package midiexport

import (
	"fmt"
	"io"
	"iter"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/ik5/chordgen/chord"
)

// Options control the exported file's timing and note events.
// Zero values fall back to the defaults below.
type Options struct {
	TicksPerQuarter uint16 // resolution, default 960
	SustainTicks    uint32 // how long each chord is held, default 1920
	GapTicks        uint32 // silence between chords, default 960
	Channel         uint8
	Velocity        uint8 // default 100
}

func (o Options) withDefaults() Options {
	if o.TicksPerQuarter == 0 {
		o.TicksPerQuarter = 960
	}
	if o.SustainTicks == 0 {
		o.SustainTicks = 1920
	}
	if o.GapTicks == 0 {
		o.GapTicks = 960
	}
	if o.Velocity == 0 {
		o.Velocity = 100
	}
	return o
}

// Write emits one single-track SMF containing every instance in order:
// all chord tones start together, are held for SustainTicks, and the
// next chord begins GapTicks after the previous one ends.
func Write(w io.Writer, instances iter.Seq[chord.Instance], opts Options) error {
	opts = opts.withDefaults()

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(opts.TicksPerQuarter)

	var tr smf.Track
	count := 0

	for inst := range instances {
		var delta uint32
		if count > 0 {
			delta = opts.GapTicks
		}

		for i, off := range inst.Shape.Offsets {
			d := uint32(0)
			if i == 0 {
				d = delta
			}
			tr.Add(d, midi.NoteOn(opts.Channel, uint8(inst.Root+off), opts.Velocity))
		}
		for i, off := range inst.Shape.Offsets {
			d := uint32(0)
			if i == 0 {
				d = opts.SustainTicks
			}
			tr.Add(d, midi.NoteOff(opts.Channel, uint8(inst.Root+off)))
		}
		count++
	}

	if count == 0 {
		return ErrNoInstances
	}

	tr.Close(0)
	s.Tracks = append(s.Tracks, tr)

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
