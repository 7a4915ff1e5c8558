// SPDX-License-Identifier: EPL-2.0

// Package synth defines the narrow contract chordgen expects from a
// software synthesis engine. The engine itself is an external
// capability; the render pipeline only drives note events into it and
// pulls PCM frames back out.
package synth

// Instrument is an opaque handle to a loaded instrument resource
// (e.g. a SoundFont), valid only for the Engine that returned it.
type Instrument int

// Engine is a single synthesizer handle. One Engine is acquired per
// rendered chord and must be closed before the next one is opened.
//
// Call order for a render: SetGain, LoadInstrument, ProgramSelect,
// then note events interleaved with ReadFrames, then Close.
type Engine interface {
	// SetGain sets the engine output gain (1.0 = unity). It must be
	// called before any note sounds so the attenuation preserves
	// clipping headroom inside the engine.
	SetGain(gain float64)

	// LoadInstrument loads an instrument resource from path.
	LoadInstrument(path string) (Instrument, error)

	// ProgramSelect binds a bank/preset of a loaded instrument to an
	// output channel.
	ProgramSelect(channel int, inst Instrument, bank, preset int) error

	NoteOn(channel, key, velocity int)
	NoteOff(channel, key int)

	// ReadFrames fills dst with mono frames in the engine's native
	// signed 16-bit range and returns the number of frames written.
	// It returns a short count only together with an error.
	ReadFrames(dst []int16) (int, error)

	// Close releases the handle. Safe to call exactly once, on every
	// exit path of a render.
	Close() error
}

// OpenFunc acquires a fresh Engine handle.
type OpenFunc func() (Engine, error)
