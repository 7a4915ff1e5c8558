// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"github.com/ik5/chordgen/synth"
)

// MockEngine is a deterministic synth.Engine for testing the render
// pipeline without a real synthesizer. While notes are held it emits a
// square-ish waveform whose raw amplitude grows with the number of
// active notes, so normalization behavior can be observed; after every
// note is released it emits silence.
type MockEngine struct {
	// Amplitude is the per-note raw amplitude. Zero produces a fully
	// silent engine (the degenerate normalization case).
	Amplitude int16

	// Failure injection. When set, the corresponding call fails.
	FailLoad    error
	FailProgram error
	FailRead    error

	// Recorded state, for assertions.
	Gain       float64
	LoadedPath string
	Channel    int
	Bank       int
	Preset     int
	NoteOns    []int
	NoteOffs   []int
	Closed     int // number of Close calls

	active map[int]bool
	pos    int
}

// NewMockEngine returns a MockEngine with a sensible default amplitude.
func NewMockEngine() *MockEngine {
	return &MockEngine{
		Amplitude: 6000,
		active:    make(map[int]bool),
	}
}

func (e *MockEngine) SetGain(gain float64) { e.Gain = gain }

func (e *MockEngine) LoadInstrument(path string) (synth.Instrument, error) {
	if e.FailLoad != nil {
		return 0, e.FailLoad
	}
	e.LoadedPath = path
	return 0, nil
}

func (e *MockEngine) ProgramSelect(channel int, inst synth.Instrument, bank, preset int) error {
	if e.FailProgram != nil {
		return e.FailProgram
	}
	e.Channel = channel
	e.Bank = bank
	e.Preset = preset
	return nil
}

func (e *MockEngine) NoteOn(channel, key, velocity int) {
	if e.active == nil {
		e.active = make(map[int]bool)
	}
	e.active[key] = true
	e.NoteOns = append(e.NoteOns, key)
}

func (e *MockEngine) NoteOff(channel, key int) {
	delete(e.active, key)
	e.NoteOffs = append(e.NoteOffs, key)
}

func (e *MockEngine) ReadFrames(dst []int16) (int, error) {
	if e.FailRead != nil {
		return 0, e.FailRead
	}

	for i := range dst {
		var v int
		if len(e.active) > 0 {
			v = int(e.Amplitude) * len(e.active)
			if (e.pos/64)%2 == 1 {
				v = -v
			}
			if v > 32767 {
				v = 32767
			} else if v < -32768 {
				v = -32768
			}
		}
		dst[i] = int16(v)
		e.pos++
	}
	return len(dst), nil
}

func (e *MockEngine) Close() error {
	e.Closed++
	return nil
}

// Open is a synth.OpenFunc handing out this engine.
func (e *MockEngine) Open() (synth.Engine, error) { return e, nil }

// EngineFactory opens a fresh MockEngine per call and keeps every
// handle it produced, so batch tests can assert per-instance
// acquisition and release.
type EngineFactory struct {
	Amplitude int16

	// FailOn makes the Nth Open call (1-based) return Err.
	// Zero disables failure injection.
	FailOn int
	Err    error

	Opened []*MockEngine
}

func (f *EngineFactory) Open() (synth.Engine, error) {
	if f.FailOn > 0 && len(f.Opened)+1 == f.FailOn {
		return nil, f.Err
	}
	eng := NewMockEngine()
	if f.Amplitude != 0 {
		eng.Amplitude = f.Amplitude
	}
	f.Opened = append(f.Opened, eng)
	return eng, nil
}
