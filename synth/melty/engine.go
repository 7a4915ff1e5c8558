// SPDX-License-Identifier: EPL-2.0

// Package melty implements synth.Engine on top of the pure-Go
// MeltySynth SoundFont synthesizer.
package melty

import (
	"fmt"
	"os"

	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/ik5/chordgen/synth"
	"github.com/ik5/chordgen/utils"
)

// Opener creates engine handles that share parsed SoundFont data.
// Parsing an SF2 file is expensive and the parse result is immutable,
// so it is cached and reused across handles. The batch loop is
// sequential, so no locking is needed around the cache.
type Opener struct {
	sampleRate int
	fonts      map[string]*meltysynth.SoundFont
}

// NewOpener returns an Opener producing engines at sampleRate Hz.
func NewOpener(sampleRate int) *Opener {
	return &Opener{
		sampleRate: sampleRate,
		fonts:      make(map[string]*meltysynth.SoundFont),
	}
}

// Open acquires a fresh engine handle.
func (o *Opener) Open() (synth.Engine, error) {
	if o.sampleRate <= 0 {
		return nil, ErrBadSampleRate
	}
	return &engine{opener: o, gain: 1.0}, nil
}

type engine struct {
	opener *Opener
	gain   float64
	fonts  []*meltysynth.SoundFont
	synth  *meltysynth.Synthesizer

	// Render scratch, reused across ReadFrames calls.
	left  []float32
	right []float32
}

func (e *engine) SetGain(gain float64) { e.gain = gain }

func (e *engine) LoadInstrument(path string) (synth.Instrument, error) {
	font, ok := e.opener.fonts[path]
	if !ok {
		f, err := os.Open(path)
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		defer f.Close()

		font, err = meltysynth.NewSoundFont(f)
		if err != nil {
			return 0, fmt.Errorf("parsing soundfont %s: %w", path, err)
		}
		e.opener.fonts[path] = font
	}
	e.fonts = append(e.fonts, font)
	return synth.Instrument(len(e.fonts) - 1), nil
}

func (e *engine) ProgramSelect(channel int, inst synth.Instrument, bank, preset int) error {
	if int(inst) < 0 || int(inst) >= len(e.fonts) {
		return ErrUnknownInstrument
	}

	settings := meltysynth.NewSynthesizerSettings(int32(e.opener.sampleRate))
	s, err := meltysynth.NewSynthesizer(e.fonts[inst], settings)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	s.MasterVolume = float32(e.gain)

	// Bank select (CC 0), then program change.
	s.ProcessMidiMessage(int32(channel), 0xB0, 0x00, int32(bank))
	s.ProcessMidiMessage(int32(channel), 0xC0, int32(preset), 0)

	e.synth = s
	return nil
}

func (e *engine) NoteOn(channel, key, velocity int) {
	if e.synth == nil {
		return
	}
	e.synth.NoteOn(int32(channel), int32(key), int32(velocity))
}

func (e *engine) NoteOff(channel, key int) {
	if e.synth == nil {
		return
	}
	e.synth.NoteOff(int32(channel), int32(key))
}

// ReadFrames renders the next len(dst) stereo frames and downmixes them
// to mono in the native signed 16-bit range.
func (e *engine) ReadFrames(dst []int16) (int, error) {
	if e.synth == nil {
		return 0, ErrNoProgram
	}

	n := len(dst)
	if cap(e.left) < n {
		e.left = make([]float32, n)
		e.right = make([]float32, n)
	}
	left := e.left[:n]
	right := e.right[:n]

	e.synth.Render(left, right)

	for i := range n {
		dst[i] = utils.Float32ToInt16((left[i] + right[i]) * 0.5)
	}
	return n, nil
}

func (e *engine) Close() error {
	e.synth = nil
	e.fonts = nil
	return nil
}
