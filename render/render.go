// SPDX-License-Identifier: EPL-2.0

// Package render turns a single chord into a normalized mono sample
// buffer by driving note events into a synthesis engine and capturing
// the sustain and decay phases.
package render

import (
	"fmt"
	"math"

	"github.com/ik5/chordgen/audio"
	"github.com/ik5/chordgen/synth"
)

// PeakTarget is the absolute peak every non-silent buffer is scaled
// to. The 5% headroom keeps re-encoded copies from clipping and makes
// every chord equally loud regardless of how many notes it holds.
const PeakTarget = 0.95

// pcmScale maps the engine's native signed 16-bit range onto [-1, 1].
const pcmScale = 32768.0

// Params are the fixed per-run knobs of the renderer.
type Params struct {
	SampleRate int     // engine output rate, Hz
	Sustain    float64 // seconds the notes are held
	Decay      float64 // seconds captured after note-off
	Velocity   int     // MIDI velocity for every chord tone
	Gain       float64 // engine output gain, below 1.0 for headroom
	SoundFont  string  // instrument resource path
	Bank       int
	Preset     int
	Channel    int
}

// Chord sounds root plus every offset simultaneously and returns the
// captured buffer: round(SampleRate*Sustain) held frames followed by
// round(SampleRate*Decay) release frames, rescaled to [-1, 1] and
// peak-normalized to PeakTarget. The note-off boundary lands inside
// the buffer on purpose; the engine's envelope produces the natural
// release tail there.
//
// A fresh engine handle is acquired per call and released on every
// path out. Engine failures are returned as-is; there is no retry.
func Chord(open synth.OpenFunc, p Params, root int, offsets []int) ([]float32, error) {
	eng, err := open()
	if err != nil {
		return nil, fmt.Errorf("acquiring engine: %w", err)
	}
	defer eng.Close()

	eng.SetGain(p.Gain)

	inst, err := eng.LoadInstrument(p.SoundFont)
	if err != nil {
		return nil, fmt.Errorf("loading instrument: %w", err)
	}
	if err := eng.ProgramSelect(p.Channel, inst, p.Bank, p.Preset); err != nil {
		return nil, fmt.Errorf("selecting program: %w", err)
	}

	for _, off := range offsets {
		eng.NoteOn(p.Channel, root+off, p.Velocity)
	}

	sustainFrames := int(math.Round(float64(p.SampleRate) * p.Sustain))
	decayFrames := int(math.Round(float64(p.SampleRate) * p.Decay))
	pcm := make([]int16, sustainFrames+decayFrames)

	if err := readFull(eng, pcm[:sustainFrames]); err != nil {
		return nil, fmt.Errorf("sustain capture: %w", err)
	}

	for _, off := range offsets {
		eng.NoteOff(p.Channel, root+off)
	}

	if err := readFull(eng, pcm[sustainFrames:]); err != nil {
		return nil, fmt.Errorf("decay capture: %w", err)
	}

	out := make([]float32, len(pcm))
	for i, v := range pcm {
		out[i] = float32(v) / pcmScale
	}

	audio.NormalizePeak(out, PeakTarget)
	return out, nil
}

// readFull pulls frames until dst is filled, tolerating engines that
// return short counts without an error.
func readFull(eng synth.Engine, dst []int16) error {
	for len(dst) > 0 {
		n, err := eng.ReadFrames(dst)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNoFrames
		}
		dst = dst[n:]
	}
	return nil
}
