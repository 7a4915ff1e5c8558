// SPDX-License-Identifier: EPL-2.0

// Package chordgen batch-generates a library of short chord samples
// from a software synthesizer and writes each one to an audio file
// with consistent peak normalization.
//
// # Pipeline
//
// A run crosses every root pitch in a range with a table of chord
// shapes, renders each playable pair and writes one artifact per pair:
//
//	cfg := chordgen.DefaultConfig()
//	cfg.OutDir = "chord-samples"
//
//	opener := melty.NewOpener(cfg.SampleRate)
//	err := chordgen.Run(cfg, opener.Open, wav.Encoder{}, nil)
//
// Each chord is captured in two phases: a sustain phase while all
// chord tones are held, then a decay phase after note-off in which the
// engine's envelope produces the natural release tail. The captured
// frames are rescaled from the engine's native 16-bit range to
// [-1.0, 1.0] and peak-normalized to 0.95, so chords with more notes
// do not come out louder than sparse ones.
//
// # Naming
//
// Artifacts are named "{pitchClass}{octave}-{shape}.{ext}", e.g.
// "C3-maj.wav". The enumeration order is deterministic, so repeated
// runs with the same configuration produce identical file sets.
//
// # Collaborators
//
// The synthesis engine and the file encoder are narrow interfaces
// (synth.Engine, audio.Encoder). The default engine is the pure-Go
// MeltySynth SoundFont synthesizer (synth/melty); the default encoder
// writes PCM 16-bit WAV (formats/wav). One engine handle is acquired
// per chord and released before the next, even when a render fails.
//
// # Verification
//
// Verify decodes an existing sample directory (wav, mp3, ogg or aiff)
// and reports each file's true peak, so a library produced earlier —
// possibly re-encoded to a lossy format since — can be audited against
// the normalization target.
package chordgen
