// SPDX-License-Identifier: EPL-2.0

package chordgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/chordgen/audio"
	"github.com/ik5/chordgen/chord"
	"github.com/ik5/chordgen/formats/aiff"
	"github.com/ik5/chordgen/formats/mp3"
	"github.com/ik5/chordgen/formats/vorbis"
	"github.com/ik5/chordgen/formats/wav"
	"github.com/ik5/chordgen/render"
	"github.com/ik5/chordgen/synth"
)

// Config collects every knob of a batch run. Values are fixed for the
// whole run; renders never mutate the configuration.
type Config struct {
	MinPitch int
	MaxPitch int

	SampleRate int // engine render rate, Hz
	OutputRate int // artifact rate, Hz; 0 keeps SampleRate

	Sustain  float64 // seconds the notes are held
	Decay    float64 // seconds captured after release
	Velocity int
	Gain     float64 // engine gain, below 1.0 to keep headroom

	SoundFont string
	Bank      int
	Preset    int

	OutDir string
	Shapes []chord.Shape
}

// DefaultConfig mirrors the reference sample-library setup: the
// bass/guitar range B0..E6, one second sustain plus one second decay
// at 44.1 kHz, velocity 100, gain 0.2.
func DefaultConfig() Config {
	return Config{
		MinPitch:   35,
		MaxPitch:   100,
		SampleRate: 44100,
		Sustain:    1.0,
		Decay:      1.0,
		Velocity:   100,
		Gain:       0.2,
		SoundFont:  "/usr/share/soundfonts/FluidR3_GM.sf2",
		OutDir:     "chord-samples",
		Shapes:     chord.DefaultShapes,
	}
}

// Validate reports the first configuration problem, or nil.
func (c Config) Validate() error {
	if c.MinPitch < 0 || c.MaxPitch > 127 || c.MinPitch > c.MaxPitch {
		return ErrBadPitchRange
	}
	if c.SampleRate <= 0 || c.OutputRate < 0 {
		return ErrBadSampleRate
	}
	if c.Sustain < 0 || c.Decay < 0 || c.Sustain+c.Decay == 0 {
		return ErrBadDuration
	}
	if c.Velocity < 1 || c.Velocity > 127 {
		return ErrBadVelocity
	}
	if len(c.Shapes) == 0 {
		return ErrNoShapes
	}
	return nil
}

func (c Config) renderParams() render.Params {
	return render.Params{
		SampleRate: c.SampleRate,
		Sustain:    c.Sustain,
		Decay:      c.Decay,
		Velocity:   c.Velocity,
		Gain:       c.Gain,
		SoundFont:  c.SoundFont,
		Bank:       c.Bank,
		Preset:     c.Preset,
	}
}

// NewRegistry returns a Registry with every built-in codec registered:
// wav, mp3, ogg and aiff decoders, plus the wav encoder. AIFF is
// registered under both of its common extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.RegisterEncoder("wav", wav.Encoder{})
	return reg
}

// Run renders every playable (root, shape) pair in cfg and writes one
// artifact per pair under cfg.OutDir, named "{tag}.{ext}". The batch is
// a single sequential pass: one engine handle per instance, no retry.
// The first failure aborts the run; files already written stay on disk.
//
// progress, when non-nil, is called with each instance right before it
// is rendered.
func Run(cfg Config, open synth.OpenFunc, enc audio.Encoder, progress func(chord.Instance)) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("%w", err)
	}

	params := cfg.renderParams()

	for inst := range chord.Enumerate(cfg.MinPitch, cfg.MaxPitch, cfg.Shapes) {
		if progress != nil {
			progress(inst)
		}

		buf, err := render.Chord(open, params, inst.Root, inst.Shape.Offsets)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", inst.Tag, err)
		}

		rate := cfg.SampleRate
		if cfg.OutputRate != 0 && cfg.OutputRate != cfg.SampleRate {
			buf, err = resampleBuffer(buf, cfg.SampleRate, cfg.OutputRate)
			if err != nil {
				return fmt.Errorf("resampling %s: %w", inst.Tag, err)
			}
			rate = cfg.OutputRate
		}

		path := filepath.Join(cfg.OutDir, inst.Tag+"."+enc.Ext())
		if err := writeArtifact(path, enc, buf, rate); err != nil {
			return fmt.Errorf("writing %s: %w", inst.Tag, err)
		}
	}
	return nil
}

func resampleBuffer(buf []float32, srcRate, dstRate int) ([]float32, error) {
	src := audio.NewBufferSource(buf, srcRate, 1)
	return audio.ReadAll(audio.NewResampler(src, dstRate), 4096)
}

func writeArtifact(path string, enc audio.Encoder, buf []float32, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Encode(f, buf, rate, 1); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
