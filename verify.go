// SPDX-License-Identifier: EPL-2.0

package chordgen

import (
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/chordgen/audio"
	"github.com/ik5/chordgen/render"
)

// peakTolerance is how far a measured peak may drift from the render
// target and still count as normalized. Covers 16-bit quantization and
// lossy codec error.
const peakTolerance = 0.01

// Report describes one decoded sample file.
type Report struct {
	Path       string
	SampleRate int
	Frames     int // mono frames after downmix
	Peak       float32
	Normalized bool // Peak within tolerance of render.PeakTarget
}

// Verify walks dir, decodes every file whose extension has a decoder
// registered in reg, downmixes it to mono and measures the true peak.
// The reports say whether each file still matches the renderer's peak
// target, so an existing sample library can be audited without
// re-rendering it. Files with unknown extensions are ignored.
func Verify(dir string, reg *audio.Registry) ([]Report, error) {
	var reports []Report

	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		dec, ok := reg.Get(ext)
		if !ok {
			return nil
		}

		rep, err := verifyFile(path, dec)
		if err != nil {
			return fmt.Errorf("verifying %s: %w", path, err)
		}
		reports = append(reports, rep)
		return nil
	}

	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, err
	}
	return reports, nil
}

func verifyFile(path string, dec audio.Decoder) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return Report{}, fmt.Errorf("%w", err)
	}
	defer src.Close()

	samples, err := audio.ReadAll(audio.NewMonoMixer(src), 4096)
	if err != nil {
		return Report{}, err
	}

	peak := audio.Peak(samples)
	return Report{
		Path:       path,
		SampleRate: src.SampleRate(),
		Frames:     len(samples),
		Peak:       peak,
		Normalized: math.Abs(float64(peak)-render.PeakTarget) <= peakTolerance,
	}, nil
}
