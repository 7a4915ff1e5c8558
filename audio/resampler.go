// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/chordgen/utils"
)

// Resampler converts a Source to a different sample rate with cubic
// interpolation over a sliding four-frame window. Channel count is
// preserved; a one-pole low-pass tames aliasing when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames consumed per output frame
	channels int

	// window[0] is the frame before the interpolation interval,
	// window[1] and window[2] bracket it, window[3] follows it.
	window [4][]float32
	filled [4]bool

	pos     float64 // fractional position between window[1] and window[2]
	readBuf []float32
	eof     bool

	lowpass     bool
	lowpassPrev []float32
}

// lowpassAlpha is the one-pole smoothing factor used while
// downsampling. A crude filter, but enough to keep the top octave of
// the destination band from folding back audibly.
const lowpassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		readBuf:     make([]float32, 4096),
		lowpass:     ratio > 1.0,
		lowpassPrev: make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// advance shifts the window left and pulls one new source frame into
// the last slot.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.filled[0] = r.filled[1]
	r.filled[1] = r.filled[2]
	r.filled[2] = r.filled[3]

	n, err := r.src.ReadSamples(r.readBuf[:r.channels])
	if n > 0 {
		copy(r.window[3], r.readBuf[:n])
		r.filled[3] = true

		if r.lowpass {
			for c := range r.channels {
				r.window[3][c] = lowpassAlpha*r.window[3][c] + (1-lowpassAlpha)*r.lowpassPrev[c]
				r.lowpassPrev[c] = r.window[3][c]
			}
		}
	} else {
		r.filled[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.filled[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime fills the window with the first source frames. A source that
// ends early gets its last frame duplicated into the remaining slots.
func (r *Resampler) prime() error {
	for i := range 4 {
		n, err := r.src.ReadSamples(r.readBuf[:r.channels])
		if n > 0 {
			copy(r.window[i], r.readBuf[:n])
			r.filled[i] = true
			if i == 0 && r.lowpass {
				copy(r.lowpassPrev, r.readBuf[:n])
			}
		}
		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			for j := i; j < 4; j++ {
				copy(r.window[j], r.window[i-1])
				r.filled[j] = true
			}
			return nil
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// ReadSamples produces interleaved frames at the destination rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.filled[1] {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := range r.channels {
			y0, y3 := r.window[1][c], r.window[2][c]
			if r.filled[0] {
				y0 = r.window[0][c]
			}
			if r.filled[3] {
				y3 = r.window[3][c]
			}
			dst[written*r.channels+c] = utils.CubicInterpolate(
				y0, r.window[1][c], r.window[2][c], y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
