// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/chordgen/audio"
)

// source streams samples out of an oggvorbis reader, which already
// produces interleaved float32 in [-1, 1].
type source struct {
	dec      *oggvorbis.Reader
	channels int
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	// The reader counts in values, not frames; keep dst frame-aligned
	// so callers never see a split frame.
	want := (len(dst) / s.channels) * s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := s.dec.Read(dst[:want])
	if n == 0 && err == nil {
		return 0, nil
	}
	return n, err
}

type Decoder struct{}

// Decode parses the Ogg container and Vorbis headers and returns a
// streaming source; oggvorbis reports invalid input through NewReader.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:      dec,
		channels: dec.Channels(),
	}, nil
}
