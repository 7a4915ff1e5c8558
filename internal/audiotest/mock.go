// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a deterministic sample source for pipeline tests. It
// satisfies audio.Source without importing it, and generates frames
// from a waveform function so tests never need audio fixtures.
type MockSource struct {
	rate     int
	channels int
	frames   int
	read     int
	wave     func(frame, channel int) float32
}

// NewMockSource generates frames frames of wave at rate Hz.
func NewMockSource(rate, channels, frames int, wave func(frame, channel int) float32) *MockSource {
	return &MockSource{
		rate:     rate,
		channels: channels,
		frames:   frames,
		wave:     wave,
	}
}

// NewSineSource generates a full-scale sine at freq Hz on every channel.
func NewSineSource(rate, channels, frames int, freq float64) *MockSource {
	return NewMockSource(rate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(rate)
		return float32(math.Sin(2 * math.Pi * freq * t))
	})
}

// NewConstantSource generates value on every channel of every frame.
func NewConstantSource(rate, channels, frames int, value float32) *MockSource {
	return NewMockSource(rate, channels, frames, func(_, _ int) float32 {
		return value
	})
}

// NewSilentSource generates all-zero frames.
func NewSilentSource(rate, channels, frames int) *MockSource {
	return NewConstantSource(rate, channels, frames, 0)
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so the same instance can feed another pass.
func (m *MockSource) Reset() { m.read = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.read >= m.frames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.frames - m.read; frames > remaining {
		frames = remaining
	}

	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.wave(m.read+f, c)
		}
	}
	m.read += frames

	if m.read >= m.frames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}

// FaultySource wraps MockSource semantics with injectable failures for
// exercising error propagation in mixers and resamplers.
type FaultySource struct {
	*MockSource

	ReadErr  error
	CloseErr error
}

func (f *FaultySource) ReadSamples(dst []float32) (int, error) {
	if f.ReadErr != nil {
		return 0, f.ReadErr
	}
	return f.MockSource.ReadSamples(dst)
}

func (f *FaultySource) Close() error { return f.CloseErr }
