// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource adapts an in-memory sample buffer to the Source
// interface, so already-rendered audio can feed the Resampler or
// MonoMixer pipelines.
type BufferSource struct {
	samples    []float32
	sampleRate int
	channels   int
	offset     int
}

// NewBufferSource wraps samples (interleaved if channels > 1) as a
// Source at sampleRate Hz. The buffer is not copied; the caller must
// not mutate it while reading.
func NewBufferSource(samples []float32, sampleRate, channels int) *BufferSource {
	if channels < 1 {
		channels = 1
	}
	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	// A dst shorter than one frame can never make progress.
	if len(dst) < b.channels || len(dst)%b.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if b.offset >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.offset:])
	// Never split a frame across reads.
	n -= n % b.channels
	b.offset += n

	if b.offset >= len(b.samples) {
		return n, io.EOF
	}
	return n, nil
}
