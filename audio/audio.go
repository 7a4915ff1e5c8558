// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

type Source interface {
    // SampleRate of the PCM stream in Hz.
    SampleRate() int
    // Channels count (e.g., 1=mono, 2=stereo).
    Channels() int
    // ReadSamples fills dst with interleaved float32 samples in [-1,1].
    // Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
    ReadSamples(dst []float32) (n int, err error)

    BufSize() int

    // Close releases any resources.
    Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
    Decode(r io.Reader) (Source, error)
}

// Encoder writes a float sample buffer as one encoded audio file.
// samples are interleaved when channels > 1 and expected in [-1,1].
// The writer must also seek: container formats backfill chunk sizes
// after the payload is written.
type Encoder interface {
    // Ext is the filename extension for files this encoder produces,
    // without the dot (e.g. "wav").
    Ext() string
    Encode(ws io.WriteSeeker, samples []float32, sampleRate, channels int) error
}

// Registry for codecs by format key (e.g., "wav", "mp3", "ogg vorbis").
type Registry struct {
    codecs   map[string]Decoder
    encoders map[string]Encoder

    mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		encoders: make(map[string]Encoder),
		mtx: &sync.Mutex{},
    }
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

    d, ok := r.codecs[format]
    return d, ok
}

func (r *Registry) RegisterEncoder(format string, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.encoders[format] = e
}

func (r *Registry) GetEncoder(format string) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

    e, ok := r.encoders[format]
    return e, ok
}
