// SPDX-License-Identifier: EPL-2.0

// Package audio holds the sample-stream primitives the generator and
// its audit path are built on.
//
// # Source
//
// A Source produces interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (n int, err error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders, the MonoMixer, the Resampler and BufferSource all
// implement it, so they compose into pipelines: a decoded artifact can
// be downmixed and drained with ReadAll, a rendered buffer can be
// wrapped in a BufferSource and resampled before encoding.
//
// # Peaks
//
// Peak and NormalizePeak carry the generator's loudness invariant:
// every non-silent chord is scaled so its absolute peak lands on the
// configured target, and silence is left untouched.
//
// # Registry
//
// The Registry maps filename extensions to codecs. Decoders and
// encoders live in separate namespaces; the built-in set is assembled
// by the root package's NewRegistry.
//
// # Errors
//
// ReadSamples returns io.EOF once a stream is exhausted, possibly
// together with a final short count. Anything else is a real failure
// and aborts the surrounding pipeline.
package audio
