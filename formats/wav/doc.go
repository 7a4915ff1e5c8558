// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes 16-bit PCM WAV files.
//
// Encoder turns the float buffers produced by the renderer into WAV
// files on disk, using github.com/go-audio/wav:
//
//	f, _ := os.Create("chord.wav")
//	err := wav.Encoder{}.Encode(f, samples, 44100, 1)
//
// WriteWAV16 does the same for data that is already 16-bit PCM:
//
//	err := wav.WriteWAV16(w, 8000, pcm)
//
// Decoder reads those files back for auditing. It parses the canonical
// 44-byte header (RIFF, "fmt " and "data" chunks, nothing in between)
// and returns an audio.Source of float32 samples in [-1, 1]:
//
//	src, err := wav.Decoder{}.Decode(f)
//
// Files with extra chunks or non-PCM encodings are rejected with
// ErrUnsupportedWavChunks, ErrUnsupportedWavLayout or
// ErrOnlyPCM16bitSupported; anything that is not RIFF/WAVE at all gets
// ErrNotWavFile.
package wav
