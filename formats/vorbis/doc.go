// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files for the sample audit path,
// using github.com/jfreymuth/oggvorbis.
//
// Decoder returns an audio.Source of float32 samples in [-1, 1]:
//
//	src, err := vorbis.Decoder{}.Decode(f)
//
// oggvorbis already produces interleaved float32, so no sample
// conversion happens here; reads are clipped to whole frames so a
// multi-channel frame is never split across calls. Invalid input is
// reported by oggvorbis when the Ogg and Vorbis headers are parsed.
// Writing Vorbis is not supported.
package vorbis
