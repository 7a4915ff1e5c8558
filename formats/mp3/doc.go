// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files for the sample audit path, using
// github.com/hajimehoshi/go-mp3.
//
// Decoder returns an audio.Source of float32 samples in [-1, 1]:
//
//	src, err := mp3.Decoder{}.Decode(f)
//
// go-mp3 always outputs interleaved stereo regardless of the encoded
// channel count, so Channels() is always 2; wrap the source in
// audio.MonoMixer to measure a mono peak. Invalid input is reported by
// go-mp3 itself when the frame headers are parsed. Writing MP3 is not
// supported.
package mp3
