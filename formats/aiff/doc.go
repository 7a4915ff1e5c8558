// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files for the sample audit path, using
// github.com/go-audio/aiff.
//
// Decoder accepts .aif and .aiff input and returns an audio.Source of
// float32 samples in [-1, 1]:
//
//	src, err := aiff.Decoder{}.Decode(f)
//
// go-audio/aiff needs an io.ReadSeeker; a plain io.Reader is buffered
// into memory first, so very large files are better passed as *os.File.
//
// Only 16-bit PCM is supported. Other bit depths return
// ErrOnlyPCM16bitSupported, files without a readable COMM chunk return
// ErrUnsupportedAiffLayout, and anything that is not FORM/AIFF returns
// ErrNotAiffFile. Writing AIFF is not supported.
package aiff
