// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"testing"

	"github.com/ik5/chordgen/audio"
)

var (
	_ audio.Source  = (*source)(nil)
	_ audio.Decoder = Decoder{}
)

// Decode success needs a real Ogg Vorbis stream, which requires binary
// fixtures; this package pins the rejection behavior and leaves the
// happy path to the wav-backed audit tests in the root package.
func TestDecoder_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: nil},
		{name: "garbage", input: bytes.Repeat([]byte{0xBE, 0xEF}, 256)},
		{name: "bare ogg magic", input: []byte("OggS")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.input)); err == nil {
				t.Error("Decode() expected error, got nil")
			}
		})
	}
}
