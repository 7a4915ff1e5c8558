// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"testing"

	"github.com/ik5/chordgen/audio"
)

var (
	_ audio.Source  = (*source)(nil)
	_ audio.Decoder = Decoder{}
)

// Decode success needs real encoded frames, which require binary
// fixtures; the audit path in the root package covers the happy path
// through the wav codec, so this package only pins rejection behavior.
func TestDecoder_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: nil},
		{name: "garbage", input: bytes.Repeat([]byte{0xDE, 0xAD}, 256)},
		{name: "wav header", input: []byte("RIFF\x00\x00\x00\x00WAVE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.input)); err == nil {
				t.Error("Decode() expected error, got nil")
			}
		})
	}
}
