// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/chordgen/audio"
)

var _ audio.Source = (*source)(nil)

// writeAiffFile encodes pcm as a 16-bit AIFF through go-audio and
// returns the file contents.
func writeAiffFile(t *testing.T, sampleRate, channels int, pcm []int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.aiff")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	enc := aiff.NewEncoder(f, sampleRate, 16, channels)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           pcm,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("aiff encoder Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("aiff encoder Close() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return data
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	pcm := []int{0, 8192, -8192, 16384, -16384, 100}
	data := writeAiffFile(t, 8000, 1, pcm)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want > 0", src.BufSize())
	}

	got := make([]float32, len(pcm))
	n, err := src.ReadSamples(got)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(pcm) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(pcm))
	}

	const tolerance = 2.0 / 32768.0
	for i, v := range pcm {
		want := float64(v) / 32768.0
		if math.Abs(float64(got[i])-want) > tolerance {
			t.Errorf("sample %d = %v, want %v (±%v)", i, got[i], want, tolerance)
		}
	}
}

// plainReader hides the Seek method, forcing the in-memory fallback.
type plainReader struct {
	r io.Reader
}

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

func TestDecoder_NonSeekingReader(t *testing.T) {
	t.Parallel()

	data := writeAiffFile(t, 8000, 1, []int{1, 2, 3, 4})

	src, err := Decoder{}.Decode(plainReader{r: bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	garbage := bytes.Repeat([]byte{0xDE, 0xAD}, 64)
	if _, err := (Decoder{}).Decode(bytes.NewReader(garbage)); err != ErrNotAiffFile {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}
