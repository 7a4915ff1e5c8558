// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestWriteWAV16_Header(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 200, -200}
	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != headerSize+len(samples)*2 {
		t.Fatalf("output size = %d, want %d", len(data), headerSize+len(samples)*2)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("container markers = %q/%q, want RIFF/WAVE", data[0:4], data[8:12])
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 8000 {
		t.Errorf("sample rate field = %d, want 8000", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Errorf("channel field = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(len(samples)*2) {
		t.Errorf("data size field = %d, want %d", got, len(samples)*2)
	}

	for i, s := range samples {
		got := int16(binary.LittleEndian.Uint16(data[headerSize+2*i:]))
		if got != s {
			t.Errorf("payload sample %d = %d, want %d", i, got, s)
		}
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 44100, nil); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	if buf.Len() != headerSize {
		t.Errorf("output size = %d, want header only (%d)", buf.Len(), headerSize)
	}
}

// failWriter fails after the header write.
type failWriter struct {
	writes int
	err    error
}

func (w *failWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > 1 {
		return 0, w.err
	}
	return len(p), nil
}

func TestWriteWAV16_PropagatesWriteError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	err := WriteWAV16(&failWriter{err: boom}, 8000, []int16{1, 2, 3})
	if !errors.Is(err, boom) {
		t.Errorf("WriteWAV16() error = %v, want wrapped boom", err)
	}
}
