// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"testing"
)

// memWriteSeeker is an in-memory io.WriteSeeker for encoder tests.
type memWriteSeeker struct {
	buf []byte
	pos int
}

func (m *memWriteSeeker) Write(p []byte) (int, error) {
	if need := m.pos + len(p); need > len(m.buf) {
		grown := make([]byte, need)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:], p)
	m.pos += len(p)
	return len(p), nil
}

func (m *memWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(m.pos) + offset
	case io.SeekEnd:
		pos = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative position")
	}
	m.pos = int(pos)
	return pos, nil
}

func TestEncoder_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []float32{0.0, 0.25, -0.25, 0.5, -0.5, 0.95, -0.95, 0.0}

	ws := &memWriteSeeker{}
	enc := Encoder{}

	if enc.Ext() != "wav" {
		t.Errorf("Ext() = %q, want \"wav\"", enc.Ext())
	}

	if err := enc.Encode(ws, samples, 44100, 1); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	// The artifact must decode with our own WAV decoder.
	src, err := Decoder{}.Decode(bytes.NewReader(ws.buf))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 44100 {
		t.Errorf("decoded sample rate = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("decoded channels = %d, want 1", src.Channels())
	}

	got := make([]float32, len(samples))
	n, err := src.ReadSamples(got)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	// 16-bit quantization allows a small error.
	const tolerance = 2.0 / 32768.0
	for i := range samples {
		if math.Abs(float64(got[i]-samples[i])) > tolerance {
			t.Errorf("sample %d = %v, want %v (±%v)", i, got[i], samples[i], tolerance)
		}
	}
}

func TestEncoder_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	ws := &memWriteSeeker{}
	if err := (Encoder{}).Encode(ws, []float32{1.5, -1.5}, 8000, 1); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(ws.buf))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := make([]float32, 2)
	if _, err := src.ReadSamples(got); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	for i, s := range got {
		if s > 1.0 || s < -1.0 {
			t.Errorf("sample %d = %v, not clamped to [-1, 1]", i, s)
		}
	}
}

func TestEncoder_InvalidArguments(t *testing.T) {
	t.Parallel()

	ws := &memWriteSeeker{}

	if err := (Encoder{}).Encode(ws, nil, 44100, 0); err != ErrBadChannelCount {
		t.Errorf("Encode() with 0 channels = %v, want ErrBadChannelCount", err)
	}
	if err := (Encoder{}).Encode(ws, nil, 0, 1); err != ErrBadSampleRate {
		t.Errorf("Encode() with 0 rate = %v, want ErrBadSampleRate", err)
	}
}
