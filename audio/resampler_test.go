// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/chordgen/internal/audiotest"
)

var _ Source = (*Resampler)(nil)

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 100)
	r := NewResampler(src, 22050)

	if r.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
}

func TestResampler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
		frames  int
	}{
		{name: "downsample 2:1", srcRate: 44100, dstRate: 22050, frames: 44100},
		{name: "upsample 1:2", srcRate: 22050, dstRate: 44100, frames: 22050},
		{name: "non-integer ratio", srcRate: 44100, dstRate: 48000, frames: 44100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := audiotest.NewSineSource(tt.srcRate, 1, tt.frames, 440)
			got, err := ReadAll(NewResampler(src, tt.dstRate), 4096)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}

			want := tt.frames * tt.dstRate / tt.srcRate
			tolerance := 16
			if len(got) < want-tolerance || len(got) > want+tolerance {
				t.Errorf("output length = %d, want ≈%d", len(got), want)
			}
		})
	}
}

func TestResampler_ConstantSignalPreserved(t *testing.T) {
	t.Parallel()

	// Cubic interpolation between equal points is exact, and the
	// downsampling low-pass is seeded with the first frame, so a DC
	// signal must come through untouched in both directions.
	for _, dstRate := range []int{22050, 88200} {
		src := audiotest.NewConstantSource(44100, 1, 2000, 0.25)
		got, err := ReadAll(NewResampler(src, dstRate), 512)
		if err != nil {
			t.Fatalf("dst %d: ReadAll() error = %v", dstRate, err)
		}
		if len(got) == 0 {
			t.Fatalf("dst %d: no output", dstRate)
		}
		for i, s := range got {
			if math.Abs(float64(s)-0.25) > 1e-6 {
				t.Fatalf("dst %d: sample %d = %v, want 0.25", dstRate, i, s)
			}
		}
	}
}

func TestResampler_StereoKeepsFramesAligned(t *testing.T) {
	t.Parallel()

	// Distinct per-channel DC values must never bleed into each other.
	src := audiotest.NewMockSource(44100, 2, 1000, func(_, channel int) float32 {
		if channel == 0 {
			return 0.5
		}
		return -0.5
	})

	got, err := ReadAll(NewResampler(src, 22050), 256)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got)%2 != 0 {
		t.Fatalf("output length %d is not frame-aligned", len(got))
	}
	for i := 0; i < len(got); i += 2 {
		if math.Abs(float64(got[i])-0.5) > 1e-6 || math.Abs(float64(got[i+1])+0.5) > 1e-6 {
			t.Fatalf("frame %d = (%v, %v), want (0.5, -0.5)", i/2, got[i], got[i+1])
		}
	}
}

func TestResampler_MisalignedDst(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 2, 100), 22050)
	if _, err := r.ReadSamples(make([]float32, 5)); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() with odd dst = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(44100, 1, 0), 22050)
	if n, err := r.ReadSamples(make([]float32, 16)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestResampler_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad stream")
	src := &audiotest.FaultySource{
		MockSource: audiotest.NewSilentSource(44100, 1, 100),
		ReadErr:    boom,
		CloseErr:   boom,
	}
	r := NewResampler(src, 22050)

	if _, err := r.ReadSamples(make([]float32, 16)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want wrapped boom", err)
	}
	if err := r.Close(); !errors.Is(err, boom) {
		t.Errorf("Close() error = %v, want wrapped boom", err)
	}
}

func TestResampler_FeedsFromBufferSource(t *testing.T) {
	t.Parallel()

	// The batch driver's output-rate path: rendered buffer in, halved
	// rate out.
	buf := make([]float32, 4410)
	for i := range buf {
		buf[i] = 0.75
	}

	got, err := ReadAll(NewResampler(NewBufferSource(buf, 44100, 1), 22050), 1024)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := len(buf) / 2
	if len(got) < want-8 || len(got) > want+8 {
		t.Errorf("output length = %d, want ≈%d", len(got), want)
	}
	for i, s := range got {
		if math.Abs(float64(s)-0.75) > 1e-6 {
			t.Fatalf("sample %d = %v, want 0.75", i, s)
		}
	}
}
