// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/chordgen/utils"
)

// Encoder writes float32 sample buffers as PCM 16-bit WAV files,
// using github.com/go-audio/wav for the container layout.
type Encoder struct{}

// Ext returns the filename extension for files this encoder produces.
func (Encoder) Ext() string { return "wav" }

// Encode writes samples (interleaved if channels > 1) to ws as a
// complete WAV file. Samples outside [-1, 1] are clamped.
func (Encoder) Encode(ws io.WriteSeeker, samples []float32, sampleRate, channels int) error {
	if channels < 1 {
		return ErrBadChannelCount
	}
	if sampleRate <= 0 {
		return ErrBadSampleRate
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, channels, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		buf.Data[i] = int(utils.Float32ToInt16(s))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
