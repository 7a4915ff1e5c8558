package wav

import "errors"

var (
	ErrNotWavFile = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks =  errors.New("unsupported WAV chunks")
	ErrBadChannelCount = errors.New("channels must be >= 1")
	ErrBadSampleRate = errors.New("sample rate must be positive")
)
