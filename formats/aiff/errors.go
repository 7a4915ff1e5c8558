package aiff

import "errors"

var (
	ErrNotAiffFile           = errors.New("not an AIFF file")
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
