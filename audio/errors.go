// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// ErrInvalidDstSize is returned by ReadSamples when dst cannot hold a
// whole number of frames, including a dst shorter than one frame.
var ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
