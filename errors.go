// SPDX-License-Identifier: EPL-2.0

package chordgen

import "errors"

var (
	ErrBadPitchRange = errors.New("pitch range must satisfy 0 <= min <= max <= 127")
	ErrBadSampleRate = errors.New("sample rate must be positive")
	ErrBadDuration   = errors.New("sustain and decay must be non-negative and not both zero")
	ErrBadVelocity   = errors.New("velocity must be in 1..127")
	ErrNoShapes      = errors.New("no chord shapes configured")
)
