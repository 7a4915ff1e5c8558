// SPDX-License-Identifier: EPL-2.0

package melty

import "errors"

var (
	ErrBadSampleRate     = errors.New("sample rate must be positive")
	ErrUnknownInstrument = errors.New("unknown instrument handle")
	ErrNoProgram         = errors.New("no program selected")
)
