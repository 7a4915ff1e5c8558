// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	ErrNoFrames = errors.New("engine produced no frames")
)
