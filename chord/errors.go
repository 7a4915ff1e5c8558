// SPDX-License-Identifier: EPL-2.0

package chord

import "errors"

var (
	ErrBadNoteName = errors.New("not a note name")
)
