// SPDX-License-Identifier: EPL-2.0

package midiexport

import "errors"

var (
	ErrNoInstances = errors.New("no chord instances to export")
)
