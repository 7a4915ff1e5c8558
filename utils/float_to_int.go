// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a [-1, 1] sample to signed 16-bit PCM.
// Out-of-range input is clamped, so -1 maps to -32767 rather than
// -32768 and the positive rail cannot overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
