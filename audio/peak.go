// SPDX-License-Identifier: EPL-2.0

package audio

// Peak returns the maximum absolute sample value in buf.
// An empty buffer has peak 0.
func Peak(buf []float32) float32 {
	var peak float32
	for _, s := range buf {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

// NormalizePeak scales buf in place so that Peak(buf) == target, and
// returns the peak found before scaling. A silent buffer (peak 0) is
// left untouched so no division by zero can occur; the returned peak
// is 0 in that case.
func NormalizePeak(buf []float32, target float32) float32 {
	peak := Peak(buf)
	if peak == 0 {
		return 0
	}
	scale := target / peak
	for i := range buf {
		buf[i] *= scale
	}
	return peak
}
