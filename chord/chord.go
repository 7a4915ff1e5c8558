// SPDX-License-Identifier: EPL-2.0

// Package chord defines chord shape templates and enumerates the
// (root pitch, shape) instances a batch run renders.
package chord

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Shape is a named chord template: the ordered semitone offsets of the
// chord tones above the root. Shapes are immutable after construction.
type Shape struct {
	Name    string
	Offsets []int
}

// maxOffset returns the highest offset in the shape, so the top note of
// an instance is root + maxOffset.
func (s Shape) maxOffset() int {
	var m int
	for _, off := range s.Offsets {
		if off > m {
			m = off
		}
	}
	return m
}

// DefaultShapes is the built-in shape table. The slice order is the
// enumeration order, so it must stay stable for reproducible output.
var DefaultShapes = []Shape{
	{Name: "maj", Offsets: []int{0, 4, 7}},
	{Name: "min", Offsets: []int{0, 3, 7}},
	{Name: "power", Offsets: []int{0, 7}},
	{Name: "7", Offsets: []int{0, 4, 7, 10}},
	{Name: "maj7", Offsets: []int{0, 4, 7, 11}},
	{Name: "m7", Offsets: []int{0, 3, 7, 10}},
	{Name: "dim", Offsets: []int{0, 3, 6}},
	{Name: "aug", Offsets: []int{0, 4, 8}},
	{Name: "sus2", Offsets: []int{0, 2, 7}},
	{Name: "sus4", Offsets: []int{0, 5, 7}},
}

// Instance is one chord to render. Tag is the identifier used for
// output file naming, e.g. "B0-maj".
type Instance struct {
	Root  int
	Shape Shape
	Tag   string
}

var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName maps a MIDI note number to a pitch-class-and-octave label,
// e.g. 35 -> "B0", 100 -> "E6". The octave offset matches the naming
// used by existing sample libraries and must not change, or generated
// filenames stop lining up with already-published ones.
func NoteName(n int) string {
	return fmt.Sprintf("%s%d", pitchNames[n%12], n/12-2)
}

// ParseNoteName is the inverse of NoteName: "B0" -> 35, "E6" -> 100.
func ParseNoteName(name string) (int, error) {
	i := strings.IndexAny(name, "-0123456789")
	if i <= 0 {
		return 0, ErrBadNoteName
	}
	octave, err := strconv.Atoi(name[i:])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrBadNoteName, name)
	}
	for pc, pcName := range pitchNames {
		if pcName == name[:i] {
			return (octave+2)*12 + pc, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrBadNoteName, name)
}

// Enumerate yields every playable (root, shape) pair with root in
// [minPitch, maxPitch]: ascending root first, then shape table order.
// Pairs whose top note would exceed maxPitch are skipped, not an error.
// The sequence is lazy, finite and deterministic, and may be ranged
// over any number of times.
func Enumerate(minPitch, maxPitch int, shapes []Shape) iter.Seq[Instance] {
	return func(yield func(Instance) bool) {
		for root := minPitch; root <= maxPitch; root++ {
			for _, shape := range shapes {
				if root+shape.maxOffset() > maxPitch {
					continue
				}
				inst := Instance{
					Root:  root,
					Shape: shape,
					Tag:   NoteName(root) + "-" + shape.Name,
				}
				if !yield(inst) {
					return
				}
			}
		}
	}
}
