// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"fmt"
	"image"
)

// The display is addressed with 12-bit coordinates on both axes.
const (
	CoordBits = 12
	CoordMask = 1<<CoordBits - 1
	MaxCoord  = CoordMask
)

// Channel tags route each word of a sample to its analog output. The DAC
// reads bit 12 of every halfword to choose channel 0 (X) or channel 1 (Y).
const (
	TagX uint16 = 0x0000
	TagY uint16 = 0x1000

	tagMask uint16 = 0xF000
)

// A Sample is one display list entry: an X word and a Y word, each holding a
// 12-bit coordinate and the channel tag for its role.
type Sample struct {
	X, Y uint16
}

// Pt returns the Sample for the point (x, y). Out of range coordinates are
// wrapped to 12 bits, so Pt(4096, -1) is the same as Pt(0, 4095).
func Pt(x, y int) Sample {
	return Sample{
		X: uint16(x)&CoordMask | TagX,
		Y: uint16(y)&CoordMask | TagY,
	}
}

// Point returns the untagged coordinates of s.
func (s Sample) Point() image.Point {
	return image.Point{int(s.X & CoordMask), int(s.Y & CoordMask)}
}

// Tagged reports whether both words carry the tag for their role.
func (s Sample) Tagged() bool {
	return s.X&tagMask == TagX && s.Y&tagMask == TagY
}

// String returns a human-readable representation of a Sample.
// For example, Pt(10, 20) becomes "(10,20)".
func (s Sample) String() string {
	p := s.Point()
	if !s.Tagged() {
		return fmt.Sprintf("(%d,%d)!tag", p.X, p.Y)
	}
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// pack and unpack convert a Sample to and from the single word held by a
// buffer slot, so that both halves are written in one store.
func (s Sample) pack() uint32 {
	return uint32(s.X) | uint32(s.Y)<<16
}

func unpack(w uint32) Sample {
	return Sample{X: uint16(w), Y: uint16(w >> 16)}
}

// InBounds reports whether the closed box [x0,x1]×[y0,y1] lies entirely on
// the display.
func InBounds(x0, y0, x1, y1 int) bool {
	return x0 >= 0 && y0 >= 0 && x1 <= MaxCoord && y1 <= MaxCoord &&
		x0 <= MaxCoord && y0 <= MaxCoord && x1 >= 0 && y1 >= 0
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
