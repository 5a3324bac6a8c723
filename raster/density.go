// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

// DefaultIntensity is the intensity of a zero Density.
const DefaultIntensity = 100

// The intensity to interval mapping is two linear segments that meet at the
// breakpoint: [25,100] maps to [40,10] and [100,255] maps to [10,1].
const (
	breakpoint = 100

	lowInMin, lowOutMin   = 25, 40
	lowInMax, lowOutMax   = 100, 10
	highInMin, highOutMin = 100, 10
	highInMax, highOutMax = 255, 1
)

// A Density converts a brightness-like intensity (0-255, nominally 100) into
// the skip interval used by the rasterizers. A brighter figure is drawn with
// more samples per unit length, which keeps the beam on it for longer.
//
// The zero value has intensity DefaultIntensity.
type Density struct {
	intensity int
	interval  int
	set       bool
}

// NewDensity returns a Density with the given intensity, or with
// DefaultIntensity if v is out of range.
func NewDensity(v int) *Density {
	d := &Density{}
	d.SetIntensity(v)
	return d
}

// SetIntensity sets the intensity. Values outside 0-255 are ignored and the
// previous setting is kept; the result reports whether v was accepted.
func (d *Density) SetIntensity(v int) bool {
	if v < 0 || v > 255 {
		return false
	}
	d.intensity = v
	d.interval = intervalFor(v)
	d.set = true
	return true
}

// Intensity returns the current intensity.
func (d *Density) Intensity() int {
	if d == nil || !d.set {
		return DefaultIntensity
	}
	return d.intensity
}

// Interval returns the skip interval: 1 means every geometric sample is
// emitted, n means every n'th one is.
func (d *Density) Interval() int {
	if d == nil || !d.set {
		return intervalFor(DefaultIntensity)
	}
	return d.interval
}

// intervalFor evaluates the piecewise-linear mapping with truncating integer
// division. Intensities below 25 extrapolate the low segment upwards.
func intervalFor(v int) int {
	inMin, inMax, outMin, outMax := lowInMin, lowInMax, lowOutMin, lowOutMax
	if v >= breakpoint {
		inMin, inMax, outMin, outMax = highInMin, highInMax, highOutMin, highOutMax
	}
	n := (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
	if n < 1 {
		n = 1
	}
	return n
}

// A skipper decides which of a stream of geometric samples are emitted.
type skipper struct {
	interval, count int
}

func newSkipper(interval int) skipper {
	if interval < 1 {
		interval = 1
	}
	return skipper{interval: interval}
}

// due reports whether the current sample should be emitted, and advances the
// counter. The first sample is always due.
func (s *skipper) due() bool {
	if s.count <= 0 {
		s.count = s.interval - 1
		return true
	}
	s.count--
	return false
}
