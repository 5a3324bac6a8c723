// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"math"
)

// An Arc selects which of the eight 45° octants of a circle or ellipse are
// drawn. Bit k enables octant k. Octants are numbered clockwise on the
// display, starting from the left-hand horizontal:
//
//	   1  |  2
//	 \    |    /
//	0  \  |  /  3
//	 -----+-----
//	7  /  |  \  4
//	 /    |    \
//	   6  |  5
//
// Octant 0 spans angles [0, π/4] and octant k spans (kπ/4, (k+1)π/4], where
// angle 0 is the leftmost point and angles grow towards the top.
type Arc uint8

const (
	Arc0 Arc = 1 << iota
	Arc1
	Arc2
	Arc3
	Arc4
	Arc5
	Arc6
	Arc7

	// ArcFull draws the whole figure.
	ArcFull Arc = 0xff
)

// Has reports whether octant k is enabled.
func (a Arc) Has(k int) bool {
	return k >= 0 && k < 8 && a&(1<<uint(k)) != 0
}

const octantAngle = math.Pi / 4

// Octant returns the octant, 0 to 7, that contains angle. Angles are reduced
// modulo 2π first.
func Octant(angle float64) int {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	k := int(math.Ceil(angle/octantAngle)) - 1
	if k < 0 {
		return 0
	}
	if k > 7 {
		return 7
	}
	return k
}

// octantOf classifies the offset (dx, dy) from the center of a figure with
// radii xr and yr, with the same numbering as Octant. A parametric sample at
// angle a lies at (-xr·cos a, yr·sin a), so a = atan2(dy/yr, -dx/xr) and an
// ellipse splits into the same octants under both algorithms.
func octantOf(dx, dy, xr, yr int) int {
	if dx == 0 && dy == 0 {
		return 0
	}
	fx, fy := float64(-dx), float64(dy)
	if xr > 0 && yr > 0 {
		fx /= float64(xr)
		fy /= float64(yr)
	}
	return Octant(math.Atan2(fy, fx))
}

// An ArcAlgorithm selects how circles and ellipses are generated.
type ArcAlgorithm int

const (
	// ArcAngleStep steps the parametric angle by a constant amount, giving
	// evenly spaced samples in beam order around the figure.
	ArcAngleStep ArcAlgorithm = iota
	// ArcMidpoint is the integer midpoint algorithm, generating one
	// quadrant and mirroring it. It is kept for compatibility with
	// drawings made with it; octants are numbered as for ArcAngleStep.
	ArcMidpoint
)

// String returns the algorithm name.
func (a ArcAlgorithm) String() string {
	switch a {
	case ArcAngleStep:
		return "anglestep"
	case ArcMidpoint:
		return "midpoint"
	}
	return "unknown"
}

// angleStep emits a parametric circle or ellipse. The number of samples is
// the circumference divided by the skip interval, and sample i is at angle
// i·2π/n.
func (r *Rasterizer) angleStep(xc, yc, xr, yr int, circumference float64, mask Arc) {
	n := int(circumference / float64(r.interval()))
	if n < 1 {
		n = 1
	}
	step := 2 * math.Pi / float64(n)
	fxc, fyc, fxr, fyr := float64(xc), float64(yc), float64(xr), float64(yr)
	for i := 0; i < n; i++ {
		a := float64(i) * step
		if !mask.Has(Octant(a)) {
			continue
		}
		x := int(fxc - math.Cos(a)*fxr)
		y := int(fyc + math.Sin(a)*fyr)
		r.plot(x, y)
	}
}

// quadrant mirrors a first-quadrant offset (x, y), both non-negative, into
// quadrant q. Quadrants are visited upper-left, upper-right, lower-right,
// lower-left.
func quadrant(q, x, y int) (dx, dy int) {
	switch q {
	case 0:
		return -x, y
	case 1:
		return x, y
	case 2:
		return x, -y
	default:
		return -x, -y
	}
}

// mirror emits the quadrant offsets in r.quad into all four quadrants of the
// figure with radii xr and yr, one quadrant at a time, keeping only enabled
// octants. Odd quadrants are walked in reverse so that the beam travels
// around the figure without jumping.
func (r *Rasterizer) mirror(xc, yc, xr, yr int, mask Arc) {
	sk := newSkipper(r.interval())
	for q := 0; q < 4; q++ {
		for i := range r.quad {
			j := i
			if q%2 == 1 {
				j = len(r.quad) - 1 - i
			}
			dx, dy := quadrant(q, r.quad[j].x, r.quad[j].y)
			if !sk.due() {
				continue
			}
			if mask.Has(octantOf(dx, dy, xr, yr)) {
				r.plot(xc+dx, yc+dy)
			}
		}
	}
}

type offset struct{ x, y int }

// midpointCircle fills r.quad with the quadrant of a circle of radius rad,
// from (0, rad) to (rad, 0).
func (r *Rasterizer) midpointCircle(rad int) {
	r.quad = r.quad[:0]
	x, y := 0, rad
	delta := 2 - 2*rad
	for y >= 0 {
		r.quad = append(r.quad, offset{x, y})
		e := 2*(delta+y) - 1
		if delta < 0 && e <= 0 {
			x++
			delta += 2*x + 1
			continue
		}
		e = 2*(delta-x) - 1
		if delta > 0 && e > 0 {
			y--
			delta += 1 - 2*y
			continue
		}
		x++
		delta += 2 * (x - y)
		y--
	}
}

// midpointEllipse fills r.quad with the quadrant of an ellipse with radii xr
// and yr, both positive, from (0, yr) to (xr, 0).
func (r *Rasterizer) midpointEllipse(xr, yr int) {
	r.quad = r.quad[:0]
	a2, b2 := int64(xr)*int64(xr), int64(yr)*int64(yr)
	fa2, fb2 := 4*a2, 4*b2

	// Upper part, where the slope is shallower than -1.
	x, y := int64(0), int64(yr)
	for sigma := 2*b2 + a2*(1-2*y); b2*x <= a2*y; x++ {
		r.quad = append(r.quad, offset{int(x), int(y)})
		if sigma >= 0 {
			sigma += fa2 * (1 - y)
			y--
		}
		sigma += b2 * (4*x + 6)
	}

	// Lower part, generated from (xr, 0) upwards and appended in reverse.
	mark := len(r.quad)
	x, y = int64(xr), 0
	for sigma := 2*a2 + b2*(1-2*x); a2*y <= b2*x; y++ {
		r.quad = append(r.quad, offset{int(x), int(y)})
		if sigma >= 0 {
			sigma += fb2 * (1 - x)
			x--
		}
		sigma += a2 * (4*y + 6)
	}
	tail := r.quad[mark:]
	for i, j := 0, len(tail)-1; i < j; i, j = i+1, j-1 {
		tail[i], tail[j] = tail[j], tail[i]
	}
}
