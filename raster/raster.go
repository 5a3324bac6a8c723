// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package raster turns points, lines, rectangles, circles and ellipses into
// the ordered coordinate samples of a vector display list.
//
// Coordinates are 12-bit (0 to 4095) on both axes, with Y growing upwards as
// on an oscilloscope screen. The number of samples generated for a figure is
// set by a Density: a brighter figure gets more samples, which holds the beam
// on it for longer.
package raster

import (
	"image"
	"math"
)

// A Rasterizer generates samples for geometric figures and hands them to a
// Plotter, normally a *Buffer.
//
// Errors are advisory. A failed Plot or a figure that does not fit on the
// display is recorded and reported by Err until ClearErr is called; drawing
// calls never fail or panic.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Algorithm selects how circles and ellipses are generated.
	Algorithm ArcAlgorithm

	dst     Plotter
	density *Density
	err     error

	// quad is scratch space for the midpoint algorithms. It grows as needed
	// and is reused between calls.
	quad []offset
}

// NewRasterizer returns a Rasterizer that plots to dst with the given
// density. A nil density means DefaultIntensity.
func NewRasterizer(dst Plotter, d *Density) *Rasterizer {
	if d == nil {
		d = &Density{}
	}
	return &Rasterizer{dst: dst, density: d}
}

// SetDensity replaces the density used for subsequent figures and returns the
// previous one.
func (r *Rasterizer) SetDensity(d *Density) (prev *Density) {
	prev = r.density
	if d == nil {
		d = &Density{}
	}
	r.density = d
	return prev
}

// Density returns the density in use.
func (r *Rasterizer) Density() *Density { return r.density }

// SetPlotter replaces the destination of subsequent samples.
func (r *Rasterizer) SetPlotter(dst Plotter) { r.dst = dst }

// Err returns the first error recorded since the last ClearErr.
func (r *Rasterizer) Err() error { return r.err }

// ClearErr clears the error indicator.
func (r *Rasterizer) ClearErr() { r.err = nil }

func (r *Rasterizer) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Rasterizer) interval() int {
	return r.density.Interval()
}

func (r *Rasterizer) plot(x, y int) {
	if err := r.dst.Plot(Pt(x, y)); err != nil {
		r.fail(err)
	}
}

// Point plots a single sample at (x, y), wrapped to 12 bits.
func (r *Rasterizer) Point(x, y int) {
	r.plot(x, y)
}

// Line plots a line from (x0, y0) to (x1, y1) with Bresenham's algorithm,
// emitting every interval'th step. The first sample is always (x0, y0) and
// the last is always (x1, y1), whatever the density.
func (r *Rasterizer) Line(x0, y0, x1, y1 int) {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	e := dx
	if dy > dx {
		e = -dy
	}
	e /= 2

	sk := newSkipper(r.interval())
	last := image.Point{x0 - 1, y0}
	for {
		if sk.due() {
			r.plot(x0, y0)
			last = image.Point{x0, y0}
		}
		if x0 == x1 && y0 == y1 {
			if last != (image.Point{x1, y1}) {
				r.plot(x1, y1)
			}
			return
		}
		e2 := e
		if e2 > -dx {
			e -= dy
			x0 += sx
		}
		if e2 < dy {
			e += dx
			y0 += sy
		}
	}
}

// Polyline plots lines joining consecutive points.
func (r *Rasterizer) Polyline(ps ...image.Point) {
	if len(ps) == 1 {
		r.Point(ps[0].X, ps[0].Y)
		return
	}
	for i := 1; i < len(ps); i++ {
		r.Line(ps[i-1].X, ps[i-1].Y, ps[i].X, ps[i].Y)
	}
}

// Rect plots the rectangle with corners (x0, y0) and (x1, y1) as four lines:
// top, right, bottom and left, in that order. Adjacent sides share their
// corner sample.
func (r *Rasterizer) Rect(x0, y0, x1, y1 int) {
	r.Line(x0, y0, x1, y0)
	r.Line(x1, y0, x1, y1)
	r.Line(x1, y1, x0, y1)
	r.Line(x0, y1, x0, y0)
}

// Circle plots the octants of the circle centered at (xc, yc) with radius
// rad that are enabled in mask. If any part of the bounding box lies off the
// display, nothing is plotted and ErrOutOfRange is recorded.
func (r *Rasterizer) Circle(xc, yc, rad int, mask Arc) {
	rad = abs(rad)
	if !InBounds(xc-rad, yc-rad, xc+rad, yc+rad) {
		r.fail(ErrOutOfRange)
		return
	}
	switch r.Algorithm {
	case ArcMidpoint:
		r.midpointCircle(rad)
		r.mirror(xc, yc, rad, rad, mask)
	default:
		r.angleStep(xc, yc, rad, rad, 2*math.Pi*float64(rad), mask)
	}
}

// Ellipse plots the octants of the axis-aligned ellipse centered at (xc, yc)
// with radii xr and yr that are enabled in mask. If any part of the bounding
// box lies off the display, nothing is plotted and ErrOutOfRange is recorded.
func (r *Rasterizer) Ellipse(xc, yc, xr, yr int, mask Arc) {
	xr, yr = abs(xr), abs(yr)
	if !InBounds(xc-xr, yc-yr, xc+xr, yc+yr) {
		r.fail(ErrOutOfRange)
		return
	}
	if r.Algorithm == ArcMidpoint && xr > 0 && yr > 0 {
		r.midpointEllipse(xr, yr)
		r.mirror(xc, yc, xr, yr, mask)
		return
	}
	// The circumference is approximated by that of the circle with the
	// quadratic mean of the two radii.
	c := 2 * math.Pi * math.Sqrt(float64(xr*xr+yr*yr)/2)
	r.angleStep(xc, yc, xr, yr, c, mask)
}
