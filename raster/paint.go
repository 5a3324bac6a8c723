// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"image"
)

// A Plotter receives the samples generated by a Rasterizer, in beam order.
// A non-nil error means the sample was not stored; the Rasterizer records it
// and carries on with the rest of the figure.
type Plotter interface {
	Plot(s Sample) error
}

// The PlotterFunc type adapts an ordinary function to the Plotter interface.
type PlotterFunc func(s Sample) error

// Plot just delegates the call to f.
func (f PlotterFunc) Plot(s Sample) error { return f(s) }

// A Recorder is an unbounded Plotter that keeps every sample. It is used to
// measure figures and to render glyphs away from the display list.
type Recorder []Sample

// Plot appends s to the Recorder.
func (r *Recorder) Plot(s Sample) error {
	*r = append(*r, s)
	return nil
}

// Reset discards the recorded samples but keeps the storage.
func (r *Recorder) Reset() { *r = (*r)[:0] }

// Points returns the untagged coordinates of the recorded samples.
func (r Recorder) Points() []image.Point {
	ps := make([]image.Point, len(r))
	for i, s := range r {
		ps[i] = s.Point()
	}
	return ps
}

// Bounds returns the smallest rectangle containing every recorded sample, in
// display coordinates. Max is exclusive, as for image.Rectangle.
func (r Recorder) Bounds() image.Rectangle {
	if len(r) == 0 {
		return image.Rectangle{}
	}
	p := r[0].Point()
	b := image.Rectangle{Min: p, Max: p.Add(image.Point{1, 1})}
	for _, s := range r[1:] {
		p = s.Point()
		b = b.Union(image.Rectangle{Min: p, Max: p.Add(image.Point{1, 1})})
	}
	return b
}

// AlphaPlotter returns a Plotter that marks each sample as a fully opaque
// pixel of m. Display coordinates have Y growing upwards, so the sample
// (x, y) lands on pixel (x - origin.X, origin.Y - y). Samples outside m are
// ignored.
func AlphaPlotter(m *image.Alpha, origin image.Point) Plotter {
	return PlotterFunc(func(s Sample) error {
		p := s.Point()
		x, y := p.X-origin.X, origin.Y-p.Y
		if !(image.Point{x, y}).In(m.Rect) {
			return nil
		}
		m.Pix[m.PixOffset(x, y)] = 0xff
		return nil
	})
}

// MultiPlotter returns a Plotter that duplicates each sample to all of ps.
// The first error is returned, after every Plotter has been called.
func MultiPlotter(ps ...Plotter) Plotter {
	return PlotterFunc(func(s Sample) error {
		var err error
		for _, p := range ps {
			if e := p.Plot(s); e != nil && err == nil {
				err = e
			}
		}
		return err
	})
}
