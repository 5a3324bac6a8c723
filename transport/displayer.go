// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package transport

import (
	"context"
	"image"
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/xyscope/xyscope/raster"
)

// A Displayer is a DisplayTransport that previews display lists on a pixel
// display, such as a small LCD next to the scope. Samples are scaled to fit
// the shorter side of the display and drawn one pixel each.
type Displayer struct {
	d      drivers.Displayer
	fg, bg color.RGBA
	lit    []image.Point
}

// NewDisplayer returns a Displayer drawing in fg on bg.
func NewDisplayer(d drivers.Displayer, fg, bg color.RGBA) *Displayer {
	return &Displayer{d: d, fg: fg, bg: bg}
}

// Refresh erases the pixels of the previous frame, draws snap and sends the
// result to the display.
func (t *Displayer) Refresh(ctx context.Context, snap raster.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, p := range t.lit {
		t.d.SetPixel(int16(p.X), int16(p.Y), t.bg)
	}
	t.lit = t.lit[:0]

	w, h := t.d.Size()
	side := int(min(w, h))
	if side > 0 {
		for i := min(raster.PreambleLen, snap.Len()); i < snap.Len(); i++ {
			q := scale(snap.At(i).Point(), side)
			t.d.SetPixel(int16(q.X), int16(q.Y), t.fg)
			t.lit = append(t.lit, q)
		}
	}
	return t.d.Display()
}

// scale maps display coordinates onto a side×side pixel grid with Y
// pointing down.
func scale(p image.Point, side int) image.Point {
	return image.Point{
		X: p.X * side / (raster.MaxCoord + 1),
		Y: side - 1 - p.Y*side/(raster.MaxCoord+1),
	}
}
