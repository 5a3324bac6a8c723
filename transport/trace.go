// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package transport

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/vector"

	"github.com/xyscope/xyscope/raster"
)

// Phosphor colors for TraceOptions.
var (
	P1Green = color.RGBA{0x33, 0xff, 0x66, 0xff}
	P7Blue  = color.RGBA{0x99, 0xcc, 0xff, 0xff}
	Black   = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// TraceOptions are optional arguments to NewTrace.
type TraceOptions struct {
	// Size is the width and height of the trace image in pixels.
	//
	// A zero value means 512.
	Size int

	// Spot is the beam spot diameter in pixels.
	//
	// A zero value means 1.5.
	Spot float32

	// Phosphor and Background color the trace.
	//
	// Zero values mean P1Green and Black.
	Phosphor, Background color.RGBA

	// ShowPreamble draws the synchronization preamble, which a scope shows
	// only while the blanking input is disconnected.
	ShowPreamble bool
}

func (o *TraceOptions) size() int {
	if o != nil && o.Size > 0 {
		return o.Size
	}
	return 512
}

func (o *TraceOptions) spot() float32 {
	if o != nil && o.Spot > 0 {
		return o.Spot
	}
	return 1.5
}

func (o *TraceOptions) colors() (fg, bg color.RGBA) {
	fg, bg = P1Green, Black
	if o != nil {
		if o.Phosphor != (color.RGBA{}) {
			fg = o.Phosphor
		}
		if o.Background != (color.RGBA{}) {
			bg = o.Background
		}
	}
	return fg, bg
}

// A Trace is a DisplayTransport that simulates a scope screen: each sample
// lights a round-cornered spot on a square RGBA image, with Y pointing up.
type Trace struct {
	mu       sync.Mutex
	img      *image.RGBA
	r        *vector.Rasterizer
	spot     float32
	fg, bg   *image.Uniform
	preamble bool
	frames   int
}

// NewTrace returns a Trace with a blank screen.
func NewTrace(opts *TraceOptions) *Trace {
	size := opts.size()
	fg, bg := opts.colors()
	t := &Trace{
		img:      image.NewRGBA(image.Rect(0, 0, size, size)),
		r:        vector.NewRasterizer(size, size),
		spot:     opts.spot(),
		fg:       image.NewUniform(fg),
		bg:       image.NewUniform(bg),
		preamble: opts != nil && opts.ShowPreamble,
	}
	draw.Draw(t.img, t.img.Bounds(), t.bg, image.Point{}, draw.Src)
	return t
}

// Refresh redraws the screen from snap.
func (t *Trace) Refresh(ctx context.Context, snap raster.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	b := t.img.Bounds()
	draw.Draw(t.img, b, t.bg, image.Point{}, draw.Src)
	t.frames++

	start := 0
	if !t.preamble {
		start = min(raster.PreambleLen, snap.Len())
	}
	if start == snap.Len() {
		return nil
	}
	t.r.Reset(b.Dx(), b.Dy())
	for i := start; i < snap.Len(); i++ {
		t.addSpot(snap.At(i).Point())
	}
	t.r.Draw(t.img, b, t.fg, image.Point{})
	return nil
}

// addSpot adds the spot for p to the rasterizer as a closed octagon.
func (t *Trace) addSpot(p image.Point) {
	x, y := t.pixel(p)
	h := t.spot / 2
	c := h * 0.4142
	t.r.MoveTo(x-c, y-h)
	t.r.LineTo(x+c, y-h)
	t.r.LineTo(x+h, y-c)
	t.r.LineTo(x+h, y+c)
	t.r.LineTo(x+c, y+h)
	t.r.LineTo(x-c, y+h)
	t.r.LineTo(x-h, y+c)
	t.r.LineTo(x-h, y-c)
	t.r.ClosePath()
}

// pixel maps display coordinates to the center of the image pixel they
// fall in.
func (t *Trace) pixel(p image.Point) (x, y float32) {
	q := scale(p, t.img.Bounds().Dx())
	return float32(q.X) + 0.5, float32(q.Y) + 0.5
}

// Image returns a copy of the screen.
func (t *Trace) Image() *image.RGBA {
	t.mu.Lock()
	defer t.mu.Unlock()
	dst := image.NewRGBA(t.img.Bounds())
	copy(dst.Pix, t.img.Pix)
	return dst
}

// CopyPixels copies the screen's RGBA pixels into dst, which must hold
// 4×Size×Size bytes, and returns the number of bytes copied.
func (t *Trace) CopyPixels(dst []byte) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copy(dst, t.img.Pix)
}

// Frames returns the number of refreshes so far.
func (t *Trace) Frames() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frames
}
