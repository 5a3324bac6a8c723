// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package strokefont

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/xyscope/xyscope/raster"
)

// FaceOptions are optional arguments to NewFace.
type FaceOptions struct {
	// Height is the glyph cell height in pixels.
	//
	// A zero value means 32 pixels. Values above MaxFaceHeight are clamped.
	Height int

	// Spacing is the advance mode.
	//
	// A zero value means proportional spacing.
	Spacing Spacing

	// Intensity sets the stroke density, as for a raster.Density.
	//
	// A zero value means 255, which draws solid strokes.
	Intensity int

	// Charset maps runes to character codes.
	//
	// A nil value means Latin1.
	Charset *Charset
}

// MaxFaceHeight is the tallest cell a Face can draw. The glyph is drawn with
// a cell of margin on every side and must fit in 12-bit coordinates.
const MaxFaceHeight = raster.MaxCoord / 3

func (o *FaceOptions) height() int {
	if o != nil && o.Height > 0 {
		if o.Height > MaxFaceHeight {
			return MaxFaceHeight
		}
		return o.Height
	}
	return 32
}

func (o *FaceOptions) spacing() Spacing {
	if o != nil && o.Spacing.Valid() {
		return o.Spacing
	}
	return Proportional
}

func (o *FaceOptions) intensity() int {
	if o != nil && o.Intensity > 0 && o.Intensity <= 255 {
		return o.Intensity
	}
	return 255
}

func (o *FaceOptions) charset() *Charset {
	if o != nil && o.Charset != nil {
		return o.Charset
	}
	return Latin1
}

// NewFace returns a font.Face that draws the glyphs of f as one pixel wide
// strokes, for previewing stroke text on raster images.
func NewFace(f *Font, opts *FaceOptions) font.Face {
	h := opts.height()
	a := &face{
		f:       f,
		cs:      opts.charset(),
		spacing: opts.spacing(),
		height:  h,
		scale:   fixed.I(h) / GridSize,
		pad:     h,
		size:    3 * h,
	}
	a.mask = image.NewAlpha(image.Rect(0, 0, a.size, a.size))
	a.r = raster.NewRasterizer(raster.AlphaPlotter(a.mask, image.Point{0, a.size - 1}), raster.NewDensity(opts.intensity()))
	a.bounds = raster.NewRasterizer(&a.rec, raster.NewDensity(255))
	return a
}

type face struct {
	f       *Font
	cs      *Charset
	spacing Spacing
	height  int
	scale   fixed.Int26_6
	// The glyph cell's bottom left corner is at (pad, pad) in a mask of
	// size×size pixels.
	pad, size int
	mask      *image.Alpha
	r         *raster.Rasterizer
	vm        Interpreter
	// rec collects the samples of one glyph for GlyphBounds.
	rec    raster.Recorder
	bounds *raster.Rasterizer
}

// Close satisfies the font.Face interface.
func (a *face) Close() error { return nil }

// Kern satisfies the font.Face interface. Stroke fonts have no kerning.
func (a *face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics satisfies the font.Face interface.
func (a *face) Metrics() font.Metrics {
	return font.Metrics{
		Height:    fixed.Int26_6(15) * a.scale,
		Ascent:    fixed.Int26_6(GridSize) * a.scale,
		Descent:   0,
		XHeight:   fixed.Int26_6(8) * a.scale,
		CapHeight: fixed.Int26_6(14) * a.scale,
		CaretSlope: image.Point{
			X: 0,
			Y: 1,
		},
	}
}

func (a *face) glyph(r rune) Glyph {
	c, _ := a.cs.EncodeRune(r)
	return a.f.Lookup(c)
}

func (a *face) advance(g Glyph) fixed.Int26_6 {
	return fixed.Int26_6(a.f.Advance(g.Code, a.spacing)) * a.scale
}

// Glyph satisfies the font.Face interface. A glyph whose program runs away
// is reported as missing.
func (a *face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	g := a.glyph(r)
	clear(a.mask.Pix)
	a.r.ClearErr()
	if _, err := a.vm.Run(g, image.Point{a.pad, a.pad}, a.height, a.r); err != nil {
		return image.Rectangle{}, nil, image.Point{}, a.advance(g), false
	}

	// The cell's baseline is mask row size-1-pad.
	ix, iy := dot.X.Floor(), dot.Y.Floor()
	dr.Min = image.Point{
		X: ix - a.pad,
		Y: iy - (a.size - 1 - a.pad),
	}
	dr.Max = image.Point{
		X: dr.Min.X + a.size,
		Y: dr.Min.Y + a.size,
	}
	return dr, a.mask, image.Point{}, a.advance(g), true
}

// GlyphBounds satisfies the font.Face interface. The bounds are relative to
// the dot, with Y growing downwards.
func (a *face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g := a.glyph(r)
	a.rec.Reset()
	a.bounds.ClearErr()
	advance = a.advance(g)
	if _, err := a.vm.Run(g, image.Point{a.pad, a.pad}, a.height, a.bounds); err != nil {
		return fixed.Rectangle26_6{}, advance, false
	}
	if len(a.rec) == 0 {
		return fixed.Rectangle26_6{}, advance, true
	}
	b := a.rec.Bounds()
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{
			X: fixed.I(b.Min.X - a.pad),
			Y: -fixed.I(b.Max.Y - a.pad),
		},
		Max: fixed.Point26_6{
			X: fixed.I(b.Max.X - a.pad),
			Y: -fixed.I(b.Min.Y - a.pad),
		},
	}, advance, true
}

// GlyphAdvance satisfies the font.Face interface.
func (a *face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	return a.advance(a.glyph(r)), true
}
