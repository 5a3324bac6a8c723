// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package xyscope builds display lists for XY vector displays such as an
// oscilloscope in XY mode. Shapes and stroke text are converted to an
// ordered list of 12-bit coordinate samples that a transport streams to a
// pair of DACs.
//
// Use the raster and strokefont packages for lower level control over
// sampling and glyph decoding, and the transport package to show a display
// list.
package xyscope

import (
	"image"
	"time"

	"github.com/xyscope/xyscope/raster"
	"github.com/xyscope/xyscope/strokefont"
)

// Spacing selects how far the text cursor advances after each character.
type Spacing = strokefont.Spacing

const (
	Proportional = strokefont.Proportional
	MonoTight    = strokefont.MonoTight
	Mono         = strokefont.Mono
	MonoWide     = strokefont.MonoWide
)

// Octant masks for CircleArc and EllipseArc.
const (
	Arc0    = raster.Arc0
	Arc1    = raster.Arc1
	Arc2    = raster.Arc2
	Arc3    = raster.Arc3
	Arc4    = raster.Arc4
	Arc5    = raster.Arc5
	Arc6    = raster.Arc6
	Arc7    = raster.Arc7
	ArcFull = raster.ArcFull
)

// A Renderer holds the display list and the drawing state of one display:
// shape and text intensities, text spacing, size and cursor.
//
// Drawing calls never fail. Each public drawing call clears the error
// indicator first and records the first problem it meets, which Err reports
// until the next drawing call.
//
// A Renderer has a single producer and is not safe for concurrent use,
// except for Snapshot and LastActivity, which any goroutine may call at any
// time.
type Renderer struct {
	buf      *raster.Buffer
	r        *raster.Rasterizer
	graphics *raster.Density
	text     *raster.Density

	font    *strokefont.Font
	cs      *strokefont.Charset
	vm      strokefont.Interpreter
	spacing Spacing

	cursor      image.Point
	textSize    int
	left, right int

	// overflowLogged is set once a drawing pass has logged dropped samples.
	overflowLogged bool
}

// New returns a Renderer with an empty, finalized display list.
func New(opts *Options) *Renderer {
	r := &Renderer{
		buf:      raster.NewBuffer(opts.capacity()),
		graphics: raster.NewDensity(opts.graphicsIntensity()),
		text:     raster.NewDensity(opts.textIntensity()),
		font:     opts.font(),
		cs:       opts.charset(),
		spacing:  opts.spacing(),
		cursor:   image.Point{0, raster.MaxCoord},
		textSize: opts.textSize(),
	}
	r.left, r.right = opts.margins()
	r.r = raster.NewRasterizer(r.buf, r.graphics)
	r.r.Algorithm = opts.arcAlgorithm()
	r.buf.Clear()
	return r
}

// Buffer returns the display list.
func (r *Renderer) Buffer() *raster.Buffer { return r.buf }

// Snapshot returns a read-only view of the published display list. It is
// safe to call from any goroutine.
func (r *Renderer) Snapshot() raster.Snapshot { return r.buf.Snapshot() }

// LastActivity returns the time the last sample was plotted. It is safe to
// call from any goroutine.
func (r *Renderer) LastActivity() time.Time { return r.buf.LastActivity() }

// Err returns the problem met by the last drawing call, if any: either
// raster.ErrBufferFull or raster.ErrOutOfRange.
func (r *Renderer) Err() error { return r.r.Err() }

// begin starts a public drawing call.
func (r *Renderer) begin() { r.r.ClearErr() }

// end finishes a public drawing call and logs what went wrong, once per
// drawing pass for dropped samples.
func (r *Renderer) end(what string) {
	switch err := r.r.Err(); err {
	case nil:
	case raster.ErrBufferFull:
		if !r.overflowLogged {
			r.overflowLogged = true
			Logger().Warn("display list full, dropping samples",
				"op", what, "capacity", r.buf.Cap(), "limit", r.buf.Limit())
		}
	default:
		Logger().Warn("figure skipped", "op", what, "err", err)
	}
}

// Start empties the display list and writes the synchronization preamble.
// It begins a drawing pass.
func (r *Renderer) Start() {
	r.begin()
	r.buf.Reset()
	r.overflowLogged = false
	Logger().Debug("display list reset", "len", r.buf.Len())
}

// Reset is the same as Start.
func (r *Renderer) Reset() { r.Start() }

// End finalizes the display list, ending a drawing pass.
func (r *Renderer) End() {
	r.buf.Finalize()
	Logger().Debug("display list finalized", "len", r.buf.Len(), "dropped", r.buf.Dropped())
}

// Finalize is the same as End.
func (r *Renderer) Finalize() { r.End() }

// Clear blanks the display: the list is reset and finalized with nothing
// but the preamble.
func (r *Renderer) Clear() {
	r.Start()
	r.End()
}

// SetGraphicsIntensity sets the intensity of shapes, 0 to 255. Other values
// are ignored and false is returned.
func (r *Renderer) SetGraphicsIntensity(v int) bool { return r.graphics.SetIntensity(v) }

// GraphicsIntensity returns the intensity of shapes.
func (r *Renderer) GraphicsIntensity() int { return r.graphics.Intensity() }

// SetTextIntensity sets the intensity of text, 0 to 255. Other values are
// ignored and false is returned.
func (r *Renderer) SetTextIntensity(v int) bool { return r.text.SetIntensity(v) }

// TextIntensity returns the intensity of text.
func (r *Renderer) TextIntensity() int { return r.text.Intensity() }

// SetArcAlgorithm selects how circles and ellipses are generated.
func (r *Renderer) SetArcAlgorithm(a raster.ArcAlgorithm) { r.r.Algorithm = a }

// Point plots a single sample. Coordinates wrap to 12 bits.
func (r *Renderer) Point(x, y int) {
	r.begin()
	r.r.Point(x, y)
	r.end("point")
}

// Line draws a line from (x0, y0) to (x1, y1).
func (r *Renderer) Line(x0, y0, x1, y1 int) {
	r.begin()
	r.r.Line(x0, y0, x1, y1)
	r.end("line")
}

// Polyline draws lines joining consecutive points.
func (r *Renderer) Polyline(ps ...image.Point) {
	r.begin()
	r.r.Polyline(ps...)
	r.end("polyline")
}

// Rect draws the outline of the rectangle with corners (x0, y0) and
// (x1, y1): top, right, bottom and left sides, in that order.
func (r *Renderer) Rect(x0, y0, x1, y1 int) {
	r.begin()
	r.r.Rect(x0, y0, x1, y1)
	r.end("rect")
}

// Circle draws a full circle. A circle that does not fit on the display is
// skipped and Err returns raster.ErrOutOfRange.
func (r *Renderer) Circle(xc, yc, rad int) { r.CircleArc(xc, yc, rad, ArcFull) }

// CircleArc draws the octants of a circle selected by mask.
func (r *Renderer) CircleArc(xc, yc, rad int, mask raster.Arc) {
	r.begin()
	r.r.Circle(xc, yc, rad, mask)
	r.end("circle")
}

// Ellipse draws a full axis-aligned ellipse with radii xr and yr. An
// ellipse that does not fit on the display is skipped and Err returns
// raster.ErrOutOfRange.
func (r *Renderer) Ellipse(xc, yc, xr, yr int) { r.EllipseArc(xc, yc, xr, yr, ArcFull) }

// EllipseArc draws the octants of an ellipse selected by mask.
func (r *Renderer) EllipseArc(xc, yc, xr, yr int, mask raster.Arc) {
	r.begin()
	r.r.Ellipse(xc, yc, xr, yr, mask)
	r.end("ellipse")
}
