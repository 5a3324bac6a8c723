// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package strokefont

// This file implements the glyph program interpreter.

import (
	"errors"
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/xyscope/xyscope/raster"
)

// MaxInstructions bounds the number of instructions run for one glyph.
const MaxInstructions = 10

// ErrRunaway is returned when a glyph program runs for MaxInstructions
// without reaching an end-of-glyph flag. Whatever was drawn is kept.
var ErrRunaway = errors.New("strokefont: glyph program too long")

// GridSize is the number of design units across a glyph cell.
const GridSize = 16

// A Drawer receives the figures of a glyph in display coordinates.
// *raster.Rasterizer implements it.
type Drawer interface {
	Point(x, y int)
	Line(x0, y0, x1, y1 int)
	Rect(x0, y0, x1, y1 int)
	Circle(xc, yc, r int, mask raster.Arc)
	Ellipse(xc, yc, xr, yr int, mask raster.Arc)
}

// An Interpreter runs glyph programs. The zero value is ready to use; an
// Interpreter is not safe for concurrent use.
type Interpreter struct {
	origin image.Point
	scale  fixed.Int26_6
}

// Scale returns the display length of n design units in a cell of the given
// height: floor(n·height/16).
func Scale(n, height int) int {
	return (fixed.Int26_6(n) * (fixed.I(height) / GridSize)).Floor()
}

func (p *Interpreter) dx(n int) int { return (fixed.Int26_6(n) * p.scale).Floor() }

func (p *Interpreter) x(n int) int { return p.origin.X + p.dx(n) }

func (p *Interpreter) y(n int) int { return p.origin.Y + p.dx(n) }

// Run draws g to dst in a cell of the given height whose bottom left corner
// is origin. It returns the number of instructions executed. Operation codes
// outside the known set are skipped.
func (p *Interpreter) Run(g Glyph, origin image.Point, height int, dst Drawer) (steps int, err error) {
	p.origin = origin
	p.scale = fixed.I(height) / GridSize
	for _, ins := range g.Program {
		if steps == MaxInstructions {
			return steps, ErrRunaway
		}
		steps++
		op := ins.Decode()
		switch op.Code {
		case OpPoint:
			dst.Point(p.x(op.X0), p.y(op.Y0))
		case OpLine:
			dst.Line(p.x(op.X0), p.y(op.Y0), p.x(op.X1), p.y(op.Y1))
		case OpRect:
			dst.Rect(p.x(op.X0), p.y(op.Y0), p.x(op.X1), p.y(op.Y1))
		case OpCircle:
			dst.Circle(p.x(op.X0), p.y(op.Y0), p.dx(op.X1), op.Mask)
		case OpEllipse:
			dst.Ellipse(p.x(op.X0), p.y(op.Y0), p.dx(op.X1), p.dx(op.Y1), op.Mask)
		}
		if op.Last {
			break
		}
	}
	return steps, nil
}
