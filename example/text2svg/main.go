// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// The text2svg command converts a text string to stroked SVG paths in the
// built-in stroke font.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/xyscope/xyscope/raster"
	"github.com/xyscope/xyscope/strokefont"
)

// flags
var (
	textFlag    = flag.String("text", "Hamburger", "the text to print")
	heightFlag  = flag.Int("height", 64, "cell height in pixels")
	spacingFlag = flag.Int("spacing", int(strokefont.Proportional), "advance: 0 for proportional, 1-15 fixed")
)

// svgDrawer emits one SVG path command per stroke. Circles and ellipses
// are sampled with a raster.Rasterizer and emitted as polylines, so partial
// arcs look the way they do on the scope.
type svgDrawer struct {
	w      io.Writer
	height int
	arcs   raster.Recorder
	r      *raster.Rasterizer
}

func newSVGDrawer(w io.Writer, height int) *svgDrawer {
	d := &svgDrawer{w: w, height: height}
	d.r = raster.NewRasterizer(&d.arcs, raster.NewDensity(255))
	return d
}

// pt flips y, since the display's y axis points up and SVG's points down.
func (d *svgDrawer) pt(x, y int) string {
	return fmt.Sprintf("%d,%d", x, d.height-y)
}

func (d *svgDrawer) Point(x, y int) {
	fmt.Fprintf(d.w, "M%s h0 ", d.pt(x, y))
}

func (d *svgDrawer) Line(x0, y0, x1, y1 int) {
	fmt.Fprintf(d.w, "M%s L%s ", d.pt(x0, y0), d.pt(x1, y1))
}

func (d *svgDrawer) Rect(x0, y0, x1, y1 int) {
	fmt.Fprintf(d.w, "M%s L%s L%s L%s Z ",
		d.pt(x0, y0), d.pt(x1, y0), d.pt(x1, y1), d.pt(x0, y1))
}

func (d *svgDrawer) Circle(xc, yc, r int, mask raster.Arc) {
	d.Ellipse(xc, yc, r, r, mask)
}

func (d *svgDrawer) Ellipse(xc, yc, xr, yr int, mask raster.Arc) {
	d.arcs.Reset()
	d.r.Ellipse(xc, yc, xr, yr, mask)
	cmd := 'M'
	for _, p := range d.arcs.Points() {
		fmt.Fprintf(d.w, "%c%s ", cmd, d.pt(p.X, p.Y))
		cmd = 'L'
	}
}

func main() {
	flag.Parse()

	log.SetPrefix("text2svg: ")
	log.SetFlags(0)

	spacing := strokefont.Spacing(*spacingFlag)
	if !spacing.Valid() {
		log.Fatalf("invalid spacing %d", *spacingFlag)
	}
	h := *heightFlag
	if h <= 0 || 3*h > raster.MaxCoord {
		log.Fatalf("invalid height %d", h)
	}

	f := strokefont.Default()
	codes := strokefont.Latin1.Encode(*textFlag)
	width := 0
	for _, c := range codes {
		width += strokefont.Scale(f.Advance(c, spacing), h)
	}

	w := bufio.NewWriter(os.Stdout)
	fmt.Fprintf(w, "<svg xmlns='http://www.w3.org/2000/svg' "+
		"style='fill: none; stroke: grey' width='%d' height='%d'>\n",
		width+h, 2*h)

	// Set the baseline half a cell above the bottom edge.
	d := newSVGDrawer(w, 2*h)
	var vm strokefont.Interpreter
	dot := image.Point{h / 2, h / 2}
	for _, c := range codes {
		fmt.Fprintf(w, "<path d='")
		if _, err := vm.Run(f.Lookup(c), dot, h, d); err != nil {
			log.Printf("glyph 0x%02x: %v", c, err)
		}
		fmt.Fprintf(w, "'/>\n")
		dot.X += strokefont.Scale(f.Advance(c, spacing), h)
	}
	fmt.Fprintln(w, "</svg>")
	if err := w.Flush(); err != nil {
		log.Fatalf("writing: %v", err)
	}
}
