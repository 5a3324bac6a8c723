// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package xyscope

import (
	"image"

	"github.com/xyscope/xyscope/strokefont"
)

const (
	underlineCode = '_'
	logoLeft      = 128
	logoRight     = 129
	// rowHeight is the line pitch in design units.
	rowHeight = 15
)

// SetSpacing sets the advance mode. Proportional and fixed advances from 1
// to strokefont.MaxSpacing are accepted; other values are ignored and false
// is returned.
func (r *Renderer) SetSpacing(s Spacing) bool {
	if !s.Valid() {
		return false
	}
	r.spacing = s
	return true
}

// Spacing returns the advance mode.
func (r *Renderer) Spacing() Spacing { return r.spacing }

// MoveTo sets the text cursor: the bottom left corner of the next character
// cell.
func (r *Renderer) MoveTo(x, y int) { r.cursor = image.Point{x, y} }

// Cursor returns the text cursor.
func (r *Renderer) Cursor() image.Point { return r.cursor }

// SetTextSize sets the glyph cell height. Non-positive values are ignored.
func (r *Renderer) SetTextSize(h int) {
	if h > 0 {
		r.textSize = h
	}
}

// TextSize returns the glyph cell height.
func (r *Renderer) TextSize() int { return r.textSize }

// SetMargins sets the horizontal bounds of text lines.
func (r *Renderer) SetMargins(left, right int) {
	r.left, r.right = left, right
}

// PrintSetup moves the cursor to (x, y) and, when they are positive, sets
// the text size and text intensity.
func (r *Renderer) PrintSetup(x, y, size, intensity int) {
	r.MoveTo(x, y)
	r.SetTextSize(size)
	if intensity > 0 {
		r.SetTextIntensity(intensity)
	}
}

// Print draws text at the cursor, advancing it after each character and
// wrapping at the right margin. Runes the charset cannot represent draw the
// placeholder glyph.
func (r *Renderer) Print(text string, opts PrintOptions) {
	r.begin()
	for _, c := range r.cs.Encode(text) {
		r.putChar(c, opts.Underline)
	}
	r.end("print")
}

// PrintBytes is like Print but takes character codes directly.
func (r *Renderer) PrintBytes(codes []byte, opts PrintOptions) {
	r.begin()
	for _, c := range codes {
		r.putChar(c, opts.Underline)
	}
	r.end("print")
}

// PrintUnderline draws n underscores, advancing the cursor.
func (r *Renderer) PrintUnderline(n int) {
	r.begin()
	for ; n > 0; n-- {
		r.drawChar(underlineCode, &r.cursor)
	}
	r.end("underline")
}

// DrawLogo draws the two-part logo at the cursor, followed by caption in
// text a fifth of the cell height, tucked under the logo. The text size is
// restored afterwards; the cursor is left after the caption.
func (r *Renderer) DrawLogo(caption string) {
	r.begin()
	h := r.textSize
	tx, ty := r.cursor.X+13, r.cursor.Y
	r.drawChar(logoLeft, &r.cursor)
	r.cursor = image.Point{tx + strokefont.Scale(13, h), ty}
	r.drawChar(logoRight, &r.cursor)

	tx += h / 8
	if r.spacing != Mono {
		tx += h / 8 * 3 / 4
	}
	r.cursor = image.Point{tx, ty - h/16}
	r.textSize = h / 5
	if r.textSize > 0 {
		for _, c := range r.cs.Encode(caption) {
			r.putChar(c, false)
		}
	}
	r.textSize = h
	r.end("logo")
}

// putChar draws c at the cursor, with an underscore in the same cell if
// underline is set.
func (r *Renderer) putChar(c byte, underline bool) {
	if underline {
		cur := r.cursor
		r.drawChar(underlineCode, &cur)
	}
	r.drawChar(c, &r.cursor)
}

// drawChar draws c with its cell's bottom left corner at *cur, using the
// text intensity, then advances *cur by one character and wraps it to the
// next row when the following cell would cross the right margin.
func (r *Renderer) drawChar(c byte, cur *image.Point) {
	h := r.textSize
	prev := r.r.SetDensity(r.text)
	if _, err := r.vm.Run(r.font.Lookup(c), *cur, h, r.r); err != nil {
		Logger().Warn("glyph program truncated", "code", c, "err", err)
	}
	r.r.SetDensity(prev)

	cur.X += strokefont.Scale(r.font.Advance(c, r.spacing), h)
	if cur.X+h > r.right {
		cur.X = r.left
		cur.Y -= strokefont.Scale(rowHeight, h)
	}
}

// Measure returns the cursor position after printing text from the
// current cursor, without drawing anything.
func (r *Renderer) Measure(text string) image.Point {
	cur := r.cursor
	h := r.textSize
	for _, c := range r.cs.Encode(text) {
		cur.X += strokefont.Scale(r.font.Advance(c, r.spacing), h)
		if cur.X+h > r.right {
			cur.X = r.left
			cur.Y -= strokefont.Scale(rowHeight, h)
		}
	}
	return cur
}
