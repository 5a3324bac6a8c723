// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package strokefont

import (
	"golang.org/x/text/encoding/charmap"
)

// Unmapped is the code given to runes the charset cannot represent. No glyph
// is defined for it, so it draws the placeholder.
const Unmapped = 0x00

// A Charset converts Go strings to the 8-bit codes of a glyph index.
type Charset struct {
	cm *charmap.Charmap
}

// Latin1 maps ISO 8859-1, whose first 128 codes are ASCII.
var Latin1 = NewCharset(charmap.ISO8859_1)

// NewCharset returns a Charset for the given single-byte character map.
func NewCharset(cm *charmap.Charmap) *Charset {
	return &Charset{cm: cm}
}

// EncodeRune returns the code for r, or Unmapped and false if the charset
// cannot represent it.
func (c *Charset) EncodeRune(r rune) (byte, bool) {
	b, ok := c.cm.EncodeRune(r)
	if !ok {
		return Unmapped, false
	}
	return b, true
}

// Encode converts s to codes, one per rune. Runes the charset cannot
// represent become Unmapped.
func (c *Charset) Encode(s string) []byte {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		code, _ := c.EncodeRune(r)
		b = append(b, code)
	}
	return b
}

// DecodeByte returns the rune for code b.
func (c *Charset) DecodeByte(b byte) rune {
	return c.cm.DecodeByte(b)
}
