// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package strokefont

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

// Dump writes a listing of every defined glyph program to w, with character
// names taken from cs. A nil cs means Latin1.
func (f *Font) Dump(w io.Writer, cs *Charset) error {
	if cs == nil {
		cs = Latin1
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d instructions\n", len(f.rom))
	for c := range f.glyphs {
		g := f.glyphs[c]
		if g.Placeholder {
			continue
		}
		r := cs.DecodeByte(byte(c))
		name := fmt.Sprintf("%q", r)
		if !unicode.IsPrint(r) {
			name = "-"
		}
		fmt.Fprintf(bw, "\n0x%02x %s width=%d\n", c, name, g.Width)
		for _, ins := range g.Program {
			fmt.Fprintf(bw, "\t%v\n", ins)
		}
	}
	fmt.Fprintf(bw, "\nplaceholder %q width=%d\n", PlaceholderCode, PlaceholderWidth)
	return bw.Flush()
}
