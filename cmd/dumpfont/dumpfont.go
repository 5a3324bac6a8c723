// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// The dumpfont command lists the glyph programs of the built-in stroke
// font.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/xyscope/xyscope/strokefont"
)

var (
	romFlag  = flag.Bool("rom", false, "also list the raw ROM words")
	codeFlag = flag.Int("code", -1, "dump only this character code")
)

func main() {
	flag.Parse()

	f := strokefont.Default()
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	if *codeFlag >= 0 {
		if *codeFlag > 0xff {
			fmt.Fprintf(os.Stderr, "Character code %d out of range\n", *codeFlag)
			os.Exit(1)
		}
		c := byte(*codeFlag)
		g := f.Lookup(c)
		fmt.Fprintf(w, "0x%02x %q width=%d placeholder=%t\n",
			c, strokefont.Latin1.DecodeByte(c), g.Width, g.Placeholder)
		for _, in := range g.Program {
			fmt.Fprintf(w, "\t%v\n", in)
		}
		return
	}

	// Dump summary info
	if err := f.Dump(w, strokefont.Latin1); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to dump font: %+v\n", err)
		os.Exit(1)
	}
	if *romFlag {
		fmt.Fprintf(w, "\nROM, %d instructions\n", len(f.ROM()))
		for i, in := range f.ROM() {
			fmt.Fprintf(w, "%3d  %02x %02x %02x %02x  %v\n",
				i, byte(in.Opcode), in.P1, in.P2, in.P3, in)
		}
	}
}
