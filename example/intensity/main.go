// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// The intensity command shows how intensity thins out the samples of a
// figure. It draws the same rounded corner at several intensities through
// a scope trace and writes the result to out.png.
package main

import (
	"bufio"
	"context"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/xyscope/xyscope"
	"github.com/xyscope/xyscope/transport"
)

var intensities = []int{0, 25, 50, 75, 100, 150, 200, 255}

func main() {
	const step = 500

	r := xyscope.New(nil)
	r.Start()
	for i, v := range intensities {
		if !r.SetGraphicsIntensity(v) {
			log.Fatalf("bad intensity %d", v)
		}
		x := 100 + i*step
		r.Line(x, 3800, x, 2600)
		r.CircleArc(x+200, 2600, 200, xyscope.Arc6|xyscope.Arc7)
		r.Line(x+200, 2400, x+400, 2400)

		r.SetTextIntensity(255)
		r.PrintSetup(x, 2000, 60, 0)
		r.PrintNumber(float64(v), xyscope.NumberOptions{})
	}
	r.End()
	if err := r.Buffer().Err(); err != nil {
		log.Fatal(err)
	}

	tr := transport.NewTrace(&transport.TraceOptions{Size: 1024})
	if err := tr.Refresh(context.Background(), r.Snapshot()); err != nil {
		log.Fatal(err)
	}

	// Save that RGBA image to disk.
	f, err := os.Create("out.png")
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	defer f.Close()
	b := bufio.NewWriter(f)
	err = png.Encode(b, tr.Image())
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	err = b.Flush()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	fmt.Printf("Wrote out.png OK, %d samples.\n", r.Snapshot().Len())
}
