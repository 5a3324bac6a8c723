// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// The raster command draws every single-octant arc with both arc
// algorithms, one row per algorithm, and writes the result to out.png.
// Octant starts are marked in red.
package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/xyscope/xyscope/raster"
)

const (
	cell   = 100
	radius = 40
)

var algorithms = []raster.ArcAlgorithm{raster.ArcAngleStep, raster.ArcMidpoint}

func main() {
	const (
		w = 8 * cell
		h = 2 * cell
	)
	// Display coordinates start at the bottom left corner of the mask.
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	origin := image.Point{0, h - 1}
	var starts raster.Recorder
	var rec raster.Recorder
	r := raster.NewRasterizer(raster.MultiPlotter(raster.AlphaPlotter(mask, origin), &rec),
		raster.NewDensity(200))

	for row, a := range algorithms {
		r.Algorithm = a
		for k := 0; k < 8; k++ {
			xc, yc := k*cell+cell/2, h-row*cell-cell/2
			rec.Reset()
			r.Circle(xc, yc, radius, raster.Arc(1)<<k)
			if err := r.Err(); err != nil {
				log.Fatalf("%v octant %d: %v", a, k, err)
			}
			if len(rec) > 0 {
				starts = append(starts, rec[0])
			}
		}
	}

	// Draw the mask image (in green) onto an RGBA image.
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), image.Black, image.Point{}, draw.Src)
	green := image.NewUniform(color.RGBA{0x33, 0xff, 0x66, 0xff})
	draw.DrawMask(rgba, rgba.Bounds(), green, image.Point{}, mask, image.Point{}, draw.Over)
	for _, p := range starts.Points() {
		rgba.Set(p.X-origin.X, origin.Y-p.Y, color.RGBA{0xff, 0, 0, 0xff})
	}

	// Save that RGBA image to disk.
	f, err := os.Create("out.png")
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	defer f.Close()
	b := bufio.NewWriter(f)
	err = png.Encode(b, rgba)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	err = b.Flush()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	fmt.Println("Wrote out.png OK.")
}
