// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// The xydemo command builds the demo display list and writes it out as a
// simulated scope trace, as a raw DAC word stream, or both.
//
// With -text, it instead previews a string in the stroke font on a raster
// image, the way a font.Face draws it.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/xyscope/xyscope"
	"github.com/xyscope/xyscope/internal/demo"
	"github.com/xyscope/xyscope/strokefont"
	"github.com/xyscope/xyscope/transport"
)

// flags
var (
	outFlag     = flag.String("out", "out.png", "file name of the PNG trace, or empty")
	wordsFlag   = flag.String("words", "", "file name of the raw little-endian DAC words, or empty")
	sizeFlag    = flag.Int("size", 1024, "trace size in pixels")
	clockFlag   = flag.Int("clock", transport.DefaultClockHz, "DAC transfer rate in Hz")
	textFlag    = flag.String("text", "", "preview this text with the stroke font face instead")
	heightFlag  = flag.Int("height", 48, "text preview cell height in pixels")
	verboseFlag = flag.Bool("v", false, "log display list activity")
)

func main() {
	flag.Parse()

	log.SetPrefix("xydemo: ")
	log.SetFlags(0)

	if *verboseFlag {
		xyscope.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *textFlag != "" {
		if err := preview(*textFlag, *heightFlag, *outFlag); err != nil {
			log.Fatal(err)
		}
		return
	}

	r := xyscope.New(nil)
	n := demo.Draw(r, time.Now())
	front, back := transport.Porches(*clockFlag)
	fmt.Printf("%d samples, %d dropped, refresh %v, porches %d/%d\n",
		n, r.Buffer().Dropped(), transport.RefreshPeriod(*clockFlag, n), front, back)

	if *outFlag != "" {
		tr := transport.NewTrace(&transport.TraceOptions{Size: *sizeFlag})
		if err := tr.Refresh(context.Background(), r.Snapshot()); err != nil {
			log.Fatalf("tracing: %v", err)
		}
		if err := writePNG(*outFlag, tr.Image()); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s OK.\n", *outFlag)
	}
	if *wordsFlag != "" {
		data := transport.Encode(nil, r.Snapshot())
		if err := os.WriteFile(*wordsFlag, data, 0644); err != nil {
			log.Fatalf("writing words: %v", err)
		}
		fmt.Printf("Wrote %s OK, %d words.\n", *wordsFlag, len(data)/2)
	}
}

// preview draws text with the stroke font face, white on black.
func preview(text string, height int, out string) error {
	face := strokefont.NewFace(strokefont.Default(), &strokefont.FaceOptions{
		Height:  height,
		Spacing: strokefont.Proportional,
	})
	defer face.Close()

	adv := font.MeasureString(face, text)
	m := face.Metrics()
	w := adv.Ceil() + 2*height
	h := (m.Ascent + m.Descent).Ceil() + height
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), image.Black, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  rgba,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(height, height/2+m.Ascent.Ceil()),
	}
	d.DrawString(text)
	if out == "" {
		out = "out.png"
	}
	if err := writePNG(out, rgba); err != nil {
		return err
	}
	fmt.Printf("Wrote %s OK.\n", out)
	return nil
}

func writePNG(name string, m image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	b := bufio.NewWriter(f)
	if err := png.Encode(b, m); err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := b.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}
