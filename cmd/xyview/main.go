// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// The xyview command shows the demo screen in a desktop window that
// emulates an oscilloscope in XY mode. The producer redraws the display
// list while a pump refreshes a simulated trace from it, the same way a
// hardware transport would be fed.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/xyscope/xyscope"
	"github.com/xyscope/xyscope/internal/demo"
	"github.com/xyscope/xyscope/transport"
)

// flags
var (
	sizeFlag    = flag.Int("size", 768, "window size in pixels")
	clockFlag   = flag.Int("clock", transport.DefaultClockHz, "emulated DAC transfer rate in Hz")
	saverFlag   = flag.Duration("saver", 0, "screen saver timeout, 0 to disable")
	verboseFlag = flag.Bool("v", false, "log display list activity")
)

type scopeGame struct {
	trace *transport.Trace
	img   *ebiten.Image
	pix   []byte
	size  int
}

func (g *scopeGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *scopeGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.size, g.size)
		g.pix = make([]byte, 4*g.size*g.size)
	}
	g.trace.CopyPixels(g.pix)
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *scopeGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}

// produce redraws the demo screen until ctx is done.
func produce(ctx context.Context, r *xyscope.Renderer) {
	t := time.NewTicker(100 * time.Millisecond)
	defer t.Stop()
	for {
		demo.Draw(r, time.Now())
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func main() {
	flag.Parse()

	log.SetPrefix("xyview: ")
	log.SetFlags(0)

	if *verboseFlag {
		xyscope.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := xyscope.New(nil)
	trace := transport.NewTrace(&transport.TraceOptions{Size: *sizeFlag, Spot: 2})
	pump := transport.NewPump(r, &transport.PumpOptions{
		ClockHz:     *clockFlag,
		ScreenSaver: &transport.ScreenSaver{Timeout: *saverFlag},
	}, trace)

	go produce(ctx, r)
	go func() {
		if err := pump.Run(ctx); err != nil {
			log.Printf("pump: %v", err)
		}
	}()

	g := &scopeGame{trace: trace, size: *sizeFlag}
	ebiten.SetWindowTitle("XYscope")
	ebiten.SetWindowSize(*sizeFlag, *sizeFlag)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
