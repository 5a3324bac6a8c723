// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package demo draws the demonstration screen shared by the commands.
package demo

import (
	"image"
	"math"
	"time"

	"github.com/xyscope/xyscope"
)

// Caption is printed under the logo.
const Caption = "XYSCOPE-GO"

// clock face geometry
const (
	clockX, clockY = 3000, 1300
	clockR         = 700
)

// Draw draws one frame of the demo screen at time t: a border, the logo,
// some text in each spacing mode, an analog clock and a sample counter.
// It returns the number of samples in the finished display list.
func Draw(r *xyscope.Renderer, t time.Time) int {
	r.Start()

	r.SetGraphicsIntensity(100)
	r.Rect(0, 0, 4095, 4095)

	r.SetTextIntensity(150)
	r.SetSpacing(xyscope.Mono)
	r.PrintSetup(200, 3500, 400, 0)
	r.DrawLogo(Caption)

	r.SetTextIntensity(100)
	y := 2600
	for _, s := range []xyscope.Spacing{xyscope.Proportional, xyscope.MonoTight, xyscope.Mono, xyscope.MonoWide} {
		r.SetSpacing(s)
		r.PrintSetup(200, y, 80, 0)
		r.Print("Spacing ", xyscope.PrintOptions{})
		r.Print(s.String(), xyscope.PrintOptions{Underline: true})
		y -= 150
	}
	r.SetSpacing(xyscope.Mono)

	drawClock(r, t)

	r.PrintSetup(200, 300, 60, 0)
	r.Print("Samples: ", xyscope.PrintOptions{})
	n := r.Buffer().Len()
	r.PrintNumber(float64(n), xyscope.NumberOptions{})
	r.Print("  Pi: ", xyscope.PrintOptions{})
	r.PrintNumber(math.Pi, xyscope.NumberOptions{DecimalPlaces: 5})
	r.End()
	return r.Snapshot().Len()
}

// drawClock draws a clock face with hour, minute and second hands.
func drawClock(r *xyscope.Renderer, t time.Time) {
	r.SetGraphicsIntensity(150)
	r.Circle(clockX, clockY, clockR)
	r.SetGraphicsIntensity(255)
	r.Ellipse(clockX, clockY, 40, 40)
	r.SetGraphicsIntensity(100)
	for i := 0; i < 12; i++ {
		in, out := hand(float64(i)/12, clockR-80), hand(float64(i)/12, clockR-20)
		r.Line(in.X, in.Y, out.X, out.Y)
	}

	h, m, s := t.Clock()
	sec := float64(s) + float64(t.Nanosecond())/1e9
	mins := float64(m) + sec/60
	hr := float64(h%12) + mins/60
	r.SetGraphicsIntensity(200)
	hands := []image.Point{
		hand(hr/12, clockR*5/10),
		hand(mins/60, clockR*8/10),
	}
	for _, p := range hands {
		r.Line(clockX, clockY, p.X, p.Y)
	}
	r.SetGraphicsIntensity(50)
	p := hand(sec/60, clockR*9/10)
	r.Line(clockX, clockY, p.X, p.Y)
}

// hand returns the point at length from the clock center, a fraction f of
// a turn clockwise from twelve o'clock.
func hand(f float64, length int) image.Point {
	a := 2 * math.Pi * f
	return image.Point{
		X: clockX + int(math.Round(float64(length)*math.Sin(a))),
		Y: clockY + int(math.Round(float64(length)*math.Cos(a))),
	}
}
