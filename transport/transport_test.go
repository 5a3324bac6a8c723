// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package transport

import (
	"context"
	"errors"
	"image"
	"image/color"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/xyscope/xyscope/raster"
)

func newBuffer(ps ...image.Point) *raster.Buffer {
	b := raster.NewBuffer(64)
	b.Reset()
	for _, p := range ps {
		b.Plot(raster.Pt(p.X, p.Y))
	}
	b.Finalize()
	return b
}

func TestEncode(t *testing.T) {
	b := raster.NewBuffer(raster.MinCapacity)
	b.Truncate()
	b.Append(raster.Pt(0x123, 0x456))
	b.Append(raster.Pt(4095, 0))
	got := Encode(nil, b.Snapshot())
	want := []byte{
		0x23, 0x01, 0x56, 0x14,
		0xff, 0x0f, 0x00, 0x10,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Encode:\ngot  % x\nwant % x", got, want)
	}
	if got, want := Words(b.Snapshot()), []uint16{0x0123, 0x1456, 0x0fff, 0x1000}; !reflect.DeepEqual(got, want) {
		t.Errorf("Words: got %#04x, want %#04x", got, want)
	}
	if got := Encode(nil, raster.Snapshot{}); len(got) != 0 {
		t.Errorf("empty snapshot encoded to % x", got)
	}
}

func TestWordsPreamble(t *testing.T) {
	w := Words(newBuffer().Snapshot())
	want := []uint16{
		0x0000, 0x1000,
		0x0fff, 0x1000,
		0x0fff, 0x1000,
		0x0000, 0x1000,
		0x0000, 0x1000,
		0x0000, 0x1000,
	}
	if !reflect.DeepEqual(w, want) {
		t.Errorf("got %#04x, want %#04x", w, want)
	}
}

func TestRefreshPeriod(t *testing.T) {
	testCases := []struct {
		desc    string
		clockHz int
		n       int
		want    time.Duration
	}{
		{"empty", DefaultClockHz, 0, MinRefresh},
		{"short", DefaultClockHz, 100, MinRefresh},
		{"full", DefaultClockHz, 15000, 37550 * time.Microsecond},
		{"default clock", 0, 15000, 37550 * time.Microsecond},
		{"slow clock", 400000, 10000, 50100 * time.Microsecond},
	}
	for _, tc := range testCases {
		if got := RefreshPeriod(tc.clockHz, tc.n); got != tc.want {
			t.Errorf("%s: RefreshPeriod(%d, %d) = %v, want %v", tc.desc, tc.clockHz, tc.n, got, tc.want)
		}
	}
}

func TestPorches(t *testing.T) {
	testCases := []struct {
		clockHz     int
		front, back int
	}{
		{800000, 181, 63},
		{400000, 413, 162},
		{1000000, 134, 43},
	}
	for _, tc := range testCases {
		front, back := Porches(tc.clockHz)
		if front != tc.front || back != tc.back {
			t.Errorf("Porches(%d) = %d, %d, want %d, %d", tc.clockHz, front, back, tc.front, tc.back)
		}
	}
}

func TestScreenSaver(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		desc    string
		timeout time.Duration
		last    time.Time
		now     time.Time
		want    bool
	}{
		{"disabled", 0, t0, t0.Add(time.Hour), false},
		{"never drawn", time.Minute, time.Time{}, t0, false},
		{"active", time.Minute, t0, t0.Add(time.Minute), false},
		{"idle", time.Minute, t0, t0.Add(time.Minute + time.Millisecond), true},
	}
	for _, tc := range testCases {
		s := ScreenSaver{Timeout: tc.timeout}
		if got := s.Blank(tc.last, tc.now); got != tc.want {
			t.Errorf("%s: got %t, want %t", tc.desc, got, tc.want)
		}
	}
}

func TestPumpFrame(t *testing.T) {
	b := newBuffer(image.Point{10, 10})
	now := b.LastActivity()
	p := NewPump(b, &PumpOptions{Now: func() time.Time { return now }})
	if snap, blank := p.Frame(); blank || snap.Len() != b.Snapshot().Len() {
		t.Errorf("active: blank %t, len %d", blank, snap.Len())
	}
	now = now.Add(DefaultScreenSaverTimeout + time.Second)
	if snap, blank := p.Frame(); !blank || snap.Len() != 0 {
		t.Errorf("idle: blank %t, len %d", blank, snap.Len())
	}
	if got := p.Period(15000); got != 37550*time.Microsecond {
		t.Errorf("Period = %v", got)
	}
	p = NewPump(b, &PumpOptions{Period: time.Second})
	if got := p.Period(15000); got != time.Second {
		t.Errorf("fixed Period = %v", got)
	}
}

func TestPumpRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var good, bad atomic.Int32
	ok := TransportFunc(func(ctx context.Context, snap raster.Snapshot) error {
		if good.Add(1) == 3 {
			cancel()
		}
		return nil
	})
	failing := TransportFunc(func(ctx context.Context, snap raster.Snapshot) error {
		bad.Add(1)
		return errors.New("link down")
	})

	p := NewPump(newBuffer(), &PumpOptions{Period: time.Millisecond}, ok, failing)
	if err := p.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if good.Load() < 3 {
		t.Errorf("refreshed %d times, want at least 3", good.Load())
	}
	if bad.Load() < 1 {
		t.Errorf("failing transport never refreshed")
	}
}

func TestPumpNoTransports(t *testing.T) {
	if err := NewPump(newBuffer(), nil).Run(context.Background()); err == nil {
		t.Error("Run without transports succeeded")
	}
}

func TestRefreshOnce(t *testing.T) {
	want := errors.New("boom")
	var n atomic.Int32
	ok := TransportFunc(func(context.Context, raster.Snapshot) error { n.Add(1); return nil })
	bad := TransportFunc(func(context.Context, raster.Snapshot) error { return want })

	p := NewPump(newBuffer(), nil, ok, ok)
	if err := p.RefreshOnce(context.Background()); err != nil || n.Load() != 2 {
		t.Errorf("RefreshOnce: err %v, %d refreshes", err, n.Load())
	}
	p = NewPump(newBuffer(), nil, ok, bad)
	if err := p.RefreshOnce(context.Background()); !errors.Is(err, want) {
		t.Errorf("RefreshOnce: err %v, want %v", err, want)
	}
}

func TestTrace(t *testing.T) {
	tr := NewTrace(&TraceOptions{Size: 512})
	b := newBuffer(image.Point{2048, 2048}, image.Point{4095, 4095})
	if err := tr.Refresh(context.Background(), b.Snapshot()); err != nil {
		t.Fatal(err)
	}
	img := tr.Image()
	testCases := []struct {
		x, y int
		want color.RGBA
	}{
		{256, 255, P1Green},
		{511, 0, P1Green},
		// The preamble is blanked.
		{0, 511, Black},
		{100, 100, Black},
	}
	for _, tc := range testCases {
		if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}

	// A blank frame clears the screen.
	if err := tr.Refresh(context.Background(), raster.Snapshot{}); err != nil {
		t.Fatal(err)
	}
	if got := tr.Image().RGBAAt(256, 255); got != Black {
		t.Errorf("after blank frame: %v", got)
	}
	if tr.Frames() != 2 {
		t.Errorf("Frames = %d", tr.Frames())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := tr.Refresh(ctx, b.Snapshot()); err != context.Canceled {
		t.Errorf("Refresh after cancel: %v", err)
	}
}

func TestTracePreamble(t *testing.T) {
	tr := NewTrace(&TraceOptions{Size: 512, ShowPreamble: true})
	tr.Refresh(context.Background(), newBuffer().Snapshot())
	if got := tr.Image().RGBAAt(0, 511); got != P1Green {
		t.Errorf("preamble origin %v, want %v", got, P1Green)
	}
}

// testDisplay is a drivers.Displayer backed by a map.
type testDisplay struct {
	w, h     int16
	px       map[image.Point]color.RGBA
	displays int
}

func (d *testDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *testDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.px[image.Point{int(x), int(y)}] = c
}

func (d *testDisplay) Display() error {
	d.displays++
	return nil
}

func TestDisplayer(t *testing.T) {
	fg := color.RGBA{0xff, 0xff, 0xff, 0xff}
	d := &testDisplay{w: 320, h: 240, px: map[image.Point]color.RGBA{}}
	tr := NewDisplayer(d, fg, Black)

	b := newBuffer(image.Point{0, 0}, image.Point{4095, 4095}, image.Point{2048, 1024})
	if err := tr.Refresh(context.Background(), b.Snapshot()); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 239}, {239, 0}, {120, 179}} {
		if d.px[p] != fg {
			t.Errorf("pixel %v = %v, want lit", p, d.px[p])
		}
	}

	b.Truncate()
	tr.Refresh(context.Background(), b.Snapshot())
	for p, c := range d.px {
		if c != Black {
			t.Errorf("pixel %v still lit", p)
		}
	}
	if d.displays != 2 {
		t.Errorf("Display called %d times", d.displays)
	}
}
