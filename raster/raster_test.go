// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"image"
	"math"
	"reflect"
	"testing"
)

// newTestRasterizer returns a Rasterizer recording into a Recorder, with the
// given intensity.
func newTestRasterizer(intensity int) (*Rasterizer, *Recorder) {
	rec := &Recorder{}
	return NewRasterizer(rec, NewDensity(intensity)), rec
}

func TestPointMasking(t *testing.T) {
	testCases := []struct {
		x, y int
		want image.Point
	}{
		{0, 0, image.Point{0, 0}},
		{4095, 4095, image.Point{4095, 4095}},
		{4096, 4097, image.Point{0, 1}},
		{-1, -4096, image.Point{4095, 0}},
		{0x12345, 0x1fff, image.Point{0x345, 0xfff}},
	}
	for _, tc := range testCases {
		r, rec := newTestRasterizer(100)
		r.Point(tc.x, tc.y)
		if len(*rec) != 1 {
			t.Fatalf("Point(%d, %d): got %d samples, want 1", tc.x, tc.y, len(*rec))
		}
		s := (*rec)[0]
		if got := s.Point(); got != tc.want {
			t.Errorf("Point(%d, %d): got %v, want %v", tc.x, tc.y, got, tc.want)
		}
		if !s.Tagged() {
			t.Errorf("Point(%d, %d): sample %#v has wrong channel tags", tc.x, tc.y, s)
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	lines := [][4]int{
		{0, 0, 100, 0},
		{100, 0, 0, 0},
		{0, 0, 0, 100},
		{10, 10, 10, 10},
		{0, 0, 37, 91},
		{4000, 17, 3, 2900},
		{500, 500, 499, 501},
	}
	for _, intensity := range []int{255, 200, 100, 50, 0} {
		for _, l := range lines {
			r, rec := newTestRasterizer(intensity)
			r.Line(l[0], l[1], l[2], l[3])
			ps := rec.Points()
			if len(ps) == 0 {
				t.Errorf("intensity %d, line %v: no samples", intensity, l)
				continue
			}
			if got, want := ps[0], (image.Point{l[0], l[1]}); got != want {
				t.Errorf("intensity %d, line %v: first = %v, want %v", intensity, l, got, want)
			}
			if got, want := ps[len(ps)-1], (image.Point{l[2], l[3]}); got != want {
				t.Errorf("intensity %d, line %v: last = %v, want %v", intensity, l, got, want)
			}
		}
	}
}

func TestLineNoSkipping(t *testing.T) {
	r, rec := newTestRasterizer(255)
	r.Line(0, 0, 5, 2)
	want := []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}}
	if got := rec.Points(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLineDensity(t *testing.T) {
	// At intensity 100 the interval is 10: samples 0, 10, 20 ... of a
	// horizontal line, plus the forced endpoint.
	r, rec := newTestRasterizer(100)
	r.Line(0, 0, 25, 0)
	want := []image.Point{{0, 0}, {10, 0}, {20, 0}, {25, 0}}
	if got := rec.Points(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// The endpoint is not repeated when the stepping lands on it.
	rec.Reset()
	r.Line(0, 0, 20, 0)
	want = []image.Point{{0, 0}, {10, 0}, {20, 0}}
	if got := rec.Points(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRectangle(t *testing.T) {
	r, rec := newTestRasterizer(255)
	r.Rect(10, 20, 13, 22)
	want := []image.Point{
		// Top.
		{10, 20}, {11, 20}, {12, 20}, {13, 20},
		// Right.
		{13, 20}, {13, 21}, {13, 22},
		// Bottom.
		{13, 22}, {12, 22}, {11, 22}, {10, 22},
		// Left.
		{10, 22}, {10, 21}, {10, 20},
	}
	if got := rec.Points(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v\nwant %v", got, want)
	}
}

func TestRectangleSegmentsJoin(t *testing.T) {
	r, rec := newTestRasterizer(60)
	var ends []image.Point
	segs := [][4]int{
		{100, 900, 700, 900},
		{700, 900, 700, 300},
		{700, 300, 100, 300},
		{100, 300, 100, 900},
	}
	for _, s := range segs {
		rec.Reset()
		r.Line(s[0], s[1], s[2], s[3])
		ps := rec.Points()
		ends = append(ends, ps[0], ps[len(ps)-1])
	}
	rec.Reset()
	r.Rect(100, 900, 700, 300)
	ps := rec.Points()
	if ps[0] != (image.Point{100, 900}) {
		t.Errorf("first = %v, want (100,900)", ps[0])
	}
	for i := 1; i+1 < len(ends); i += 2 {
		if ends[i] != ends[i+1] {
			t.Errorf("segment %d ends at %v but segment %d starts at %v", i/2, ends[i], i/2+1, ends[i+1])
		}
	}
	if ps[len(ps)-1] != ps[0] {
		t.Errorf("rectangle not closed: last = %v, first = %v", ps[len(ps)-1], ps[0])
	}
}

func TestCircleOutOfRange(t *testing.T) {
	testCases := []struct {
		desc      string
		xc, yc, r int
	}{
		{"right", 4000, 2000, 96},
		{"left", 50, 2000, 51},
		{"top", 2000, 4095, 1},
		{"bottom", 2000, 0, 1},
	}
	for _, tc := range testCases {
		b := NewBuffer(100)
		b.Reset()
		r := NewRasterizer(b, nil)
		n := b.Len()
		r.Circle(tc.xc, tc.yc, tc.r, ArcFull)
		if r.Err() != ErrOutOfRange {
			t.Errorf("%s: got error %v, want %v", tc.desc, r.Err(), ErrOutOfRange)
		}
		if b.Len() != n {
			t.Errorf("%s: length changed from %d to %d", tc.desc, n, b.Len())
		}
		r.ClearErr()
		r.Ellipse(tc.xc, tc.yc, tc.r, tc.r, ArcFull)
		if r.Err() != ErrOutOfRange {
			t.Errorf("%s: ellipse: got error %v, want %v", tc.desc, r.Err(), ErrOutOfRange)
		}
		if b.Len() != n {
			t.Errorf("%s: ellipse: length changed from %d to %d", tc.desc, n, b.Len())
		}
	}
}

func TestCircleOnEdge(t *testing.T) {
	r, rec := newTestRasterizer(100)
	r.Circle(4095-100, 100, 100, ArcFull)
	if r.Err() != nil {
		t.Fatalf("got error %v, want none", r.Err())
	}
	if len(*rec) == 0 {
		t.Fatal("no samples")
	}
}

func TestCircleSamples(t *testing.T) {
	r, rec := newTestRasterizer(100)
	r.Circle(2000, 2000, 400, ArcFull)
	// 2π·400/10 = 251.3 samples.
	if got, want := len(*rec), 251; got != want {
		t.Errorf("got %d samples, want %d", got, want)
	}
	ps := rec.Points()
	if got, want := ps[0], (image.Point{1600, 2000}); got != want {
		t.Errorf("first sample %v, want %v", got, want)
	}
	// Truncation toward zero moves a sample by less than a pixel on each
	// axis, inwards above and right of the center, outwards elsewhere.
	for _, p := range ps {
		dx, dy := float64(p.X-2000), float64(p.Y-2000)
		if d := math.Hypot(dx, dy); math.Abs(d-400) >= 1.5 {
			t.Errorf("sample %v is %.1f from the center", p, d)
		}
	}
}

func TestCircleZeroRadius(t *testing.T) {
	r, rec := newTestRasterizer(100)
	r.Circle(50, 60, 0, ArcFull)
	want := []image.Point{{50, 60}}
	if got := rec.Points(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestArcSegments(t *testing.T) {
	const xc, yc, rad = 2000, 2000, 300
	for _, alg := range []ArcAlgorithm{ArcAngleStep, ArcMidpoint} {
		full := map[image.Point]bool{}
		r, rec := newTestRasterizer(255)
		r.Algorithm = alg
		r.Circle(xc, yc, rad, ArcFull)
		for _, p := range rec.Points() {
			full[p] = true
		}
		fullLen := len(*rec)
		total := 0
		for k := 0; k < 8; k++ {
			rec.Reset()
			r.Circle(xc, yc, rad, Arc(1<<uint(k)))
			ps := rec.Points()
			if len(ps) == 0 {
				t.Errorf("%v: octant %d: no samples", alg, k)
			}
			total += len(ps)
			for _, p := range ps {
				if !full[p] {
					t.Errorf("%v: octant %d: sample %v not on the full circle", alg, k, p)
				}
				if got := octantOf(p.X-xc, p.Y-yc, rad, rad); got != k && !onBoundary(p.X-xc, p.Y-yc) {
					t.Errorf("%v: octant %d: sample %v classified as octant %d", alg, k, p, got)
				}
			}
		}
		if alg == ArcAngleStep && total != fullLen {
			t.Errorf("%v: octants have %d samples in total, full circle has %d", alg, total, fullLen)
		}
	}
}

func TestEllipseArcAlgorithms(t *testing.T) {
	// Octant 0 of a flat ellipse runs from the leftmost point to parametric
	// angle π/4, at (2000-400·cos π/4, 2000+40·sin π/4) = (1717.2, 2028.3).
	const xc, yc, xr, yr = 2000, 2000, 400, 40
	for _, alg := range []ArcAlgorithm{ArcAngleStep, ArcMidpoint} {
		r, rec := newTestRasterizer(255)
		r.Algorithm = alg
		r.Ellipse(xc, yc, xr, yr, Arc0)
		if r.Err() != nil {
			t.Fatalf("%v: got error %v", alg, r.Err())
		}
		ps := rec.Points()
		if len(ps) == 0 {
			t.Fatalf("%v: no samples", alg)
		}
		b := rec.Bounds()
		if b.Min.X != xc-xr || b.Max.X > 1723 || b.Min.Y < yc || b.Max.Y > 2030 {
			t.Errorf("%v: octant 0 spans %v", alg, b)
		}
	}
}

// onBoundary reports whether an offset is within a few pixels of an octant
// boundary, where truncation can move a sample into the neighbouring octant.
func onBoundary(dx, dy int) bool {
	adx, ady := abs(dx), abs(dy)
	return adx <= 2 || ady <= 2 || abs(adx-ady) <= 3
}

func TestArcOctantsLeftHalf(t *testing.T) {
	// Octants 0, 1, 6 and 7 make up the left half of the figure.
	r, rec := newTestRasterizer(255)
	r.Circle(2000, 2000, 200, Arc0|Arc1|Arc6|Arc7)
	for _, p := range rec.Points() {
		if p.X > 2000 {
			t.Errorf("sample %v is right of the center", p)
		}
	}
	rec.Reset()
	r.Circle(2000, 2000, 200, Arc0|Arc1|Arc2|Arc3)
	for _, p := range rec.Points() {
		if p.Y < 2000 {
			t.Errorf("sample %v is below the center", p)
		}
	}
}

func TestOctant(t *testing.T) {
	testCases := []struct {
		angle float64
		want  int
	}{
		{0, 0},
		{math.Pi / 8, 0},
		{math.Pi/4 - 1e-9, 0},
		{math.Pi/4 + 1e-9, 1},
		{math.Pi / 2, 1},
		{3 * math.Pi / 4 * 1.0001, 3},
		{math.Pi + 0.1, 4},
		{7*math.Pi/4 + 0.1, 7},
		{2*math.Pi - 1e-9, 7},
		{2*math.Pi + 0.1, 0},
		{-0.1, 7},
	}
	for _, tc := range testCases {
		if got := Octant(tc.angle); got != tc.want {
			t.Errorf("Octant(%v) = %d, want %d", tc.angle, got, tc.want)
		}
	}
}

func TestOctantOf(t *testing.T) {
	testCases := []struct {
		dx, dy int
		xr, yr int
		want   int
	}{
		{-10, 1, 0, 0, 0},
		{-1, 10, 0, 0, 1},
		{1, 10, 0, 0, 2},
		{10, 1, 0, 0, 3},
		{10, -1, 0, 0, 4},
		{1, -10, 0, 0, 5},
		{-1, -10, 0, 0, 6},
		{-10, -1, 0, 0, 7},
		{-10, 1, 10, 10, 0},
		// Offsets are classified by their parametric angle on the ellipse.
		{-300, 20, 400, 40, 0},
		{-200, 35, 400, 40, 1},
		{200, -35, 400, 40, 5},
		{390, -5, 400, 40, 4},
	}
	for _, tc := range testCases {
		if got := octantOf(tc.dx, tc.dy, tc.xr, tc.yr); got != tc.want {
			t.Errorf("octantOf(%d, %d, %d, %d) = %d, want %d", tc.dx, tc.dy, tc.xr, tc.yr, got, tc.want)
		}
	}
}

func TestEllipse(t *testing.T) {
	for _, alg := range []ArcAlgorithm{ArcAngleStep, ArcMidpoint} {
		r, rec := newTestRasterizer(255)
		r.Algorithm = alg
		r.Ellipse(1000, 1000, 300, 100, ArcFull)
		if r.Err() != nil {
			t.Fatalf("%v: got error %v", alg, r.Err())
		}
		b := rec.Bounds()
		if b.Min.X < 699 || b.Max.X > 1301 || b.Min.Y < 899 || b.Max.Y > 1101 {
			t.Errorf("%v: bounds %v outside the ellipse box", alg, b)
		}
		if b.Dx() < 590 || b.Dy() < 190 {
			t.Errorf("%v: bounds %v too small", alg, b)
		}
	}
}

func TestEllipseSampleCount(t *testing.T) {
	r, rec := newTestRasterizer(100)
	r.Ellipse(1000, 1000, 300, 100, ArcFull)
	// 2π·sqrt((300²+100²)/2)/10 = 140.5 samples.
	if got, want := len(*rec), 140; got != want {
		t.Errorf("got %d samples, want %d", got, want)
	}
}

func TestMidpointDegenerateEllipse(t *testing.T) {
	r, rec := newTestRasterizer(255)
	r.Algorithm = ArcMidpoint
	r.Ellipse(1000, 1000, 0, 50, ArcFull)
	if len(*rec) == 0 {
		t.Fatal("no samples")
	}
	for _, p := range rec.Points() {
		if p.X != 1000 {
			t.Errorf("sample %v is off the vertical axis", p)
		}
	}
}

func TestPolyline(t *testing.T) {
	r, rec := newTestRasterizer(255)
	r.Polyline(image.Point{0, 0}, image.Point{2, 0}, image.Point{2, 2})
	want := []image.Point{{0, 0}, {1, 0}, {2, 0}, {2, 0}, {2, 1}, {2, 2}}
	if got := rec.Points(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStickyPlotError(t *testing.T) {
	b := NewBuffer(MinCapacity)
	b.Reset()
	r := NewRasterizer(b, NewDensity(255))
	r.Line(0, 0, 100, 0)
	if r.Err() != ErrBufferFull {
		t.Fatalf("got error %v, want %v", r.Err(), ErrBufferFull)
	}
	if b.Len() != b.Limit() {
		t.Errorf("Len = %d, want %d", b.Len(), b.Limit())
	}
	// Further calls keep going and the error stays set.
	r.Point(1, 1)
	if r.Err() != ErrBufferFull {
		t.Errorf("error cleared by a later call: %v", r.Err())
	}
	r.ClearErr()
	if r.Err() != nil {
		t.Errorf("ClearErr left %v", r.Err())
	}
}

func BenchmarkCircle(b *testing.B) {
	buf := NewBuffer(DefaultCapacity)
	r := NewRasterizer(buf, NewDensity(100))
	for i := 0; i < b.N; i++ {
		buf.Reset()
		r.Circle(2048, 2048, 1500, ArcFull)
	}
}
