// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package demo

import (
	"image"
	"testing"
	"time"

	"github.com/xyscope/xyscope"
)

func TestDraw(t *testing.T) {
	r := xyscope.New(nil)
	tm := time.Date(2026, 10, 18, 10, 8, 30, 0, time.UTC)
	n := Draw(r, tm)
	if err := r.Buffer().Err(); err != nil {
		t.Fatalf("display list error: %v", err)
	}
	if n <= 1000 || n > r.Buffer().Cap() {
		t.Errorf("got %d samples", n)
	}
	if r.Spacing() != xyscope.Mono {
		t.Errorf("spacing left at %v", r.Spacing())
	}
	if m := Draw(r, tm); m != n {
		t.Errorf("redraw gave %d samples, want %d", m, n)
	}
}

func TestHand(t *testing.T) {
	testCases := []struct {
		f    float64
		want image.Point
	}{
		{0, image.Point{clockX, clockY + 100}},
		{0.25, image.Point{clockX + 100, clockY}},
		{0.5, image.Point{clockX, clockY - 100}},
		{0.75, image.Point{clockX - 100, clockY}},
	}
	for _, tc := range testCases {
		if got := hand(tc.f, 100); got != tc.want {
			t.Errorf("hand(%v) = %v, want %v", tc.f, got, tc.want)
		}
	}
}
