// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestBufferReset(t *testing.T) {
	b := NewBuffer(0)
	if got, want := b.Cap(), DefaultCapacity; got != want {
		t.Fatalf("Cap = %d, want %d", got, want)
	}
	b.Reset()
	want := []Sample{Pt(0, 0), Pt(4095, 0), Pt(4095, 0), Pt(0, 0), Pt(0, 0)}
	if got := b.Snapshot().Samples(); !reflect.DeepEqual(got, want) {
		t.Errorf("preamble: got %v, want %v", got, want)
	}
	if b.Len() != PreambleLen {
		t.Errorf("Len = %d, want %d", b.Len(), PreambleLen)
	}
}

func TestBufferFinalize(t *testing.T) {
	b := NewBuffer(32)
	b.Reset()
	b.Plot(Pt(7, 8))
	b.Finalize()
	if got, want := b.Len(), PreambleLen+1; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}
	snap := b.Snapshot()
	if got, want := snap.Len(), PreambleLen+2; got != want {
		t.Fatalf("snapshot length = %d, want %d", got, want)
	}
	if got, want := snap.At(snap.Len()-1), Pt(7, 8); got != want {
		t.Errorf("guard = %v, want %v", got, want)
	}

	// The next sample replaces the guard.
	b.Plot(Pt(9, 10))
	snap = b.Snapshot()
	if got, want := snap.Len(), PreambleLen+2; got != want {
		t.Fatalf("snapshot length = %d, want %d", got, want)
	}
	if got, want := snap.At(snap.Len()-1), Pt(9, 10); got != want {
		t.Errorf("last = %v, want %v", got, want)
	}

	b.Truncate()
	b.Finalize()
	if got, want := b.Snapshot().Samples(), []Sample{Pt(0, 0)}; !reflect.DeepEqual(got, want) {
		t.Errorf("empty list: got %v, want %v", got, want)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(32)
	b.Reset()
	for i := 0; i < 10; i++ {
		b.Plot(Pt(i, i))
	}
	b.Clear()
	snap := b.Snapshot()
	if got, want := snap.Len(), PreambleLen+1; got != want {
		t.Errorf("snapshot length = %d, want %d", got, want)
	}
	if got, want := snap.At(PreambleLen), Pt(0, 0); got != want {
		t.Errorf("guard = %v, want %v", got, want)
	}
}

func TestBufferFull(t *testing.T) {
	testCases := []struct {
		desc     string
		capacity int
		plots    int
		wantLen  int
		dropped  int
	}{
		{"fits", 20, 10, 15, 0},
		{"exactly", 20, 12, 17, 0},
		{"one over", 20, 13, 17, 1},
		{"many over", 20, 100, 17, 88},
		{"minimum", 1, 5, 6, 4},
	}
	for _, tc := range testCases {
		b := NewBuffer(tc.capacity)
		b.Reset()
		var firstErr error
		for i := 0; i < tc.plots; i++ {
			if err := b.Plot(Pt(i, i)); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		if b.Len() != tc.wantLen {
			t.Errorf("%s: Len = %d, want %d", tc.desc, b.Len(), tc.wantLen)
		}
		if b.Dropped() != tc.dropped {
			t.Errorf("%s: Dropped = %d, want %d", tc.desc, b.Dropped(), tc.dropped)
		}
		wantErr := error(nil)
		if tc.dropped > 0 {
			wantErr = ErrBufferFull
		}
		if firstErr != wantErr || b.Err() != wantErr {
			t.Errorf("%s: got errors %v and %v, want %v", tc.desc, firstErr, b.Err(), wantErr)
		}
		// The guard always fits.
		b.Finalize()
		if n := b.Snapshot().Len(); n > b.Cap() {
			t.Errorf("%s: snapshot length %d exceeds capacity %d", tc.desc, n, b.Cap())
		}
		b.Reset()
		if b.Err() != nil || b.Dropped() != 0 {
			t.Errorf("%s: Reset left error %v, %d dropped", tc.desc, b.Err(), b.Dropped())
		}
	}
}

func TestBufferActivity(t *testing.T) {
	b := NewBuffer(32)
	if !b.LastActivity().IsZero() {
		t.Errorf("LastActivity = %v before any plot", b.LastActivity())
	}
	before := time.Now()
	b.Reset()
	b.Plot(Pt(1, 1))
	if got := b.LastActivity(); got.Before(before.Add(-time.Millisecond)) {
		t.Errorf("LastActivity = %v, want after %v", got, before)
	}
}

// TestSnapshotConcurrent checks that a reader polling the buffer while it is
// rewritten only ever sees tagged samples within the committed length.
func TestSnapshotConcurrent(t *testing.T) {
	b := NewBuffer(2000)
	b.Clear()
	r := NewRasterizer(b, NewDensity(255))

	var (
		wg   sync.WaitGroup
		done = make(chan struct{})
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		var buf []Sample
		for {
			select {
			case <-done:
				return
			default:
			}
			snap := b.Snapshot()
			if snap.Len() > b.Cap() {
				t.Errorf("snapshot length %d exceeds capacity %d", snap.Len(), b.Cap())
				return
			}
			buf = snap.AppendTo(buf[:0])
			for i, s := range buf {
				if !s.Tagged() {
					t.Errorf("sample %d: %#v has wrong channel tags", i, s)
					return
				}
			}
		}
	}()

	for i := 0; i < 200; i++ {
		b.Reset()
		r.Rect(i, i, 1000+i, 800+i)
		r.Circle(2000, 2000, 100+i, ArcFull)
		b.Finalize()
	}
	close(done)
	wg.Wait()
}

func BenchmarkBufferPlot(b *testing.B) {
	buf := NewBuffer(DefaultCapacity)
	buf.Reset()
	for i := 0; i < b.N; i++ {
		if buf.Plot(Pt(i, i)) != nil {
			buf.Reset()
		}
	}
}
