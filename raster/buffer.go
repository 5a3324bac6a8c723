// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raster

import (
	"errors"
	"sync/atomic"
	"time"
)

var (
	// ErrBufferFull is reported when a sample is dropped because the display
	// list has reached its usable length.
	ErrBufferFull = errors.New("raster: display list full")
	// ErrOutOfRange is reported when a circle or ellipse would extend off
	// the display. The figure is skipped entirely.
	ErrOutOfRange = errors.New("raster: figure extends off screen")
)

const (
	// DefaultCapacity is the number of slots of a display list created with
	// a non-positive capacity.
	DefaultCapacity = 15000
	// ReservedSlots are kept free at the end of every display list so that
	// Finalize can never overflow.
	ReservedSlots = 3
	// PreambleLen is the number of synchronization samples written by Reset.
	PreambleLen = 5
	// MinCapacity is the smallest display list that can hold the preamble,
	// one sample and the reserved slots.
	MinCapacity = PreambleLen + 1 + ReservedSlots
)

// preamble is a full-scale pulse on the X channel followed by settling
// samples. The transport locks onto the pulse to find the frame boundary
// and leaves blanking during the trailing zeros.
var preamble = [PreambleLen]Sample{
	Pt(0, 0),
	Pt(MaxCoord, 0),
	Pt(MaxCoord, 0),
	Pt(0, 0),
	Pt(0, 0),
}

// A Buffer is a fixed-capacity display list. It has a single producer, which
// calls Reset, Plot, Append and Finalize, and any number of readers that call
// Snapshot from other goroutines at any time.
//
// Each slot holds a whole Sample in one 32-bit word and the published length
// is stored after the slot it covers, so a reader never observes a torn
// sample or an index past the written data. A reader racing with a drawing
// pass may see a partly updated picture.
type Buffer struct {
	slots []atomic.Uint32
	// n is the producer's count of committed samples.
	n int
	// end is the published length, which is n plus the finalize guard when
	// one has been written.
	end atomic.Int32
	// err is sticky until the next Reset.
	err     error
	dropped int
	// activity holds the UnixNano time of the last plotted point.
	activity atomic.Int64
}

// NewBuffer returns an empty Buffer with the given number of slots. A
// capacity below MinCapacity is raised to it; a non-positive one means
// DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	return &Buffer{slots: make([]atomic.Uint32, capacity)}
}

// Cap returns the number of slots, including the reserved ones.
func (b *Buffer) Cap() int { return len(b.slots) }

// Limit returns the maximum number of committed samples.
func (b *Buffer) Limit() int { return len(b.slots) - ReservedSlots }

// Len returns the number of committed samples, excluding any finalize guard.
func (b *Buffer) Len() int { return b.n }

// At returns the i'th committed sample.
func (b *Buffer) At(i int) Sample {
	return unpack(b.slots[i].Load())
}

// Err returns ErrBufferFull if a sample has been dropped since the last Reset.
func (b *Buffer) Err() error { return b.err }

// Dropped returns the number of samples dropped since the last Reset.
func (b *Buffer) Dropped() int { return b.dropped }

// Append adds s to the end of the list. When the list is full the sample is
// dropped, the sticky error is set and ErrBufferFull is returned.
func (b *Buffer) Append(s Sample) error {
	if b.n >= b.Limit() {
		b.err = ErrBufferFull
		b.dropped++
		return ErrBufferFull
	}
	b.slots[b.n].Store(s.pack())
	b.n++
	b.end.Store(int32(b.n))
	return nil
}

// Plot appends s and records the time of the activity for screen saving. It
// makes a Buffer a Plotter.
func (b *Buffer) Plot(s Sample) error {
	b.Touch()
	return b.Append(s)
}

// Reset empties the list and writes the synchronization preamble. It also
// clears the sticky error.
func (b *Buffer) Reset() {
	for i, s := range preamble {
		b.slots[i].Store(s.pack())
	}
	b.n = len(preamble)
	b.err = nil
	b.dropped = 0
	b.end.Store(int32(b.n))
}

// Truncate drops every sample, including the preamble. It is mostly useful
// for tests and for transports that manage framing themselves.
func (b *Buffer) Truncate() {
	b.n = 0
	b.err = nil
	b.dropped = 0
	b.end.Store(0)
}

// Finalize repeats the last sample once past the end of the list, so that
// uncertainty in when blanking starts cannot hide the final visible point.
// An empty list gets a zero sentinel. The guard is overwritten by the next
// Append.
func (b *Buffer) Finalize() {
	s := Pt(0, 0)
	if b.n > 0 {
		s = b.At(b.n - 1)
	}
	b.slots[b.n].Store(s.pack())
	b.end.Store(int32(b.n + 1))
}

// Clear resets the list and finalizes it, leaving only the preamble.
func (b *Buffer) Clear() {
	b.Reset()
	b.Finalize()
}

// Touch records the current time as the last drawing activity.
func (b *Buffer) Touch() {
	b.activity.Store(time.Now().UnixNano())
}

// LastActivity returns the time of the last plotted point, or the zero Time
// if nothing has been plotted.
func (b *Buffer) LastActivity() time.Time {
	ns := b.activity.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

// Snapshot returns a read-only view of the published samples. It is safe to
// call from any goroutine and never blocks the producer.
func (b *Buffer) Snapshot() Snapshot {
	n := int(b.end.Load())
	return Snapshot{slots: b.slots[:n:n]}
}

// A Snapshot is a read-only view of a display list at the time Snapshot was
// called. Its length is fixed; slot contents may be overwritten by a later
// drawing pass, but each sample is always read whole.
type Snapshot struct {
	slots []atomic.Uint32
}

// Len returns the number of samples in the view.
func (s Snapshot) Len() int { return len(s.slots) }

// At returns the i'th sample.
func (s Snapshot) At(i int) Sample {
	return unpack(s.slots[i].Load())
}

// AppendTo appends the view's samples to dst and returns the extended slice.
func (s Snapshot) AppendTo(dst []Sample) []Sample {
	for i := range s.slots {
		dst = append(dst, unpack(s.slots[i].Load()))
	}
	return dst
}

// Samples returns a copy of the view's samples.
func (s Snapshot) Samples() []Sample {
	return s.AppendTo(make([]Sample, 0, len(s.slots)))
}
