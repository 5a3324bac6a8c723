// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package transport moves display lists from a producer to a display.
//
// A DisplayTransport receives snapshots of a display list and shows them,
// whether by streaming DAC words to hardware or by simulating a scope trace
// on a raster image. A Pump drives one or more transports from a Source at
// the display's refresh rate.
package transport

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/xyscope/xyscope/raster"
)

// A Source publishes display lists. Both *xyscope.Renderer and
// *raster.Buffer are Sources.
type Source interface {
	// Snapshot returns the published display list. It must be safe to call
	// from any goroutine.
	Snapshot() raster.Snapshot
	// LastActivity returns the time the producer last plotted a sample.
	LastActivity() time.Time
}

// A DisplayTransport shows display lists. Refresh is called once per
// refresh period with the current snapshot, which may be empty when the
// display is blanked. It must not retain the snapshot after returning.
type DisplayTransport interface {
	Refresh(ctx context.Context, snap raster.Snapshot) error
}

// The TransportFunc type is an adapter to allow the use of ordinary
// functions as DisplayTransports.
type TransportFunc func(ctx context.Context, snap raster.Snapshot) error

// Refresh calls f(ctx, snap).
func (f TransportFunc) Refresh(ctx context.Context, snap raster.Snapshot) error {
	return f(ctx, snap)
}

// WordsPerSample is the number of DAC halfwords streamed for each sample.
const WordsPerSample = 2

// Encode appends the DAC stream for snap to dst and returns the extended
// slice. Each sample becomes its X word then its Y word, channel tags
// included, as little-endian halfwords.
func Encode(dst []byte, snap raster.Snapshot) []byte {
	for i := 0; i < snap.Len(); i++ {
		s := snap.At(i)
		dst = binary.LittleEndian.AppendUint16(dst, s.X)
		dst = binary.LittleEndian.AppendUint16(dst, s.Y)
	}
	return dst
}

// Words returns the DAC stream for snap as halfwords.
func Words(snap raster.Snapshot) []uint16 {
	w := make([]uint16, 0, WordsPerSample*snap.Len())
	for i := 0; i < snap.Len(); i++ {
		s := snap.At(i)
		w = append(w, s.X, s.Y)
	}
	return w
}

const (
	// DefaultClockHz is the default DAC transfer rate. The sample rate is
	// half of it, since every sample takes two transfers.
	DefaultClockHz = 800000
	// MinRefresh is the shortest refresh period, which sets the frame rate
	// of small display lists.
	MinRefresh = 20 * time.Millisecond
	// refreshSlack is the number of samples added to the length of a
	// display list when its transfer time is computed.
	refreshSlack = 20
)

func periodMicros(clockHz int) float64 {
	if clockHz <= 0 {
		clockHz = DefaultClockHz
	}
	return 1e6 / float64(clockHz)
}

// RefreshPeriod returns the refresh period for a display list of n samples
// streamed at clockHz transfers per second: the time needed to stream the
// whole list, or MinRefresh if that is longer. A non-positive clockHz means
// DefaultClockHz.
func RefreshPeriod(clockHz, n int) time.Duration {
	us := int(periodMicros(clockHz) * 2 * float64(n+refreshSlack))
	d := time.Duration(us) * time.Microsecond
	if d < MinRefresh {
		return MinRefresh
	}
	return d
}

// Porches returns the number of blank transfers before the beam is turned
// on at the start of a frame and after it is turned off at the end, for a
// transfer rate of clockHz. The counts cover the settling time of the DAC
// outputs and of the display's intensity input.
func Porches(clockHz int) (front, back int) {
	p := periodMicros(clockHz)
	front = int(p*186.23 - 52.1 + .5)
	back = int(p*79 - 36 + .5)
	return front, back
}

// DefaultScreenSaverTimeout is the idle time after which a Pump blanks the
// display by default.
const DefaultScreenSaverTimeout = 10 * time.Minute

// A ScreenSaver blanks an idle display to protect the phosphor.
type ScreenSaver struct {
	// Timeout is how long after the last plotted sample the display stays
	// on. Zero disables the screen saver.
	Timeout time.Duration
}

// Blank reports whether the display should be blank at now, given the time
// of the last drawing activity. A zero last time means nothing has been
// drawn yet, and never blanks.
func (s ScreenSaver) Blank(last, now time.Time) bool {
	if s.Timeout <= 0 || last.IsZero() {
		return false
	}
	return now.Sub(last) > s.Timeout
}
