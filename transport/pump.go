// Copyright 2026 The XYscope-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xyscope/xyscope"
	"github.com/xyscope/xyscope/raster"
)

// PumpOptions are optional arguments to NewPump.
type PumpOptions struct {
	// ClockHz is the DAC transfer rate used to plan refresh periods.
	//
	// A zero value means DefaultClockHz.
	ClockHz int

	// Period fixes the refresh period. A zero value means the period is
	// planned from the length of each display list with RefreshPeriod.
	Period time.Duration

	// ScreenSaver blanks the display after a period of inactivity.
	//
	// A nil value means a ScreenSaver with DefaultScreenSaverTimeout. Use a
	// zero Timeout to disable it.
	ScreenSaver *ScreenSaver

	// Now returns the current time.
	//
	// A nil value means time.Now.
	Now func() time.Time
}

func (o *PumpOptions) clockHz() int {
	if o != nil && o.ClockHz > 0 {
		return o.ClockHz
	}
	return DefaultClockHz
}

func (o *PumpOptions) period() time.Duration {
	if o != nil {
		return o.Period
	}
	return 0
}

func (o *PumpOptions) screenSaver() ScreenSaver {
	if o != nil && o.ScreenSaver != nil {
		return *o.ScreenSaver
	}
	return ScreenSaver{Timeout: DefaultScreenSaverTimeout}
}

func (o *PumpOptions) now() func() time.Time {
	if o != nil && o.Now != nil {
		return o.Now
	}
	return time.Now
}

// A Pump refreshes displays from a Source. Each transport runs on its own
// goroutine and its own cadence, so a slow transport never delays another
// one or the producer.
type Pump struct {
	src        Source
	transports []DisplayTransport
	clockHz    int
	period     time.Duration
	saver      ScreenSaver
	now        func() time.Time
}

// NewPump returns a Pump that shows src on every transport in ts.
func NewPump(src Source, opts *PumpOptions, ts ...DisplayTransport) *Pump {
	return &Pump{
		src:        src,
		transports: ts,
		clockHz:    opts.clockHz(),
		period:     opts.period(),
		saver:      opts.screenSaver(),
		now:        opts.now(),
	}
}

// Frame returns the snapshot to show now: the published display list, or an
// empty snapshot while the screen saver blanks the display.
func (p *Pump) Frame() (snap raster.Snapshot, blank bool) {
	if p.saver.Blank(p.src.LastActivity(), p.now()) {
		return raster.Snapshot{}, true
	}
	return p.src.Snapshot(), false
}

// Period returns the refresh period for a snapshot of n samples.
func (p *Pump) Period(n int) time.Duration {
	if p.period > 0 {
		return p.period
	}
	return RefreshPeriod(p.clockHz, n)
}

// Run refreshes the transports until ctx is done. Refresh errors are logged
// and the transport keeps being refreshed. Run returns nil when ctx is
// cancelled.
func (p *Pump) Run(ctx context.Context) error {
	if len(p.transports) == 0 {
		return errors.New("transport: pump has no transports")
	}
	log := xyscope.Logger()
	log.Info("pump started", "transports", len(p.transports), "clockHz", p.clockHz)
	defer log.Info("pump stopped")

	g, ctx := errgroup.WithContext(ctx)
	for i, t := range p.transports {
		i, t := i, t
		g.Go(func() error {
			return p.loop(ctx, i, t)
		})
	}
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loop refreshes t until ctx is done, rescheduling after every frame so the
// period follows the length of the display list.
func (p *Pump) loop(ctx context.Context, id int, t DisplayTransport) error {
	log := xyscope.Logger().With("transport", id)
	ticker := time.NewTicker(MinRefresh)
	defer ticker.Stop()

	var (
		failing bool
		blanked bool
		period  time.Duration
	)
	for {
		snap, blank := p.Frame()
		if blank != blanked {
			blanked = blank
			log.Info("screen saver", "blank", blank)
		}
		err := t.Refresh(ctx, snap)
		switch {
		case err != nil && ctx.Err() != nil:
			return ctx.Err()
		case err != nil && !failing:
			failing = true
			log.Warn("refresh failed", "err", err)
		case err == nil && failing:
			failing = false
			log.Info("refresh recovered")
		}

		if d := p.Period(snap.Len()); d != period {
			period = d
			ticker.Reset(d)
			log.Debug("refresh period", "period", d, "len", snap.Len())
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RefreshOnce shows the current frame on every transport concurrently and
// returns the first error.
func (p *Pump) RefreshOnce(ctx context.Context) error {
	snap, _ := p.Frame()
	g, ctx := errgroup.WithContext(ctx)
	for i, t := range p.transports {
		i, t := i, t
		g.Go(func() error {
			if err := t.Refresh(ctx, snap); err != nil {
				return fmt.Errorf("transport %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
