// Package loop drives a kite game without a terminal. A Driver owns the game on
// a single goroutine and only holds a ticker while a round is running.
package loop

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kite/internal/core"
	"github.com/vovakirdan/tui-kite/internal/games/kite"
)

var (
	// ErrStopped is returned when events are sent to a driver that has exited.
	ErrStopped = errors.New("loop: driver stopped")
	// ErrQueueFull is returned when events sent before Run overflow the queue.
	ErrQueueFull = errors.New("loop: event queue full")
)

// Sim is the part of the game the driver needs. *kite.Game satisfies it.
type Sim interface {
	Flap()
	Restart()
	Advance() kite.Snapshot
	Snapshot() kite.Snapshot
}

const (
	flapQueue  = 16
	resetQueue = 4
)

// Options configures a Driver.
type Options struct {
	Interval time.Duration       // Tick period; zero means core.DefaultTickInterval
	OnFrame  func(kite.Snapshot) // Called on the driver goroutine after every change
	Logger   *log.Logger         // Phase transitions are logged at debug level
}

// Driver runs a Sim on its own goroutine.
type Driver struct {
	sim      Sim
	interval time.Duration
	onFrame  func(kite.Snapshot)
	logger   *log.Logger

	flaps  chan struct{}
	resets chan struct{}
	done   chan struct{}

	ticker  *time.Ticker
	ticking atomic.Bool
	started atomic.Bool
	phase   kite.Phase
}

// New creates a driver for sim. Call Run to start it.
func New(sim Sim, opts Options) *Driver {
	interval := opts.Interval
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Driver{
		sim:      sim,
		interval: interval,
		onFrame:  opts.OnFrame,
		logger:   logger,
		flaps:    make(chan struct{}, flapQueue),
		resets:   make(chan struct{}, resetQueue),
		done:     make(chan struct{}),
	}
}

// Flap queues a flap. It returns ErrStopped once Run has returned. Before Run
// starts at most 16 flaps are queued; further ones return ErrQueueFull.
func (d *Driver) Flap() error {
	return d.send(d.flaps)
}

// Reset queues a return to the idle state. It returns ErrStopped once Run has
// returned. Before Run starts at most 4 resets are queued; further ones return
// ErrQueueFull.
func (d *Driver) Reset() error {
	return d.send(d.resets)
}

func (d *Driver) send(ch chan<- struct{}) error {
	select {
	case <-d.done:
		return ErrStopped
	default:
	}

	// Nothing drains the queue until Run starts
	if !d.started.Load() {
		select {
		case ch <- struct{}{}:
			return nil
		default:
			return ErrQueueFull
		}
	}

	select {
	case ch <- struct{}{}:
		return nil
	case <-d.done:
		return ErrStopped
	}
}

// Done is closed when Run returns.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Ticking reports whether the driver currently holds a ticker.
func (d *Driver) Ticking() bool {
	return d.ticking.Load()
}

// Run processes events until ctx is cancelled and returns ctx.Err().
// A driver runs once; calling Run again returns ErrStopped.
func (d *Driver) Run(ctx context.Context) error {
	if !d.started.CompareAndSwap(false, true) {
		return ErrStopped
	}
	defer close(d.done)
	defer d.stopTicker()

	snap := d.sim.Snapshot()
	d.phase = snap.Phase()
	d.publish(snap)
	d.syncTicker()

	for {
		// A nil channel never fires, so no ticks arrive outside a run
		var tick <-chan time.Time
		if d.ticker != nil {
			tick = d.ticker.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-d.flaps:
			d.sim.Flap()
			d.publish(d.sim.Snapshot())

		case <-d.resets:
			d.stopTicker()
			d.sim.Restart()
			d.publish(d.sim.Snapshot())

		case <-tick:
			d.publish(d.sim.Advance())
		}

		d.syncTicker()
	}
}

// syncTicker acquires the ticker on entering Running and releases it on any
// other phase.
func (d *Driver) syncTicker() {
	if d.phase != kite.PhaseRunning {
		d.stopTicker()
		return
	}
	if d.ticker == nil {
		d.ticker = time.NewTicker(d.interval)
		d.ticking.Store(true)
	}
}

func (d *Driver) stopTicker() {
	if d.ticker == nil {
		return
	}
	d.ticker.Stop()
	d.ticker = nil
	d.ticking.Store(false)
}

func (d *Driver) publish(snap kite.Snapshot) {
	if phase := snap.Phase(); phase != d.phase {
		d.logger.Debug("phase changed",
			"from", d.phase,
			"to", phase,
			"score", snap.State.Score,
			"tick", snap.Tick,
		)
		d.phase = phase
	}
	if d.onFrame != nil {
		d.onFrame(snap)
	}
}
