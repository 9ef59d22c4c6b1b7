// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/scan-history/internal/logger"
)

// Dispatcher is a serial mailbox: functions handed to [Dispatcher.Post] run
// one at a time, in submission order, on the goroutine executing
// [Dispatcher.Run]. Code that only ever runs on the dispatcher needs no locks.
//
// The mailbox is unbounded, so Post never blocks the caller.
type Dispatcher struct {
	mu      sync.Mutex
	pending []func()
	closed  bool

	wake chan struct{}
	done chan struct{}

	logger *logger.Logger
}

// NewDispatcher returns a dispatcher that is accepting work but not yet
// running it; call Run to start the loop.
func NewDispatcher(log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: log,
	}
}

// Post enqueues fn. After the loop has exited fn is dropped.
func (d *Dispatcher) Post(fn func()) {
	if fn == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.pending = append(d.pending, fn)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Do runs fn on the dispatcher and waits for it to finish. It must not be
// called from a function already running on the dispatcher.
func (d *Dispatcher) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	d.Post(func() {
		defer close(finished)
		fn()
	})

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.done:
		// the loop may have run fn right before exiting
		select {
		case <-finished:
			return nil
		default:
			return ErrStopped
		}
	}
}

// Run processes posted functions until ctx is cancelled. Functions still
// queued at that point are discarded. A panicking function is logged and
// does not stop the loop.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Debug().Msg("dispatcher started")
	defer d.logger.Debug().Msg("dispatcher stopped")

	for {
		select {
		case <-ctx.Done():
			d.mu.Lock()
			d.closed = true
			d.pending = nil
			d.mu.Unlock()
			close(d.done)
			return nil
		case <-d.wake:
			for _, fn := range d.drain() {
				if ctx.Err() != nil {
					break
				}
				d.run(fn)
			}
		}
	}
}

// Stopped is closed once Run has returned.
func (d *Dispatcher) Stopped() <-chan struct{} {
	return d.done
}

func (d *Dispatcher) drain() []func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	batch := d.pending
	d.pending = nil
	return batch
}

func (d *Dispatcher) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().Err(fmt.Errorf("%v", r)).Msg("dispatched function panicked")
		}
	}()
	fn()
}
