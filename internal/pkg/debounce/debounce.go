// Package debounce collapses bursts of writes into a single deferred call.
// Scheduling the same key again within the window resets the timer and
// replaces the pending function, so only the latest payload runs.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	pending map[string]*entry
}

type entry struct {
	timer *time.Timer
	fn    func()
}

func New(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]*entry),
	}
}

// Do schedules fn to run after the window elapses. If the key already has a
// pending call, its timer restarts and fn replaces the previous function.
// With a non-positive window, fn runs synchronously.
func (d *Debouncer) Do(key string, fn func()) {
	if d.window <= 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if e, ok := d.pending[key]; ok {
		e.fn = fn
		e.timer.Reset(d.window)
		return
	}

	e := &entry{fn: fn}
	e.timer = time.AfterFunc(d.window, func() {
		d.fire(key)
	})
	d.pending[key] = e
}

func (d *Debouncer) fire(key string) {
	d.mu.Lock()
	e, ok := d.pending[key]
	if ok {
		delete(d.pending, key)
	}
	d.mu.Unlock()

	if ok {
		e.fn()
	}
}

// Flush runs every pending call immediately. Intended for shutdown so
// coalesced writes are not lost.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	entries := make([]*entry, 0, len(d.pending))
	for key, e := range d.pending {
		e.timer.Stop()
		entries = append(entries, e)
		delete(d.pending, key)
	}
	d.mu.Unlock()

	for _, e := range entries {
		e.fn()
	}
}

// Pending reports the number of keys waiting to fire.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
