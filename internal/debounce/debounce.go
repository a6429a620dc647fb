// Package debounce provides a cancellable deferred commit: a pending value
// plus a timer that applies it once changes stop arriving.
package debounce

import (
	"sync"
	"time"
)

// Debouncer holds the latest staged value and commits it after a quiet period.
// Only the last value of a burst reaches the commit function.
type Debouncer[T any] struct {
	delay  time.Duration
	commit func(T)

	mu         sync.Mutex
	timer      *time.Timer
	pending    T
	hasPending bool
	generation uint64
	stopped    bool
}

// New creates a Debouncer that calls commit delay after the last Set.
func New[T any](delay time.Duration, commit func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, commit: commit}
}

// Set stages v and restarts the quiet period.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending, d.hasPending = v, true
	d.generation++
	gen := d.generation

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire commits the pending value unless a newer Set or a Cancel superseded
// the timer that scheduled it.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || !d.hasPending || gen != d.generation {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.hasPending = false
	d.mu.Unlock()

	d.commit(v)
}

// Pending returns the staged value, if any.
func (d *Debouncer[T]) Pending() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending, d.hasPending
}

// Cancel discards the staged value without committing it.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer[T]) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	var zero T
	d.pending, d.hasPending = zero, false
	d.generation++
}

// Flush commits the staged value immediately.
// It reports whether there was anything to commit.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if d.stopped || !d.hasPending {
		d.mu.Unlock()
		return false
	}
	v := d.pending
	d.cancelLocked()
	d.mu.Unlock()

	d.commit(v)
	return true
}

// Stop cancels any staged value. Later calls to Set are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}
