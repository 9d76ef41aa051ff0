// Package debounce coalesces bursts of calls into a single delayed run.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs fn once, delay after the last Schedule call. fn runs on a
// timer goroutine unless Flush runs it on the caller's.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func()
	timer   *time.Timer
	pending bool
	gen     uint64
}

// New returns an idle debouncer.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Delay returns the configured delay.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Schedule (re)starts the timer. Repeated calls within the delay collapse
// into one run.
func (d *Debouncer) Schedule() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = true
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Pending reports whether a run is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Cancel stops the timer and reports whether a run was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	was := d.pending
	d.pending = false
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return was
}

// Flush cancels the timer and, if a run was pending, runs fn synchronously.
func (d *Debouncer) Flush() bool {
	if !d.Cancel() {
		return false
	}
	d.fn()
	return true
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// a timer that lost the race against Schedule or Cancel
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}
