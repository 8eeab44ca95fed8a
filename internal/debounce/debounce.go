// Package debounce coalesces bursts of events into one trailing action.
//
// A Debouncer holds at most one pending value. Every Trigger replaces the
// pending value and starts a new generation; an older generation can never
// fire. Hosts either schedule a timer per Trigger and call Settle with the
// generation it carries, or call Poll from a loop that already ticks.
package debounce

import "time"

// Debouncer is not safe for concurrent use. It is meant to be driven from a
// single event loop.
type Debouncer[T any] struct {
	quiet time.Duration

	pending  bool
	gen      uint64
	deadline time.Time
	value    T
}

// New creates a debouncer that fires after quiet has passed with no new
// triggers.
func New[T any](quiet time.Duration) *Debouncer[T] {
	if quiet < 0 {
		quiet = 0
	}
	return &Debouncer[T]{quiet: quiet}
}

// Quiet returns the quiet period.
func (d *Debouncer[T]) Quiet() time.Duration {
	return d.quiet
}

// Trigger records v as the pending value and returns the generation that
// identifies this trigger. Any earlier pending value is replaced.
func (d *Debouncer[T]) Trigger(now time.Time, v T) uint64 {
	d.gen++
	d.pending = true
	d.value = v
	d.deadline = now.Add(d.quiet)
	return d.gen
}

// Settle fires the pending value if gen is the latest generation. Stale
// generations report false.
func (d *Debouncer[T]) Settle(gen uint64) (T, bool) {
	if !d.pending || gen != d.gen {
		var zero T
		return zero, false
	}
	return d.fire()
}

// Poll fires the pending value once its deadline has passed.
func (d *Debouncer[T]) Poll(now time.Time) (T, bool) {
	if !d.pending || now.Before(d.deadline) {
		var zero T
		return zero, false
	}
	return d.fire()
}

// Pending reports whether a value is waiting to fire.
func (d *Debouncer[T]) Pending() bool {
	return d.pending
}

// Cancel drops the pending value.
func (d *Debouncer[T]) Cancel() {
	var zero T
	d.pending = false
	d.value = zero
}

func (d *Debouncer[T]) fire() (T, bool) {
	v := d.value
	d.Cancel()
	return v, true
}
