package docindex

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into one delivery: each Call cancels
// the still-pending delivery and reschedules after the quiet interval, so
// only the newest value within a burst reaches the callback. A Debouncer
// owns at most one pending timer and delivers at most once per quiet
// interval.
type Debouncer[T any] struct {
	quiet    time.Duration
	callback func(T)

	mu      sync.Mutex
	pending *time.Timer
}

// NewDebouncer creates a debouncer that delivers to callback after quiet
// elapses without another Call.
func NewDebouncer[T any](quiet time.Duration, callback func(T)) *Debouncer[T] {
	return &Debouncer[T]{quiet: quiet, callback: callback}
}

// Call schedules value for delivery, replacing any still-pending one.
func (d *Debouncer[T]) Call(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = time.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		d.pending = nil
		d.mu.Unlock()
		d.callback(value)
	})
}

// Cancel drops the pending delivery, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

// IdentityGuard suppresses redundant downstream notifications: Deliver
// invokes the callback only when the computed identity differs from the one
// last delivered. Typical use is cursor movement that stays inside the same
// declaration's span.
type IdentityGuard[T any] struct {
	identity func(T) string
	callback func(T)

	mu   sync.Mutex
	last string
	seen bool
}

// NewIdentityGuard wraps callback so equal consecutive identities are
// delivered once.
func NewIdentityGuard[T any](identity func(T) string, callback func(T)) *IdentityGuard[T] {
	return &IdentityGuard[T]{identity: identity, callback: callback}
}

// Deliver forwards value unless its identity matches the previous delivery.
func (g *IdentityGuard[T]) Deliver(value T) {
	id := g.identity(value)

	g.mu.Lock()
	if g.seen && g.last == id {
		g.mu.Unlock()
		return
	}
	g.last = id
	g.seen = true
	g.mu.Unlock()

	g.callback(value)
}

// Reset forgets the last delivered identity so the next Deliver always
// fires. Used when the underlying document is replaced.
func (g *IdentityGuard[T]) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seen = false
	g.last = ""
}
