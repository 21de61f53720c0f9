package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration collapses bursts of filesystem events (editors
// and exporters often write a file several times in quick succession) into
// a single change notification.
const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer coalesces rapid Trigger calls into one callback invocation
// after a quiet period.
type Debouncer struct {
	d     time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(d time.Duration) *Debouncer {
	if d <= 0 {
		d = DefaultDebounceDuration
	}
	return &Debouncer{d: d}
}

// Trigger schedules fn to run after the quiet period, resetting the timer
// if a trigger is already pending.
func (b *Debouncer) Trigger(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, fn)
}

// Cancel stops any pending callback.
func (b *Debouncer) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
