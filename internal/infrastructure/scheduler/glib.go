// Package scheduler runs callbacks on the GLib main loop.
package scheduler

import (
	"sync"
	"time"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
)

// GLib implements port.Scheduler with GLib timeout and idle sources.
// AfterFunc and Post are safe to call from any goroutine.
type GLib struct{}

var _ port.Scheduler = GLib{}

// New returns the main loop scheduler.
func New() GLib { return GLib{} }

type timer struct {
	mu      sync.Mutex
	handle  glib.SourceHandle
	fired   bool
	stopped bool
}

// Stop implements port.Timer.
func (t *timer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	glib.SourceRemove(t.handle)
	return true
}

// take marks the timer as fired and reports whether fn should run.
func (t *timer) take() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.fired = true
	return true
}

// AfterFunc runs fn once on the main loop after d.
func (GLib) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &timer{}

	t.mu.Lock()
	t.handle = glib.TimeoutAdd(uint(d.Milliseconds()), func() bool {
		if t.take() {
			fn()
		}
		return false
	})
	t.mu.Unlock()

	return t
}

// Post queues fn on the main loop.
func (GLib) Post(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
