// Package network answers "is there a network" before the first load.
package network

import (
	"context"
	"sync"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/logging"
)

// Checker is one source of reachability information.
type Checker interface {
	Name() string
	Available(ctx context.Context) bool
}

// Monitor combines checkers and remembers the first answer, so the result
// computed during startup is reused when the session launches.
type Monitor struct {
	checkers []Checker

	mu     sync.Mutex
	done   bool
	result bool
}

var _ port.NetworkMonitor = (*Monitor)(nil)

// NewMonitor returns a monitor that reports available only when every
// checker does. With no checkers it always reports available.
func NewMonitor(checkers ...Checker) *Monitor {
	return &Monitor{checkers: checkers}
}

// Preflight runs the checks once and caches the result.
func (m *Monitor) Preflight(ctx context.Context) bool {
	return m.NetworkAvailable(ctx)
}

// NetworkAvailable implements port.NetworkMonitor.
func (m *Monitor) NetworkAvailable(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		return m.result
	}

	log := logging.FromContext(ctx)
	m.result = true
	for _, c := range m.checkers {
		if !c.Available(ctx) {
			log.Warn().Str("checker", c.Name()).Msg("network unavailable")
			m.result = false
			break
		}
		log.Debug().Str("checker", c.Name()).Msg("network available")
	}
	m.done = true
	return m.result
}
