// Package ui provides the GTK4 presentation layer of the codeora shell.
package ui

import (
	"context"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/repository"
	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/bnema/codeora/internal/infrastructure/portal"
	"github.com/bnema/codeora/internal/infrastructure/webkit/bridge"
)

// Dependencies holds what bootstrap prepares before GTK starts.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config

	// PermissionRepo may be nil when the database is unavailable; decisions
	// then only live for the current launch.
	PermissionRepo repository.PermissionRepository
	// Network is consulted before the first load. nil skips the check.
	Network port.NetworkMonitor
	// Devices is the desktop portal. nil uses the in-window prompt.
	Devices portal.DeviceAccessor

	MessageRouter *bridge.MessageRouter

	// OnShutdown runs after the main loop quits.
	OnShutdown func(ctx context.Context)
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
