// Package bootstrap prepares everything the GUI needs before GTK starts.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/codeora/internal/domain/repository"
	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/bnema/codeora/internal/infrastructure/network"
	"github.com/bnema/codeora/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/codeora/internal/infrastructure/portal"
	"github.com/bnema/codeora/internal/logging"
	"golang.org/x/sync/errgroup"
)

// ParallelInitResult holds what the parallel init phase produced. Every
// field degrades instead of failing: a nil PermissionRepo keeps decisions
// in memory, a nil Devices uses the in-window prompt.
type ParallelInitResult struct {
	DB             *sqlite.LazyDB
	PermissionRepo repository.PermissionRepository
	Network        *network.Monitor
	Devices        *portal.DevicePortal
	Duration       time.Duration
}

// Close releases the database and the D-Bus connection.
func (r *ParallelInitResult) Close() error {
	var errs []error
	if r.DB != nil {
		errs = append(errs, r.DB.Close())
	}
	if r.Devices != nil {
		errs = append(errs, r.Devices.Close())
	}
	return errors.Join(errs...)
}

// RunParallelInit opens the database, runs the network pre-flight and
// probes the device portal concurrently.
func RunParallelInit(ctx context.Context, cfg *config.Config, timer *StartupTimer) (*ParallelInitResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("parallel init: nil config")
	}
	log := logging.FromContext(ctx)
	start := time.Now()

	res := &ParallelInitResult{}
	if cfg.Network.PreflightCheck {
		res.Network = NewNetworkMonitor(cfg)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t := time.Now()
		lazy := sqlite.NewLazyDB(cfg.Database.Path)
		if _, err := lazy.DB(gctx); err != nil {
			log.Warn().Err(err).Str("path", cfg.Database.Path).Msg("permission database unavailable, decisions will not persist")
			_ = lazy.Close()
			return nil
		}
		res.DB = lazy
		res.PermissionRepo = sqlite.NewLazyPermissionRepository(lazy)
		timer.MarkDuration("database", time.Since(t))
		return nil
	})

	if res.Network != nil {
		g.Go(func() error {
			t := time.Now()
			online := res.Network.Preflight(gctx)
			log.Debug().Bool("online", online).Msg("network pre-flight done")
			timer.MarkDuration("preflight", time.Since(t))
			return nil
		})
	}

	if cfg.Permissions.UsePortal {
		g.Go(func() error {
			t := time.Now()
			res.Devices = portal.NewDevicePortal(gctx)
			timer.MarkDuration("portal", time.Since(t))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		_ = res.Close()
		return nil, err
	}
	res.Duration = time.Since(start)
	return res, nil
}

// NewNetworkMonitor combines the desktop network monitor with an HTTP probe
// of the configured endpoint.
func NewNetworkMonitor(cfg *config.Config) *network.Monitor {
	return network.NewMonitor(
		network.GioChecker{},
		network.NewHTTPProbe(cfg.Network.ProbeURL, cfg.Network.ProbeTimeout, cfg.App.UserAgentSuffix),
	)
}
