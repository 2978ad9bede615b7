package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/logging"
)

// ErrOffline is returned by LaunchSessionUseCase when the pre-flight check
// found no network. The fallback screen is already showing at that point.
var ErrOffline = errors.New("no network available")

// LaunchInput describes the startup sequence of the shell.
type LaunchInput struct {
	URL          string
	Capabilities []entity.PermissionType
	// PreflightCheck skips the load entirely when the network is down.
	PreflightCheck bool
}

// LaunchSessionUseCase asks for the startup permissions and issues the one
// initial load of the target page.
type LaunchSessionUseCase struct {
	gate      *PermissionGate
	surface   port.BrowserSurface
	network   port.NetworkMonitor
	lifecycle *LifecycleController
}

// NewLaunchSessionUseCase creates the startup use case. network may be nil
// when no pre-flight check is wanted.
func NewLaunchSessionUseCase(
	gate *PermissionGate,
	surface port.BrowserSurface,
	network port.NetworkMonitor,
	lifecycle *LifecycleController,
) *LaunchSessionUseCase {
	return &LaunchSessionUseCase{
		gate:      gate,
		surface:   surface,
		network:   network,
		lifecycle: lifecycle,
	}
}

// Execute runs the startup sequence. The permission dialog, if any, is not
// awaited.
func (uc *LaunchSessionUseCase) Execute(ctx context.Context, in LaunchInput) error {
	log := logging.FromContext(ctx).With().Str("component", "launch").Str("url", in.URL).Logger()

	if in.URL == "" {
		return fmt.Errorf("launch: empty target url")
	}

	if len(in.Capabilities) > 0 {
		uc.gate.RequestPermissions(ctx, in.Capabilities, func(state entity.PermissionState) {
			log.Debug().
				Bool("all_granted", state.Granted(in.Capabilities...)).
				Msg("startup permissions settled")
		})
	}

	if in.PreflightCheck && uc.network != nil && !uc.network.NetworkAvailable(ctx) {
		log.Warn().Msg("no network at startup, skipping load")
		uc.lifecycle.Fail(ctx, entity.FailureNoNetwork)
		return ErrOffline
	}

	if err := uc.surface.LoadURI(ctx, in.URL); err != nil {
		return fmt.Errorf("launch: load %s: %w", in.URL, err)
	}
	log.Info().Msg("initial load issued")
	return nil
}
