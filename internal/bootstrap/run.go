package bootstrap

import (
	"context"

	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/bnema/codeora/internal/infrastructure/webkit/bridge"
	"github.com/bnema/codeora/internal/logging"
	"github.com/bnema/codeora/internal/ui"
)

// RunGUI runs the startup phases and then the GTK main loop. It returns the
// process exit code.
func RunGUI(ctx context.Context, cfg *config.Config, args []string) int {
	log := logging.FromContext(ctx)
	timer := NewStartupTimer()
	logCoreDumpLimits(ctx)

	res, err := RunParallelInit(ctx, cfg, timer)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return 1
	}
	timer.Mark("parallel_init")

	config.OnConfigChange(func(newCfg *config.Config) {
		ApplyLogLevel(ctx, newCfg)
	})
	if err := config.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	deps := &ui.Dependencies{
		Ctx:            ctx,
		Config:         cfg,
		PermissionRepo: res.PermissionRepo,
		MessageRouter:  bridge.NewMessageRouter(ctx),
		OnShutdown: func(ctx context.Context) {
			if err := res.Close(); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Msg("failed to release startup resources")
			}
		},
	}
	// Interfaces stay nil rather than holding nil pointers.
	if res.Network != nil {
		deps.Network = res.Network
	}
	if res.Devices != nil {
		deps.Devices = res.Devices
	}

	timer.Log(ctx)
	return ui.RunWithArgs(ctx, deps, args)
}
