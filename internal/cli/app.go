// Package cli holds the dependencies shared by the codeora subcommands.
package cli

import (
	"context"

	"github.com/bnema/codeora/internal/cli/styles"
	"github.com/bnema/codeora/internal/domain/build"
	"github.com/bnema/codeora/internal/domain/repository"
	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/bnema/codeora/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/codeora/internal/logging"
)

// App holds CLI dependencies. The database opens on first use so commands
// that never touch permissions stay fast.
type App struct {
	Config      *config.Config
	Theme       *styles.Theme
	BuildInfo   build.Info
	Permissions repository.PermissionRepository

	db  *sqlite.LazyDB
	ctx context.Context
}

// NewApp creates the CLI application for cfg.
func NewApp(cfg *config.Config) *App {
	// Subcommands print their own output; only warnings reach stderr.
	logger := logging.NewFromConfigValuesWithTimeFormat("warn", "console", "15:04:05")
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	return &App{
		Config:      cfg,
		Theme:       styles.NewTheme(),
		Permissions: sqlite.NewLazyPermissionRepository(db),
		db:          db,
		ctx:         ctx,
	}
}

// Ctx returns the context carrying the CLI logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases the database if a command opened it.
func (a *App) Close() error {
	return a.db.Close()
}
