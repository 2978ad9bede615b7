package bootstrap

import (
	"context"
	"fmt"

	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/bnema/codeora/internal/logging"
	"github.com/rs/zerolog"
)

// Session is the logging identity of one launch.
type Session struct {
	ID      string
	Logger  zerolog.Logger
	LogFile string
	// Cleanup flushes and closes the log file, if any.
	Cleanup func()
}

// StartSession builds the session logger: console or JSON on stderr and,
// when enabled, a rotated JSON file per session under the log directory.
// A file log that cannot be opened is reported and skipped.
func StartSession(cfg *config.Config) (*Session, context.Context, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("start session: nil config")
	}

	s := &Session{ID: logging.GenerateSessionID(), Cleanup: func() {}}

	logCfg := logging.DefaultConfig()
	// The logger itself lets everything through; the effective level is the
	// global one so a config reload can raise or lower it.
	logCfg.Level = zerolog.TraceLevel
	if cfg.Logging.Format == "json" || cfg.Logging.Format == "console" {
		logCfg.Format = cfg.Logging.Format
	}
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))

	var fileErr error
	if cfg.Logging.EnableFileLog {
		rotator, err := logging.NewLogRotator(cfg.Logging.LogDir, logging.SessionFilename(s.ID), logging.RotatorOptions{
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		})
		if err != nil {
			fileErr = err
		} else {
			logCfg.File = rotator
			s.LogFile = rotator.Path()
			s.Cleanup = func() { _ = rotator.Close() }
		}
	}

	s.Logger = logging.New(logCfg).With().Str("session_id", s.ID).Logger()
	if fileErr != nil {
		s.Logger.Warn().Err(fileErr).Msg("file logging disabled")
	}

	ctx := logging.WithContext(context.Background(), s.Logger)
	return s, ctx, nil
}

// ApplyLogLevel re-applies the configured level, e.g. after a reload.
func ApplyLogLevel(ctx context.Context, cfg *config.Config) {
	level := logging.ParseLevel(cfg.Logging.Level)
	if zerolog.GlobalLevel() == level {
		return
	}
	zerolog.SetGlobalLevel(level)
	logging.FromContext(ctx).Info().Str("level", level.String()).Msg("log level changed")
}
