package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/bnema/codeora/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupTimer_RecordsPhasesInOrder(t *testing.T) {
	now := time.Unix(0, 0)
	timer := newStartupTimer(func() time.Time { return now })

	now = now.Add(10 * time.Millisecond)
	timer.Mark("config")
	timer.MarkDuration("database", 42*time.Millisecond)
	now = now.Add(5 * time.Millisecond)
	timer.Mark("window")

	require.Len(t, timer.phases, 3)
	assert.Equal(t, phase{name: "config", dur: 10 * time.Millisecond}, timer.phases[0])
	assert.Equal(t, phase{name: "database", dur: 42 * time.Millisecond}, timer.phases[1])
	assert.Equal(t, phase{name: "window", dur: 5 * time.Millisecond}, timer.phases[2])
	assert.Equal(t, 15*time.Millisecond, timer.Total())
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	dir := t.TempDir()
	cfg.Logging.LogDir = filepath.Join(dir, "logs")
	cfg.Database.Path = filepath.Join(dir, "codeora.sqlite")
	cfg.Network.PreflightCheck = false
	cfg.Permissions.UsePortal = false
	return cfg
}

func TestStartSession_FileLog(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	cfg := testConfig(t)
	cfg.Logging.EnableFileLog = true
	cfg.Logging.Level = "debug"

	s, ctx, err := StartSession(cfg)
	require.NoError(t, err)
	defer s.Cleanup()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, filepath.Join(cfg.Logging.LogDir, logging.SessionFilename(s.ID)), s.LogFile)
	assert.FileExists(t, s.LogFile)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.NotNil(t, logging.FromContext(ctx))
}

func TestApplyLogLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	cfg := testConfig(t)
	cfg.Logging.Level = "warn"
	ApplyLogLevel(context.Background(), cfg)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestRunParallelInit_OpensDatabase(t *testing.T) {
	cfg := testConfig(t)
	ctx := logging.WithContext(context.Background(), zerolog.Nop())

	res, err := RunParallelInit(ctx, cfg, NewStartupTimer())
	require.NoError(t, err)
	defer func() { assert.NoError(t, res.Close()) }()

	require.NotNil(t, res.DB)
	assert.True(t, res.DB.IsInitialized())
	assert.NotNil(t, res.PermissionRepo)
	assert.Nil(t, res.Network, "pre-flight disabled")
	assert.Nil(t, res.Devices, "portal disabled")
}

func TestRunParallelInit_DatabaseFailureDegrades(t *testing.T) {
	cfg := testConfig(t)
	// A directory where the database file should be.
	cfg.Database.Path = t.TempDir()
	ctx := logging.WithContext(context.Background(), zerolog.Nop())

	res, err := RunParallelInit(ctx, cfg, NewStartupTimer())
	require.NoError(t, err)
	assert.Nil(t, res.DB)
	assert.Nil(t, res.PermissionRepo)
}
