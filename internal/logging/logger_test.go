package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/codeora/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := logging.WithContext(context.Background(), base)
	ctx = logging.WithComponent(ctx, "lifecycle")
	ctx = logging.WithSessionID(ctx, "abc")

	logging.FromContext(ctx).Info().Msg("ready")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "lifecycle", line["component"])
	assert.Equal(t, "abc", line["session_id"])
	assert.Equal(t, "ready", line["message"])
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	log := logging.FromContext(context.Background())
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
}

func TestNew_CopiesToFile(t *testing.T) {
	var file bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.File = &file

	log := logging.New(cfg)
	log.Warn().Str("k", "v").Msg("copied")

	assert.Contains(t, file.String(), `"k":"v"`)
}

func TestSessionFilename_RoundTrip(t *testing.T) {
	id := logging.GenerateSessionID()
	assert.Regexp(t, `^\d{8}_\d{6}_[0-9a-f]{4}$`, id)

	got, ok := logging.ParseSessionFilename(logging.SessionFilename(id))
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = logging.ParseSessionFilename("codeora.log")
	assert.False(t, ok)
}
