package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/codeora/internal/domain/entity"
)

func newSession() *entity.Session {
	return entity.NewSession("https://chat.example.com/", time.Unix(1700000000, 0))
}

func TestSession_StartsIdle(t *testing.T) {
	s := newSession()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, entity.LoadStateIdle, s.State())
	assert.False(t, s.IndicatorVisible())
	assert.False(t, s.IsFailed())
}

func TestSession_NavigationResetsProgress(t *testing.T) {
	s := newSession()
	require.NoError(t, s.StartNavigation("https://chat.example.com/"))
	s.UpdateProgress(60)
	require.True(t, s.FinishNavigation())

	require.NoError(t, s.StartNavigation("https://chat.example.com/room"))

	assert.Equal(t, entity.LoadStateLoading, s.State())
	assert.Equal(t, 0, s.Progress())
	assert.True(t, s.IndicatorVisible())
	assert.Equal(t, "https://chat.example.com/room", s.CurrentURL())
}

func TestSession_UpdateProgress(t *testing.T) {
	s := newSession()
	require.NoError(t, s.StartNavigation(s.Target))

	assert.False(t, s.UpdateProgress(40))
	assert.Equal(t, 40, s.Progress())

	assert.True(t, s.UpdateProgress(130), "reaching 100 hides the indicator")
	assert.Equal(t, 100, s.Progress())
	assert.False(t, s.IndicatorVisible())

	assert.False(t, s.UpdateProgress(100), "already hidden")

	s.UpdateProgress(-5)
	assert.Equal(t, 0, s.Progress())
}

func TestSession_FailIsTerminalAndOnce(t *testing.T) {
	s := newSession()
	require.NoError(t, s.StartNavigation(s.Target))

	assert.True(t, s.Fail(entity.FailureMainFrameLoad))
	assert.False(t, s.Fail(entity.FailureHTTPStatus))

	assert.Equal(t, entity.LoadStateFailed, s.State())
	assert.Equal(t, entity.FailureMainFrameLoad, s.Failure())
	assert.False(t, s.IndicatorVisible())
	assert.ErrorIs(t, s.StartNavigation(s.Target), entity.ErrSessionFailed)
	assert.False(t, s.FinishNavigation())
}

func TestSession_FinishOnlyFromLoading(t *testing.T) {
	s := newSession()
	assert.False(t, s.FinishNavigation())
	assert.Equal(t, entity.LoadStateIdle, s.State())
}

func TestSession_ReplaceFileChooser(t *testing.T) {
	s := newSession()
	var got [][]string

	first := entity.NewPendingFileChooser(func(uris []string) { got = append(got, uris) })
	assert.Nil(t, s.ReplaceFileChooser(first))

	second := entity.NewPendingFileChooser(func([]string) {})
	prev := s.ReplaceFileChooser(second)
	require.Same(t, first, prev)
	assert.True(t, prev.Cancel())

	assert.Nil(t, s.TakeFileChooser(first.ID), "first is no longer pending")
	assert.Same(t, second, s.TakeFileChooser(second.ID))
	assert.False(t, s.HasPendingFileChooser())
	assert.Equal(t, [][]string{nil}, got)
}

func TestPendingFileChooser_ResolvesOnce(t *testing.T) {
	calls := 0
	p := entity.NewPendingFileChooser(func([]string) { calls++ })

	assert.True(t, p.Resolve([]string{"file:///tmp/a"}))
	assert.False(t, p.Resolve([]string{"file:///tmp/b"}))
	assert.False(t, p.Cancel())
	assert.True(t, p.Resolved())
	assert.Equal(t, 1, calls)
}

func TestLoadState_String(t *testing.T) {
	assert.Equal(t, "loading", entity.LoadStateLoading.String())
	assert.Equal(t, "failed", entity.LoadStateFailed.String())
	assert.Equal(t, "unknown", entity.LoadState(42).String())
}
