package usecase_test

import (
	"testing"

	"github.com/bnema/codeora/internal/application/usecase"
	"github.com/stretchr/testify/assert"
)

func TestNavigationPolicy_EmptyAllowsEverything(t *testing.T) {
	p := usecase.NewNavigationPolicy(nil)
	assert.True(t, p.Allow(testContext(), "https://elsewhere.example.org/x"))
}

func TestNavigationPolicy_AllowList(t *testing.T) {
	p := usecase.NewNavigationPolicy([]string{"chat.example.com", "*.auth.example.com"})
	ctx := testContext()

	assert.True(t, p.Allow(ctx, "https://chat.example.com/room/1"))
	assert.True(t, p.Allow(ctx, "https://login.auth.example.com/"))
	assert.True(t, p.Allow(ctx, "about:blank"), "non-http navigations stay inside the page")
	assert.False(t, p.Allow(ctx, "https://ads.example.net/"))
}
