package usecase

import (
	"context"

	"github.com/bnema/codeora/internal/domain/url"
	"github.com/bnema/codeora/internal/logging"
)

// NavigationPolicy decides whether the surface may follow a main-frame
// navigation. With no allowed hosts every navigation is followed.
type NavigationPolicy struct {
	allowedHosts []string
}

// NewNavigationPolicy creates a policy for allowedHosts.
func NewNavigationPolicy(allowedHosts []string) *NavigationPolicy {
	return &NavigationPolicy{allowedHosts: allowedHosts}
}

// Allow reports whether uri may be loaded in the surface.
func (p *NavigationPolicy) Allow(ctx context.Context, uri string) bool {
	if url.HostAllowed(uri, p.allowedHosts) {
		return true
	}
	logging.FromContext(ctx).Info().Str("url", uri).Msg("navigation outside allowed hosts ignored")
	return false
}
