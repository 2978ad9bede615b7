package ui

import (
	"context"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/infrastructure/webkit"
	"github.com/bnema/codeora/internal/logging"
	"github.com/bnema/codeora/internal/ui/component"
	"github.com/bnema/codeora/internal/ui/window"
)

// fallbackPresenter swaps the page for the fallback screen and tears the
// view down. The session never comes back from it.
type fallbackPresenter struct {
	screen *component.FallbackScreen
	window *window.MainWindow
	host   *webkit.Host
}

var _ port.FallbackPresenter = (*fallbackPresenter)(nil)

func (p *fallbackPresenter) ShowFallback(ctx context.Context, reason entity.FailureReason) {
	logging.FromContext(ctx).Warn().Str("reason", string(reason)).Msg("showing fallback screen")
	p.screen.SetReason(reason)
	p.window.ShowFallback()
	p.host.Destroy()
}
