package usecase

import (
	"context"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/logging"
)

// NavigateBackUseCase handles the "back" gesture: go back in history when
// possible, otherwise close the window.
type NavigateBackUseCase struct {
	surface port.BrowserSurface
	closer  port.WindowCloser
}

// NewNavigateBackUseCase creates a new back navigation use case.
func NewNavigateBackUseCase(surface port.BrowserSurface, closer port.WindowCloser) *NavigateBackUseCase {
	return &NavigateBackUseCase{surface: surface, closer: closer}
}

// Execute performs the back action.
func (uc *NavigateBackUseCase) Execute(ctx context.Context) error {
	if uc.surface != nil && uc.surface.CanGoBack() {
		return uc.surface.GoBack(ctx)
	}
	logging.FromContext(ctx).Debug().Msg("no history to go back to, closing window")
	uc.closer.CloseWindow(ctx)
	return nil
}
