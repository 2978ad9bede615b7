package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/logging"
)

// maxNotificationRunes caps what a page can push into a toast.
const maxNotificationRunes = 280

// ShowNotificationUseCase turns a bridge call from the page into a toast.
type ShowNotificationUseCase struct {
	notifier port.Notifier
}

// NewShowNotificationUseCase creates a new notification use case.
func NewShowNotificationUseCase(notifier port.Notifier) *ShowNotificationUseCase {
	return &ShowNotificationUseCase{notifier: notifier}
}

// Execute shows message. Blank messages are dropped.
func (uc *ShowNotificationUseCase) Execute(ctx context.Context, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		logging.FromContext(ctx).Debug().Msg("ignoring empty notification from page")
		return
	}
	if utf8.RuneCountInString(message) > maxNotificationRunes {
		message = string([]rune(message)[:maxNotificationRunes-1]) + "…"
	}
	uc.notifier.Show(ctx, message, port.NotificationInfo, 0)
}
