package port

import (
	"context"
	"time"
)

// NotificationType indicates the visual style of a notification.
type NotificationType int

const (
	// NotificationInfo is for informational messages.
	NotificationInfo NotificationType = iota
	// NotificationSuccess is for success confirmations.
	NotificationSuccess
	// NotificationError is for error messages.
	NotificationError
	// NotificationWarning is for warning messages.
	NotificationWarning
)

// String returns a human-readable representation of the notification type.
func (t NotificationType) String() string {
	switch t {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	default:
		return "info"
	}
}

// Notifier shows a transient, auto-dismissing message over the page. It
// never blocks and never steals focus.
type Notifier interface {
	// Show displays message. A zero duration uses the configured default.
	Show(ctx context.Context, message string, notifType NotificationType, duration time.Duration)
}
