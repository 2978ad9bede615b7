package component

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/logging"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// DefaultToastDuration is used when the configured duration is not positive.
const DefaultToastDuration = 2500 * time.Millisecond

var toastClasses = []string{"toast-info", "toast-success", "toast-warning", "toast-error"}

// toastClass returns the CSS class for a notification type.
func toastClass(t port.NotificationType) string {
	switch t {
	case port.NotificationSuccess:
		return "toast-success"
	case port.NotificationWarning:
		return "toast-warning"
	case port.NotificationError:
		return "toast-error"
	default:
		return "toast-info"
	}
}

// Toaster shows transient messages over the page. A new toast while one is
// visible replaces the text and resets the dismiss timer.
type Toaster struct {
	container *gtk.Box
	label     *gtk.Label
	duration  time.Duration

	mu           sync.Mutex
	visible      bool
	dismissTimer glib.SourceHandle
}

var _ port.Notifier = (*Toaster)(nil)

// NewToaster creates a hidden toaster anchored at the bottom center.
func NewToaster(duration time.Duration) *Toaster {
	if duration <= 0 {
		duration = DefaultToastDuration
	}

	container := gtk.NewBox(gtk.OrientationHorizontal, 0)
	container.AddCSSClass("toast")
	container.AddCSSClass("toast-info")
	container.SetHAlign(gtk.AlignCenter)
	container.SetVAlign(gtk.AlignEnd)
	container.SetHExpand(false)
	container.SetVExpand(false)

	// Never steal focus or clicks from the page
	container.SetCanTarget(false)
	container.SetCanFocus(false)
	container.SetVisible(false)

	label := gtk.NewLabel("")
	label.SetWrap(true)
	label.SetCanTarget(false)
	label.SetCanFocus(false)
	container.Append(label)

	return &Toaster{container: container, label: label, duration: duration}
}

// Widget returns the widget for overlay registration.
func (t *Toaster) Widget() gtk.Widgetter {
	return t.container
}

// Show displays message for duration, or the default duration when zero.
func (t *Toaster) Show(ctx context.Context, message string, notifType port.NotificationType, duration time.Duration) {
	if duration <= 0 {
		duration = t.duration
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, class := range toastClasses {
		t.container.RemoveCSSClass(class)
	}
	t.container.AddCSSClass(toastClass(notifType))
	t.label.SetText(message)

	if t.dismissTimer != 0 {
		glib.SourceRemove(t.dismissTimer)
		t.dismissTimer = 0
	}

	if !t.visible {
		t.visible = true
		t.container.SetVisible(true)
	}

	t.dismissTimer = glib.TimeoutAdd(uint(duration.Milliseconds()), func() bool {
		t.dismiss()
		return false
	})

	logging.FromContext(ctx).Debug().
		Str("type", notifType.String()).
		Dur("duration", duration).
		Msg("toast shown")
}

func (t *Toaster) dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dismissTimer = 0
	if !t.visible {
		return
	}
	t.visible = false
	t.container.SetVisible(false)
}
