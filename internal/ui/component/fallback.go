package component

import (
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// FallbackScreen is the static page shown once the session failed.
type FallbackScreen struct {
	box     *gtk.Box
	heading *gtk.Label
	detail  *gtk.Label
}

// NewFallbackScreen creates the screen with message as its body text.
func NewFallbackScreen(message string) *FallbackScreen {
	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.AddCSSClass("fallback-screen")
	box.SetHAlign(gtk.AlignCenter)
	box.SetVAlign(gtk.AlignCenter)
	box.SetHExpand(true)
	box.SetVExpand(true)

	icon := gtk.NewImageFromIconName("network-offline-symbolic")
	icon.SetPixelSize(64)
	icon.AddCSSClass("fallback-icon")

	heading := gtk.NewLabel(FallbackHeading(entity.FailureNone))
	heading.AddCSSClass("fallback-heading")

	body := gtk.NewLabel(message)
	body.AddCSSClass("fallback-body")
	body.SetWrap(true)
	body.SetJustify(gtk.JustifyCenter)
	body.SetMaxWidthChars(40)

	detail := gtk.NewLabel("")
	detail.AddCSSClass("fallback-detail")
	detail.SetVisible(false)

	box.Append(icon)
	box.Append(heading)
	box.Append(body)
	box.Append(detail)

	return &FallbackScreen{box: box, heading: heading, detail: detail}
}

// Widget returns the screen widget.
func (f *FallbackScreen) Widget() gtk.Widgetter {
	return f.box
}

// SetReason updates the heading for reason.
func (f *FallbackScreen) SetReason(reason entity.FailureReason) {
	f.heading.SetText(FallbackHeading(reason))
	if d := FallbackDetail(reason); d != "" {
		f.detail.SetText(d)
		f.detail.SetVisible(true)
	}
}

// FallbackHeading returns the title for a failure reason.
func FallbackHeading(reason entity.FailureReason) string {
	switch reason {
	case entity.FailureNoNetwork:
		return "You're offline"
	default:
		return "Something went wrong"
	}
}

// FallbackDetail returns a short hint for a failure reason, or "".
func FallbackDetail(reason entity.FailureReason) string {
	switch reason {
	case entity.FailureNoNetwork:
		return "Check your connection and restart the app."
	case entity.FailureHTTPStatus:
		return "The server could not handle the request."
	case entity.FailureMainFrameLoad:
		return "The page could not be loaded."
	default:
		return ""
	}
}
