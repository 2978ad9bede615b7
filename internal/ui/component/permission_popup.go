package component

import (
	"context"
	"sync"

	"github.com/bnema/codeora/internal/logging"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// buttonSpacing is the spacing between buttons in the permission popup.
const buttonSpacing = 6

// PermissionPopup is the in-window permission prompt used when the desktop
// portal cannot answer.
type PermissionPopup struct {
	outerBox *gtk.Box
	mainBox  *gtk.Box

	headingLabel *gtk.Label
	bodyLabel    *gtk.Label

	btnDeny        *gtk.Button
	btnAllow       *gtk.Button
	btnAlwaysAllow *gtk.Button

	mu       sync.Mutex
	visible  bool
	callback func(allowed, persistent bool)
}

// NewPermissionPopup creates a hidden popup.
func NewPermissionPopup() *PermissionPopup {
	pp := &PermissionPopup{}
	pp.createWidgets()
	pp.attachKeyController()
	return pp
}

// Widget returns the outer widget for overlay registration.
func (pp *PermissionPopup) Widget() gtk.Widgetter {
	return pp.outerBox
}

// Show displays the popup. callback receives (allowed, persistent) once the
// user answers. A second Show while visible is ignored.
func (pp *PermissionPopup) Show(ctx context.Context, heading, body string, callback func(allowed, persistent bool)) {
	pp.mu.Lock()
	if pp.visible {
		pp.mu.Unlock()
		logging.FromContext(ctx).Warn().Msg("permission popup already visible, ignoring Show")
		return
	}
	pp.visible = true
	pp.callback = callback
	pp.mu.Unlock()

	pp.headingLabel.SetText(heading)
	pp.bodyLabel.SetText(body)
	pp.outerBox.SetVisible(true)

	// Deny is the conservative default
	pp.btnDeny.GrabFocus()
}

// IsVisible returns whether the popup is currently displayed.
func (pp *PermissionPopup) IsVisible() bool {
	pp.mu.Lock()
	defer pp.mu.Unlock()
	return pp.visible
}

func (pp *PermissionPopup) dismiss(allowed, persistent bool) {
	pp.mu.Lock()
	if !pp.visible {
		pp.mu.Unlock()
		return
	}
	pp.visible = false
	cb := pp.callback
	pp.callback = nil
	pp.mu.Unlock()

	pp.outerBox.SetVisible(false)
	if cb != nil {
		cb(allowed, persistent)
	}
}

func (pp *PermissionPopup) createWidgets() {
	pp.outerBox = gtk.NewBox(gtk.OrientationVertical, 0)
	pp.outerBox.AddCSSClass("permission-popup-outer")
	pp.outerBox.SetHAlign(gtk.AlignCenter)
	pp.outerBox.SetVAlign(gtk.AlignCenter)
	pp.outerBox.SetVisible(false)

	pp.mainBox = gtk.NewBox(gtk.OrientationVertical, buttonSpacing)
	pp.mainBox.AddCSSClass("permission-popup-container")

	pp.headingLabel = gtk.NewLabel("")
	pp.headingLabel.AddCSSClass("permission-popup-heading")
	pp.headingLabel.SetHAlign(gtk.AlignStart)

	pp.bodyLabel = gtk.NewLabel("")
	pp.bodyLabel.AddCSSClass("permission-popup-body")
	pp.bodyLabel.SetHAlign(gtk.AlignStart)
	pp.bodyLabel.SetWrap(true)

	btnRow := gtk.NewBox(gtk.OrientationHorizontal, buttonSpacing)
	btnRow.AddCSSClass("permission-popup-btn-row")
	btnRow.SetHAlign(gtk.AlignEnd)

	pp.btnDeny = newPopupButton("Deny", "permission-popup-btn-deny")
	pp.btnAllow = newPopupButton("Allow", "permission-popup-btn-allow")
	pp.btnAlwaysAllow = newPopupButton("Always Allow", "permission-popup-btn-allow")

	pp.btnDeny.ConnectClicked(func() { pp.dismiss(false, false) })
	pp.btnAllow.ConnectClicked(func() { pp.dismiss(true, false) })
	pp.btnAlwaysAllow.ConnectClicked(func() { pp.dismiss(true, true) })

	btnRow.Append(pp.btnDeny)
	btnRow.Append(pp.btnAllow)
	btnRow.Append(pp.btnAlwaysAllow)

	pp.mainBox.Append(pp.headingLabel)
	pp.mainBox.Append(pp.bodyLabel)
	pp.mainBox.Append(btnRow)
	pp.outerBox.Append(pp.mainBox)
}

func newPopupButton(label, class string) *gtk.Button {
	btn := gtk.NewButtonWithLabel(label)
	btn.AddCSSClass("permission-popup-btn")
	btn.AddCSSClass(class)
	return btn
}

func (pp *PermissionPopup) attachKeyController() {
	controller := gtk.NewEventControllerKey()
	controller.SetPropagationPhase(gtk.PhaseCapture)
	controller.ConnectKeyPressed(func(keyval, _ uint, _ gdk.ModifierType) bool {
		if keyval == gdk.KEY_Escape {
			// Escape = deny
			pp.dismiss(false, false)
			return true
		}
		return false
	})
	pp.outerBox.AddController(controller)
}
