// Package input wires keyboard and mouse shortcuts to use cases.
package input

import (
	"context"

	"github.com/bnema/codeora/internal/logging"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Standard button numbers (consistent across Wayland and X11)
const mouseButtonBack = 8

// Action is a shortcut outcome.
type Action int

const (
	ActionNone Action = iota
	ActionBack
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
)

// Handlers are called on the GTK main loop.
type Handlers struct {
	Back func(ctx context.Context)
	// Zoom receives ActionZoomIn, ActionZoomOut or ActionZoomReset.
	Zoom func(ctx context.Context, action Action)
}

// Controllable is a widget that accepts event controllers.
type Controllable interface {
	AddController(c gtk.EventControllerer)
}

// Attach installs the key controller and the back mouse button gesture on
// target.
func Attach(ctx context.Context, target Controllable, h Handlers) {
	log := logging.FromContext(ctx)

	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)
	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		action := ActionForKey(keyval, state)
		if action == ActionNone {
			return false
		}
		log.Debug().Int("action", int(action)).Msg("shortcut")
		return dispatch(ctx, h, action)
	})
	target.AddController(keys)

	click := gtk.NewGestureClick()
	// 0 = any button
	click.SetButton(0)
	click.SetPropagationPhase(gtk.PhaseCapture)
	click.ConnectPressed(func(nPress int, _, _ float64) {
		if nPress != 1 || click.CurrentButton() != mouseButtonBack {
			return
		}
		dispatch(ctx, h, ActionBack)
	})
	target.AddController(click)
}

func dispatch(ctx context.Context, h Handlers, action Action) bool {
	switch action {
	case ActionBack:
		if h.Back == nil {
			return false
		}
		h.Back(ctx)
		return true
	case ActionZoomIn, ActionZoomOut, ActionZoomReset:
		if h.Zoom == nil {
			return false
		}
		h.Zoom(ctx, action)
		return true
	default:
		return false
	}
}

// ActionForKey maps a key press to an action.
func ActionForKey(keyval uint, state gdk.ModifierType) Action {
	state &= gdk.ControlMask | gdk.AltMask | gdk.ShiftMask

	switch {
	case state&gdk.AltMask != 0 && state&gdk.ControlMask == 0 && keyval == gdk.KEY_Left:
		return ActionBack
	case state&gdk.ControlMask != 0 && state&gdk.AltMask == 0:
		switch keyval {
		case gdk.KEY_plus, gdk.KEY_equal, gdk.KEY_KP_Add:
			return ActionZoomIn
		case gdk.KEY_minus, gdk.KEY_KP_Subtract:
			return ActionZoomOut
		case gdk.KEY_0, gdk.KEY_KP_0:
			return ActionZoomReset
		}
	}
	return ActionNone
}
