package input

import (
	"testing"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/stretchr/testify/assert"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		name     string
		keyval   uint
		state    gdk.ModifierType
		expected Action
	}{
		{"alt left goes back", gdk.KEY_Left, gdk.AltMask, ActionBack},
		{"plain left ignored", gdk.KEY_Left, 0, ActionNone},
		{"ctrl alt left ignored", gdk.KEY_Left, gdk.AltMask | gdk.ControlMask, ActionNone},
		{"ctrl plus", gdk.KEY_plus, gdk.ControlMask | gdk.ShiftMask, ActionZoomIn},
		{"ctrl equal", gdk.KEY_equal, gdk.ControlMask, ActionZoomIn},
		{"ctrl minus", gdk.KEY_minus, gdk.ControlMask, ActionZoomOut},
		{"ctrl zero", gdk.KEY_0, gdk.ControlMask, ActionZoomReset},
		{"plain minus typed into page", gdk.KEY_minus, 0, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ActionForKey(tt.keyval, tt.state))
		})
	}
}

func TestNextZoom(t *testing.T) {
	assert.InDelta(t, 1.1, NextZoom(1.0, 1.0, ActionZoomIn), 1e-9)
	assert.InDelta(t, 0.9, NextZoom(1.0, 1.0, ActionZoomOut), 1e-9)
	assert.InDelta(t, 1.0, NextZoom(2.3, 1.0, ActionZoomReset), 1e-9)
	assert.InDelta(t, zoomMax, NextZoom(zoomMax, 1.0, ActionZoomIn), 1e-9)
	assert.InDelta(t, zoomMin, NextZoom(zoomMin, 1.0, ActionZoomOut), 1e-9)
	assert.InDelta(t, 1.3, NextZoom(1.3, 1.0, ActionNone), 1e-9)
}
