// Package component provides the GTK widgets drawn around the web view.
package component

import (
	"sync"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

const (
	// Animation step size per frame
	progressStep = 0.02
	// ~60fps
	progressIntervalMs = 16
)

// ProgressBar is the slim loading indicator at the top of the page. It
// animates towards the target fraction instead of jumping.
type ProgressBar struct {
	bar *gtk.ProgressBar

	mu             sync.Mutex
	visible        bool
	currentValue   float64
	targetValue    float64
	animationTimer glib.SourceHandle
}

var _ port.ProgressIndicator = (*ProgressBar)(nil)

// NewProgressBar creates a hidden progress bar.
func NewProgressBar() *ProgressBar {
	bar := gtk.NewProgressBar()
	bar.AddCSSClass("osd")
	bar.AddCSSClass("page-progress")
	bar.SetVAlign(gtk.AlignStart)
	bar.SetHAlign(gtk.AlignFill)
	bar.SetHExpand(true)

	// Let clicks pass through to the web view
	bar.SetCanTarget(false)
	bar.SetCanFocus(false)
	bar.SetVisible(false)

	return &ProgressBar{bar: bar}
}

// Widget returns the widget for overlay registration.
func (pb *ProgressBar) Widget() gtk.Widgetter {
	return pb.bar
}

// SetProgress sets the target fraction (0..1).
func (pb *ProgressBar) SetProgress(progress float64) {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	progress = clampFraction(progress)
	if progress < pb.currentValue {
		// New navigation: restart from the new value.
		pb.currentValue = progress
		pb.bar.SetFraction(progress)
	}
	pb.targetValue = progress

	// Large jumps and completion are applied immediately.
	if progress-pb.currentValue > 0.3 || progress >= 1.0 {
		pb.currentValue = progress
		pb.bar.SetFraction(progress)
		return
	}

	if pb.animationTimer == 0 {
		pb.startAnimation()
	}
}

// startAnimation must be called with the lock held.
func (pb *ProgressBar) startAnimation() {
	pb.animationTimer = glib.TimeoutAdd(progressIntervalMs, func() bool {
		pb.mu.Lock()
		defer pb.mu.Unlock()

		if pb.currentValue >= pb.targetValue {
			pb.animationTimer = 0
			return false
		}
		pb.currentValue = min(pb.currentValue+progressStep, pb.targetValue)
		pb.bar.SetFraction(pb.currentValue)

		if pb.currentValue >= pb.targetValue {
			pb.animationTimer = 0
			return false
		}
		return true
	})
}

// Show makes the bar visible.
func (pb *ProgressBar) Show() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	if pb.visible {
		return
	}
	pb.visible = true
	pb.bar.SetVisible(true)
}

// Hide hides the bar and resets it.
func (pb *ProgressBar) Hide() {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	if pb.animationTimer != 0 {
		glib.SourceRemove(pb.animationTimer)
		pb.animationTimer = 0
	}
	pb.currentValue = 0
	pb.targetValue = 0
	pb.bar.SetFraction(0)

	if !pb.visible {
		return
	}
	pb.visible = false
	pb.bar.SetVisible(false)
}

func clampFraction(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
