package input

import "math"

const (
	zoomStep = 0.1
	zoomMin  = 0.25
	zoomMax  = 5.0
)

// NextZoom returns the zoom level after action, starting from current.
// Reset returns to base.
func NextZoom(current, base float64, action Action) float64 {
	var next float64
	switch action {
	case ActionZoomIn:
		next = current + zoomStep
	case ActionZoomOut:
		next = current - zoomStep
	case ActionZoomReset:
		next = base
	default:
		return current
	}
	// Keep one decimal so repeated steps do not drift.
	next = math.Round(next*10) / 10
	return math.Min(zoomMax, math.Max(zoomMin, next))
}
