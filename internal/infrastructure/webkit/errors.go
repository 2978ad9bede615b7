package webkit

import (
	"errors"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/core/gerror"
)

// ErrObserversInstalled is returned when SetObservers is called twice.
var ErrObserversInstalled = errors.New("webkit: observers already installed")

const cancelledMessage = "Load request cancelled"

// IsCancelledError reports whether a load error only means the navigation
// was superseded.
func IsCancelledError(err error) bool {
	if err == nil {
		return false
	}
	if err.Error() == cancelledMessage {
		return true
	}

	var gErr *gerror.GError
	if errors.As(err, &gErr) {
		return gErr.ErrorCode() == int(webkit.NetworkErrorCancelled)
	}
	return false
}

func errorCode(err error) int {
	var gErr *gerror.GError
	if errors.As(err, &gErr) {
		return gErr.ErrorCode()
	}
	return 0
}

var (
	ErrWebViewNotInitialized = errors.New("webkit: web view not initialized")
	ErrBridgeRegistration    = errors.New("webkit: failed to register script message handler")
	ErrInvalidURL            = errors.New("webkit: invalid URL")
)
