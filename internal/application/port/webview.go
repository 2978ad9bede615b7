// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/codeora/internal/domain/entity"
)

// ErrSurfaceDestroyed is returned by BrowserSurface methods once the view was
// torn down (for instance after the fallback screen replaced it).
var ErrSurfaceDestroyed = errors.New("browser surface destroyed")

// LoadRequest identifies the resource a navigation event refers to.
type LoadRequest struct {
	URI string
	// MainFrame is true for the top-level document.
	MainFrame bool
}

// LoadError is the engine's description of a failed load.
type LoadError struct {
	Domain  string
	Code    int
	Message string
	// Cancelled is set when the load was superseded by another navigation.
	Cancelled bool
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s (%s:%d)", e.Message, e.Domain, e.Code)
}

// HTTPResponse is the status line of a response the server rejected.
type HTTPResponse struct {
	StatusCode int
	Reason     string
}

// BrowserSurface is the embedded web view as seen by the application layer.
type BrowserSurface interface {
	// LoadURI starts a top-level navigation.
	LoadURI(ctx context.Context, uri string) error
	CanGoBack() bool
	GoBack(ctx context.Context) error
	// URI returns the currently committed address.
	URI() string
}

// NavigationObserver receives page-level load events. The host registers
// exactly one.
type NavigationObserver interface {
	OnLoadStarted(ctx context.Context, uri string)
	OnLoadFinished(ctx context.Context, uri string)
	OnLoadError(ctx context.Context, req LoadRequest, err LoadError)
	OnHTTPError(ctx context.Context, req LoadRequest, resp HTTPResponse)
}

// ChromeObserver receives browser-chrome events: progress, permission and
// file chooser requests. The host registers exactly one.
type ChromeObserver interface {
	OnProgressChanged(ctx context.Context, percent int)
	OnPermissionRequested(ctx context.Context, req PermissionRequest)
	OnFileChooserRequested(ctx context.Context, req FileChooserRequest)
}

// FileChooserRequest is the page asking for a file through <input type=file>.
type FileChooserRequest struct {
	// MIMETypes lists accepted types; empty means any.
	MIMETypes []string
	// Resolve hands the selection back; nil or empty means cancelled.
	Resolve func(uris []string)
}

// ProgressIndicator is the thin bar drawn over the page while it loads.
type ProgressIndicator interface {
	Show()
	Hide()
	// SetProgress takes a fraction between 0 and 1.
	SetProgress(fraction float64)
}

// FallbackPresenter replaces the browser surface with the local error
// screen. Called at most once per session.
type FallbackPresenter interface {
	ShowFallback(ctx context.Context, reason entity.FailureReason)
}

// FilePicker opens the desktop file chooser.
type FilePicker interface {
	// PickFile calls done once with the chosen URIs, or nil when cancelled.
	PickFile(ctx context.Context, mimeTypes []string, done func(uris []string))
}

// WindowCloser closes the application window.
type WindowCloser interface {
	CloseWindow(ctx context.Context)
}

// NetworkMonitor reports whether the desktop believes a network is usable.
type NetworkMonitor interface {
	NetworkAvailable(ctx context.Context) bool
}
