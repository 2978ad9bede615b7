// Package window provides the application window.
package window

import (
	"context"
	"errors"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/bnema/codeora/internal/logging"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"
)

const (
	defaultWidth  = 420
	defaultHeight = 860

	pageBrowser  = "browser"
	pageFallback = "fallback"
)

// ErrWindowCreationFailed is returned when GTK refuses to create the window.
var ErrWindowCreationFailed = errors.New("failed to create application window")

// MainWindow is a single window holding the page, the fallback screen and
// the overlays drawn above them.
type MainWindow struct {
	window  *gtk.ApplicationWindow
	overlay *gtk.Overlay
	stack   *gtk.Stack

	logger zerolog.Logger
}

var _ port.WindowCloser = (*MainWindow)(nil)

// New creates the window for app.
func New(ctx context.Context, app *gtk.Application, cfg *config.Config) (*MainWindow, error) {
	log := logging.FromContext(ctx)

	win := gtk.NewApplicationWindow(app)
	if win == nil {
		return nil, ErrWindowCreationFailed
	}

	width, height := cfg.App.WindowWidth, cfg.App.WindowHeight
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	win.SetTitle(cfg.App.Title)
	// Matches the icon installed by `codeora desktop install`.
	win.SetIconName(cfg.App.ApplicationID)
	win.SetDefaultSize(width, height)

	stack := gtk.NewStack()
	stack.SetTransitionType(gtk.StackTransitionTypeCrossfade)
	stack.SetHExpand(true)
	stack.SetVExpand(true)

	overlay := gtk.NewOverlay()
	overlay.SetChild(stack)
	win.SetChild(overlay)

	return &MainWindow{
		window:  win,
		overlay: overlay,
		stack:   stack,
		logger:  log.With().Str("component", "main-window").Logger(),
	}, nil
}

// Window returns the GTK window, for dialogs that need a parent.
func (mw *MainWindow) Window() *gtk.Window {
	return &mw.window.Window
}

// SetBrowser installs the web view page.
func (mw *MainWindow) SetBrowser(w gtk.Widgetter) {
	mw.stack.AddNamed(w, pageBrowser)
	mw.stack.SetVisibleChildName(pageBrowser)
}

// SetFallback installs the fallback page without showing it.
func (mw *MainWindow) SetFallback(w gtk.Widgetter) {
	mw.stack.AddNamed(w, pageFallback)
}

// ShowFallback switches to the fallback page.
func (mw *MainWindow) ShowFallback() {
	mw.logger.Debug().Msg("switching to fallback page")
	mw.stack.SetVisibleChildName(pageFallback)
}

// AddOverlay stacks w above the pages.
func (mw *MainWindow) AddOverlay(w gtk.Widgetter) {
	mw.overlay.AddOverlay(w)
}

// AddController attaches an input controller to the whole window.
func (mw *MainWindow) AddController(c gtk.EventControllerer) {
	mw.window.AddController(c)
}

// Show presents the window.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// CloseWindow closes the window, which ends the application.
func (mw *MainWindow) CloseWindow(_ context.Context) {
	mw.logger.Info().Msg("closing window")
	mw.window.Close()
}
