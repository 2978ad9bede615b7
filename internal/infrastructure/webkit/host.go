// Package webkit hosts the WebKitGTK browser surface and translates its
// signals into navigation and chrome events.
package webkit

import (
	"context"
	"net/http"
	"sync"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/url"
	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/bnema/codeora/internal/infrastructure/webkit/bridge"
	"github.com/bnema/codeora/internal/logging"
	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

const loadErrorDomain = "webkit"

// NavigationPolicy decides whether a main-frame navigation is followed.
type NavigationPolicy interface {
	Allow(ctx context.Context, uri string) bool
}

// Host owns the web view. All methods must be called on the GTK main loop.
type Host struct {
	ctx    context.Context
	view   *webkit.WebView
	router *bridge.MessageRouter

	allowSecondaryWindows bool

	mu        sync.Mutex
	nav       port.NavigationObserver
	chrome    port.ChromeObserver
	policy    NavigationPolicy
	destroyed bool

	// per-navigation state
	loadFailed   bool
	lastProgress int
}

var _ port.BrowserSurface = (*Host)(nil)

// NewHost creates and configures the web view. Observers must be installed
// with SetObservers before the first load.
func NewHost(ctx context.Context, cfg *config.Config, router *bridge.MessageRouter) (*Host, error) {
	log := logging.FromContext(ctx)

	view := webkit.NewWebView()
	if view == nil {
		return nil, ErrWebViewNotInitialized
	}

	h := &Host{
		ctx:                   logging.WithComponent(ctx, "webview"),
		view:                  view,
		router:                router,
		allowSecondaryWindows: cfg.Browser.AllowSecondaryWindows,
		lastProgress:          -1,
	}

	applySettings(h.ctx, view, cfg)
	if err := h.installBridge(cfg.App.BridgeName); err != nil {
		return nil, err
	}
	h.connectSignals()

	log.Debug().Str("bridge", cfg.App.BridgeName).Msg("webview created")
	return h, nil
}

// Widget returns the view for packing into a window.
func (h *Host) Widget() gtk.Widgetter {
	return h.view
}

// View exposes the underlying web view for input controllers.
func (h *Host) View() *webkit.WebView {
	return h.view
}

// SetObservers installs the navigation and chrome observers. It succeeds
// only once.
func (h *Host) SetObservers(nav port.NavigationObserver, chrome port.ChromeObserver) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.nav != nil || h.chrome != nil {
		return ErrObserversInstalled
	}
	h.nav = nav
	h.chrome = chrome
	return nil
}

// SetNavigationPolicy filters main-frame navigations. nil follows all.
func (h *Host) SetNavigationPolicy(policy NavigationPolicy) {
	h.mu.Lock()
	h.policy = policy
	h.mu.Unlock()
}

// LoadURI starts a top-level navigation.
func (h *Host) LoadURI(ctx context.Context, uri string) error {
	if h.isDestroyed() {
		return port.ErrSurfaceDestroyed
	}
	if uri == "" {
		return ErrInvalidURL
	}
	logging.FromContext(ctx).Debug().Str("url", uri).Msg("loading uri")
	h.view.LoadURI(uri)
	return nil
}

// CanGoBack reports whether the view has history to go back to.
func (h *Host) CanGoBack() bool {
	if h.isDestroyed() {
		return false
	}
	return h.view.CanGoBack()
}

// GoBack navigates back in history.
func (h *Host) GoBack(_ context.Context) error {
	if h.isDestroyed() {
		return port.ErrSurfaceDestroyed
	}
	h.view.GoBack()
	return nil
}

// URI returns the committed address.
func (h *Host) URI() string {
	if h.isDestroyed() {
		return ""
	}
	return h.view.URI()
}

// Destroy stops the view once the fallback screen replaced it.
func (h *Host) Destroy() {
	h.mu.Lock()
	if h.destroyed {
		h.mu.Unlock()
		return
	}
	h.destroyed = true
	h.mu.Unlock()

	h.view.StopLoading()
}

func (h *Host) isDestroyed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.destroyed
}

func (h *Host) observers() (port.NavigationObserver, port.ChromeObserver, NavigationPolicy) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.nav, h.chrome, h.policy
}

func (h *Host) installBridge(bridgeName string) error {
	ucm := h.view.UserContentManager()
	if ucm == nil {
		return ErrWebViewNotInitialized
	}

	ucm.AddScript(webkit.NewUserScript(
		bridge.Script(bridgeName),
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))

	if !ucm.RegisterScriptMessageHandler(bridge.MessageHandlerName, "") {
		return ErrBridgeRegistration
	}

	ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		if value == nil || h.router == nil {
			return
		}
		// Errors are logged by the router.
		_ = h.router.Dispatch(value.ToString())
	})
	return nil
}

func (h *Host) connectSignals() {
	h.view.ConnectLoadChanged(h.onLoadChanged)
	h.view.ConnectLoadFailed(h.onLoadFailed)
	h.view.Connect("notify::estimated-load-progress", h.onProgress)
	h.view.ConnectPermissionRequest(h.onPermissionRequest)
	h.view.ConnectRunFileChooser(h.onRunFileChooser)
	h.view.ConnectDecidePolicy(h.onDecidePolicy)
}

func (h *Host) onLoadChanged(event webkit.LoadEvent) {
	nav, _, _ := h.observers()
	if nav == nil || h.isDestroyed() {
		return
	}
	uri := h.view.URI()

	switch event {
	case webkit.LoadStarted:
		h.mu.Lock()
		h.loadFailed = false
		h.lastProgress = -1
		h.mu.Unlock()
		nav.OnLoadStarted(h.ctx, uri)

	case webkit.LoadCommitted:
		if status, ok := h.mainResourceStatus(); ok && status >= http.StatusBadRequest {
			h.mu.Lock()
			h.loadFailed = true
			h.mu.Unlock()
			nav.OnHTTPError(h.ctx,
				port.LoadRequest{URI: uri, MainFrame: true},
				port.HTTPResponse{StatusCode: status, Reason: http.StatusText(status)},
			)
		}

	case webkit.LoadFinished:
		h.mu.Lock()
		failed := h.loadFailed
		h.mu.Unlock()
		if !failed {
			nav.OnLoadFinished(h.ctx, uri)
		}
	}
}

func (h *Host) mainResourceStatus() (int, bool) {
	resource := h.view.MainResource()
	if resource == nil {
		return 0, false
	}
	response := resource.Response()
	if response == nil {
		return 0, false
	}
	return int(response.StatusCode()), true
}

func (h *Host) onLoadFailed(_ webkit.LoadEvent, failingURI string, err error) bool {
	log := logging.FromContext(h.ctx)

	if IsCancelledError(err) {
		log.Debug().Str("url", failingURI).Msg("load cancelled by a newer navigation")
		return false
	}

	h.mu.Lock()
	h.loadFailed = true
	h.mu.Unlock()

	nav, _, _ := h.observers()
	if nav == nil {
		return false
	}

	msg := ""
	if err != nil {
		msg = err.Error()
	}
	nav.OnLoadError(h.ctx,
		port.LoadRequest{URI: failingURI, MainFrame: true},
		port.LoadError{Domain: loadErrorDomain, Code: errorCode(err), Message: msg},
	)
	// The fallback screen replaces the engine's error page.
	return true
}

func (h *Host) onProgress() {
	_, chrome, _ := h.observers()
	if chrome == nil || h.isDestroyed() {
		return
	}

	percent := int(h.view.EstimatedLoadProgress()*100 + 0.5)
	h.mu.Lock()
	if percent == h.lastProgress {
		h.mu.Unlock()
		return
	}
	h.lastProgress = percent
	h.mu.Unlock()

	chrome.OnProgressChanged(h.ctx, percent)
}

func (h *Host) onPermissionRequest(req webkit.PermissionRequester) bool {
	_, chrome, _ := h.observers()
	if chrome == nil {
		req.Deny()
		return true
	}

	var once sync.Once
	chrome.OnPermissionRequested(h.ctx, port.PermissionRequest{
		Origin: url.Origin(h.view.URI()),
		Types:  permissionTypes(req),
		Allow:  func() { once.Do(req.Allow) },
		Deny:   func() { once.Do(req.Deny) },
	})
	return true
}

func (h *Host) onRunFileChooser(req *webkit.FileChooserRequest) bool {
	_, chrome, _ := h.observers()
	if chrome == nil {
		req.Cancel()
		return true
	}

	var once sync.Once
	chrome.OnFileChooserRequested(h.ctx, port.FileChooserRequest{
		MIMETypes: req.MIMETypes(),
		Resolve: func(uris []string) {
			once.Do(func() { h.resolveFileChooser(req, uris) })
		},
	})
	return true
}

func (h *Host) resolveFileChooser(req *webkit.FileChooserRequest, uris []string) {
	paths := localPaths(h.ctx, uris)
	if len(paths) == 0 {
		req.Cancel()
		return
	}
	req.SelectFiles(paths)
}

// localPaths keeps the file:// selections. WebKit only accepts local
// paths, so anything else (GVfs sftp:// for instance) is dropped.
func localPaths(ctx context.Context, uris []string) []string {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		path, ok := url.FileURIToPath(uri)
		if !ok {
			logging.FromContext(ctx).Debug().Str("uri", uri).Msg("dropping non-local file chooser selection")
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

func (h *Host) onDecidePolicy(decision webkit.PolicyDecisioner, decisionType webkit.PolicyDecisionType) bool {
	navDecision, ok := decision.(*webkit.NavigationPolicyDecision)
	if !ok {
		return false
	}
	action := navDecision.NavigationAction()
	if action == nil || action.Request() == nil {
		return false
	}
	uri := action.Request().URI()

	switch decisionType {
	case webkit.PolicyDecisionTypeNavigationAction:
		_, _, policy := h.observers()
		if policy != nil && !policy.Allow(h.ctx, uri) {
			navDecision.Ignore()
			return true
		}
		return false

	case webkit.PolicyDecisionTypeNewWindowAction:
		// Secondary windows open in the same surface.
		navDecision.Ignore()
		if h.allowSecondaryWindows && uri != "" {
			if err := h.LoadURI(h.ctx, uri); err != nil {
				logging.FromContext(h.ctx).Debug().Err(err).Msg("new window load skipped")
			}
		}
		return true
	}
	return false
}
