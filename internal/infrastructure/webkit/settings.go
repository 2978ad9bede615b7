package webkit

import (
	"context"
	"strings"

	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/bnema/codeora/internal/logging"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
)

// applySettings configures a view before its first load.
func applySettings(ctx context.Context, view *webkit.WebView, cfg *config.Config) {
	log := logging.FromContext(ctx)
	settings := view.Settings()

	applyJavaScriptSettings(settings, cfg)
	applyStorageSettings(settings)
	applyMediaSettings(settings)
	applyDebugSettings(settings, cfg)

	ua := userAgent(settings.UserAgent(), cfg.App.UserAgentSuffix)
	settings.SetUserAgent(ua)

	applyCacheModel(cfg.Browser.CachePolicy)

	// Keyboard zoom only; the initial level fits the page to the window.
	settings.SetZoomTextOnly(false)
	view.SetZoomLevel(cfg.Browser.DefaultZoom)

	log.Debug().
		Str("user_agent", ua).
		Str("cache_policy", string(cfg.Browser.CachePolicy)).
		Float64("zoom", cfg.Browser.DefaultZoom).
		Msg("webview settings applied")
}

func applyJavaScriptSettings(settings *webkit.Settings, cfg *config.Config) {
	settings.SetEnableJavascript(true)
	settings.SetJavascriptCanOpenWindowsAutomatically(cfg.Browser.AllowSecondaryWindows)
}

func applyStorageSettings(settings *webkit.Settings) {
	settings.SetEnableHTML5LocalStorage(true)
	settings.SetEnableHTML5Database(true)
}

func applyMediaSettings(settings *webkit.Settings) {
	settings.SetEnableMediaStream(true)
	settings.SetEnableWebrtc(true)
	settings.SetMediaPlaybackRequiresUserGesture(false)
}

func applyDebugSettings(settings *webkit.Settings, cfg *config.Config) {
	settings.SetEnableDeveloperExtras(cfg.Browser.EnableDevTools)
}

// applyCacheModel maps the cache policy onto the process-wide cache model.
func applyCacheModel(policy config.CachePolicy) {
	webContext := webkit.WebContextGetDefault()
	if webContext == nil {
		return
	}
	webContext.SetCacheModel(cacheModel(policy))
}

func cacheModel(policy config.CachePolicy) webkit.CacheModel {
	if policy == config.CachePolicyNoCache {
		return webkit.CacheModelDocumentViewer
	}
	return webkit.CacheModelWebBrowser
}

// userAgent appends suffix to the engine's default user agent.
func userAgent(defaultUA, suffix string) string {
	suffix = strings.TrimSpace(suffix)
	defaultUA = strings.TrimSpace(defaultUA)
	switch {
	case suffix == "":
		return defaultUA
	case defaultUA == "":
		return suffix
	default:
		return defaultUA + " " + suffix
	}
}
