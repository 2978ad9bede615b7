// Package theme holds the stylesheet for the shell widgets.
package theme

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Apply installs the stylesheet on the default display.
func Apply() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}
	provider := gtk.NewCSSProvider()
	provider.LoadFromString(Stylesheet)
	gtk.StyleContextAddProviderForDisplay(display, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
}

// Stylesheet uses em units so it follows the desktop text scale.
const Stylesheet = `
@define-color codeora_surface #1e1e22;
@define-color codeora_border #3a3a40;
@define-color codeora_text #f2f2f2;
@define-color codeora_muted #a8a8b0;
@define-color codeora_accent #4f8cff;
@define-color codeora_success #3fb950;
@define-color codeora_warning #d29922;
@define-color codeora_error #f85149;

/* ===== Progress ===== */

progressbar.page-progress trough,
progressbar.page-progress progress {
	min-height: 0.1875em;
	border-radius: 0;
}

progressbar.page-progress progress {
	background-color: @codeora_accent;
}

/* ===== Toast ===== */

.toast {
	background-color: alpha(@codeora_surface, 0.92);
	color: @codeora_text;
	border: 0.0625em solid @codeora_border;
	border-radius: 0.375em;
	padding: 0.5em 0.875em;
	margin-bottom: 2em;
	font-size: 0.875em;
}

.toast-info { border-left: 0.25em solid @codeora_accent; }
.toast-success { border-left: 0.25em solid @codeora_success; }
.toast-warning { border-left: 0.25em solid @codeora_warning; }
.toast-error { border-left: 0.25em solid @codeora_error; }

/* ===== Permission popup ===== */

.permission-popup-container {
	background-color: @codeora_surface;
	border: 0.0625em solid @codeora_border;
	border-radius: 0.375em;
	padding: 0.75em 1em;
	min-width: 18em;
}

.permission-popup-heading {
	font-size: 0.9375em;
	font-weight: 600;
	color: @codeora_text;
}

.permission-popup-body {
	font-size: 0.8125em;
	color: @codeora_muted;
}

.permission-popup-btn-row {
	border-top: 0.0625em solid @codeora_border;
	padding-top: 0.5em;
}

.permission-popup-btn {
	background-image: none;
	border: 0.0625em solid @codeora_border;
	border-radius: 0.1875em;
	padding: 0.375em 0.75em;
	font-size: 0.8125em;
}

.permission-popup-btn-allow {
	background-color: alpha(@codeora_accent, 0.15);
	color: @codeora_accent;
	border-color: alpha(@codeora_accent, 0.3);
}

.permission-popup-btn-deny {
	color: @codeora_muted;
}

/* ===== Fallback ===== */

.fallback-screen {
	padding: 2em;
}

.fallback-heading {
	font-size: 1.25em;
	font-weight: 700;
}

.fallback-body,
.fallback-detail {
	color: @codeora_muted;
}
`
