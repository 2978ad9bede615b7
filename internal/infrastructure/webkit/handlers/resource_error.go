package handlers

import (
	"context"
	"encoding/json"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/infrastructure/webkit/bridge"
	"github.com/bnema/codeora/internal/logging"
)

// resourceErrorDomain marks load errors reported by the page script rather
// than the engine.
const resourceErrorDomain = "page"

type resourceErrorRequest struct {
	URL string `json:"url"`
	Tag string `json:"tag"`
}

// NewResourceErrorHandler forwards element load failures as sub-resource
// errors. They are never main-frame.
func NewResourceErrorHandler(nav port.NavigationObserver) bridge.MessageHandler {
	return bridge.MessageHandlerFunc(func(ctx context.Context, payload json.RawMessage) error {
		var req resourceErrorRequest
		if err := json.Unmarshal(payload, &req); err != nil || req.URL == "" {
			logging.FromContext(ctx).Debug().Err(err).Msg("ignoring malformed resource_error payload")
			return nil
		}

		msg := "failed to load resource"
		if req.Tag != "" {
			msg = "failed to load <" + req.Tag + ">"
		}
		nav.OnLoadError(ctx,
			port.LoadRequest{URI: req.URL, MainFrame: false},
			port.LoadError{Domain: resourceErrorDomain, Message: msg},
		)
		return nil
	})
}
