// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"slices"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/logging"
)

// HandlePermissionUseCase answers permission requests coming from the page:
//   - device enumeration: auto-allow
//   - microphone/camera: allow when the gate already holds a grant, otherwise
//     ask the gate again (when reactive prompting is on) and answer with
//     its outcome
//   - anything else: deny
type HandlePermissionUseCase struct {
	gate     *PermissionGate
	reactive bool
}

// NewHandlePermissionUseCase creates a new permission handling use case.
// reactive enables the re-prompt when the page asks for a capability the
// user has not granted.
func NewHandlePermissionUseCase(gate *PermissionGate, reactive bool) *HandlePermissionUseCase {
	return &HandlePermissionUseCase{gate: gate, reactive: reactive}
}

// HandlePermissionRequest resolves req by calling exactly one of Allow or
// Deny, possibly later if a dialog has to be shown.
func (uc *HandlePermissionUseCase) HandlePermissionRequest(ctx context.Context, req port.PermissionRequest) {
	log := logging.FromContext(ctx).With().
		Str("component", "permission").
		Str("origin", req.Origin).
		Strs("types", entity.PermissionTypesToStrings(req.Types)).
		Logger()

	if len(req.Types) == 0 {
		log.Warn().Msg("permission request with empty types, denying")
		req.Deny()
		return
	}

	if !slices.ContainsFunc(req.Types, func(t entity.PermissionType) bool { return !entity.IsAutoAllow(t) }) {
		log.Debug().Msg("auto-allowing permission request")
		req.Allow()
		return
	}

	var media []entity.PermissionType
	for _, t := range req.Types {
		switch {
		case entity.IsAutoAllow(t):
		case entity.IsMediaCapture(t):
			media = append(media, t)
		default:
			log.Info().Str("type", string(t)).Msg("unsupported permission type, denying")
			req.Deny()
			return
		}
	}

	if uc.gate.Granted(ctx, media...) {
		log.Debug().Msg("permission already granted")
		req.Allow()
		return
	}

	if !uc.reactive {
		log.Debug().Msg("permission not granted and reactive prompt disabled, denying")
		req.Deny()
		return
	}

	uc.gate.RequestPermissions(ctx, media, func(state entity.PermissionState) {
		if state.Granted(media...) {
			log.Debug().Msg("permission granted after prompt")
			req.Allow()
			return
		}
		log.Debug().Msg("permission refused after prompt")
		req.Deny()
	})
}
