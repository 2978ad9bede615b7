package port

import (
	"context"

	"github.com/bnema/codeora/internal/domain/entity"
)

// PermissionDialogResult represents the user's response from a permission dialog.
type PermissionDialogResult struct {
	// Allowed is true if the user granted every requested type.
	Allowed bool

	// Persistent is true when the decision should be remembered across
	// launches.
	Persistent bool

	// Decisions overrides Allowed per type when a request was answered
	// by more than one prompt.
	Decisions map[entity.PermissionType]entity.PermissionDecision
}

// DecisionFor returns the answer for t.
func (r PermissionDialogResult) DecisionFor(t entity.PermissionType) entity.PermissionDecision {
	if d, ok := r.Decisions[t]; ok {
		return d
	}
	if r.Allowed {
		return entity.PermissionGranted
	}
	return entity.PermissionDenied
}

// PermissionDialogPresenter shows the OS (or in-window) prompt for a set of
// capabilities. Implementations call callback exactly once, on the UI loop.
type PermissionDialogPresenter interface {
	ShowPermissionDialog(
		ctx context.Context,
		origin string,
		permTypes []entity.PermissionType,
		callback func(result PermissionDialogResult),
	)
}

// PermissionRequest is a page asking for capabilities, typically through
// getUserMedia. Exactly one of Allow or Deny must be called.
type PermissionRequest struct {
	Origin string
	Types  []entity.PermissionType
	Allow  func()
	Deny   func()
}
