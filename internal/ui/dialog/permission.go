// Package dialog provides UI dialog implementations for the application layer.
package dialog

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/logging"
)

type permissionPopup interface {
	Show(ctx context.Context, heading, body string, callback func(allowed, persistent bool))
}

type permissionDialogRequest struct {
	ctx       context.Context
	origin    string
	permTypes []entity.PermissionType
	callback  func(result port.PermissionDialogResult)
}

// PermissionDialog implements port.PermissionDialogPresenter with the
// in-window popup. Requests arriving while the popup is up are queued.
type PermissionDialog struct {
	popup permissionPopup

	mu     sync.Mutex
	active bool
	queue  []permissionDialogRequest
}

// NewPermissionDialog creates a presenter around popup. The popup is reused
// for each request.
func NewPermissionDialog(popup permissionPopup) *PermissionDialog {
	return &PermissionDialog{popup: popup}
}

// ShowPermissionDialog asks the user about permTypes for origin.
func (d *PermissionDialog) ShowPermissionDialog(
	ctx context.Context,
	origin string,
	permTypes []entity.PermissionType,
	callback func(result port.PermissionDialogResult),
) {
	req := permissionDialogRequest{ctx: ctx, origin: origin, permTypes: permTypes, callback: callback}

	d.mu.Lock()
	if d.active {
		d.queue = append(d.queue, req)
		d.mu.Unlock()
		return
	}
	d.active = true
	d.mu.Unlock()

	d.showRequest(req)
}

func (d *PermissionDialog) showRequest(req permissionDialogRequest) {
	log := logging.FromContext(req.ctx)

	if d.popup == nil {
		log.Error().Msg("permission popup not available")
		req.callback(port.PermissionDialogResult{})
		d.showNext()
		return
	}

	log.Debug().
		Str("origin", req.origin).
		Strs("types", entity.PermissionTypesToStrings(req.permTypes)).
		Msg("showing permission popup")

	d.popup.Show(req.ctx, Heading(req.permTypes), Body(req.origin, req.permTypes), func(allowed, persistent bool) {
		log.Debug().Bool("allowed", allowed).Bool("persistent", persistent).Msg("permission popup response")
		req.callback(port.PermissionDialogResult{Allowed: allowed, Persistent: persistent})
		d.showNext()
	})
}

func (d *PermissionDialog) showNext() {
	d.mu.Lock()
	if len(d.queue) == 0 {
		d.active = false
		d.mu.Unlock()
		return
	}
	next := d.queue[0]
	d.queue = d.queue[1:]
	d.mu.Unlock()

	d.showRequest(next)
}

// capabilityNames maps capability types to the noun used in prompts, in
// prompt order.
var capabilityNames = []struct {
	t    entity.PermissionType
	noun string
}{
	{entity.PermissionTypeMicrophone, "Microphone"},
	{entity.PermissionTypeCamera, "Camera"},
	{entity.PermissionTypeDisplay, "Screen Sharing"},
	{entity.PermissionTypeStorageRead, "File Access"},
	{entity.PermissionTypeStorageWrite, "Downloads"},
}

func nouns(permTypes []entity.PermissionType) []string {
	var out []string
	for _, c := range capabilityNames {
		for _, t := range permTypes {
			if t == c.t {
				out = append(out, c.noun)
				break
			}
		}
	}
	return out
}

// joinNouns renders "A", "A and B" or "A, B, and C".
func joinNouns(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// Heading returns the popup title for permTypes.
func Heading(permTypes []entity.PermissionType) string {
	n := nouns(permTypes)
	switch len(n) {
	case 0:
		return "Allow Permission?"
	case 1:
		if n[0] == "Screen Sharing" {
			return "Allow Screen Sharing?"
		}
		return "Allow " + n[0] + " Access?"
	default:
		return "Allow " + joinNouns(n) + "?"
	}
}

// Body returns the popup text for origin asking for permTypes.
func Body(origin string, permTypes []entity.PermissionType) string {
	n := nouns(permTypes)
	what := "your device"
	if len(n) > 0 {
		what = strings.ToLower(joinNouns(n))
	}
	if origin == "" {
		origin = "This page"
	}
	return origin + " wants to use " + what + "."
}
