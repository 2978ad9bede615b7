package portal

import (
	"context"
	"errors"
	"slices"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/logging"
)

// DeviceAccessor is the part of DevicePortal the presenter needs.
type DeviceAccessor interface {
	Supported() bool
	AccessDevice(ctx context.Context, devices []string) (bool, error)
}

var _ DeviceAccessor = (*DevicePortal)(nil)

// Presenter asks the desktop portal for media devices and the in-window
// prompt for everything else, or for everything when the portal is missing.
type Presenter struct {
	devices   DeviceAccessor
	fallback  port.PermissionDialogPresenter
	scheduler port.Scheduler
}

var _ port.PermissionDialogPresenter = (*Presenter)(nil)

// NewPresenter builds a presenter. devices may be nil.
func NewPresenter(devices DeviceAccessor, fallback port.PermissionDialogPresenter, scheduler port.Scheduler) *Presenter {
	return &Presenter{devices: devices, fallback: fallback, scheduler: scheduler}
}

// ShowPermissionDialog implements port.PermissionDialogPresenter. The
// callback runs on the scheduler's loop.
func (p *Presenter) ShowPermissionDialog(
	ctx context.Context,
	origin string,
	permTypes []entity.PermissionType,
	callback func(result port.PermissionDialogResult),
) {
	log := logging.FromContext(ctx)

	devices, rest := portalDevices(permTypes)
	if len(devices) == 0 || p.devices == nil || !p.devices.Supported() {
		p.showFallback(ctx, origin, permTypes, callback)
		return
	}

	go func() {
		allowed, err := p.devices.AccessDevice(ctx, devices)
		p.scheduler.Post(func() {
			switch {
			case errors.Is(err, context.Canceled):
				callback(port.PermissionDialogResult{})
			case err != nil:
				log.Warn().Err(err).Msg("device portal failed, using in-window prompt")
				p.showFallback(ctx, origin, permTypes, callback)
			case !allowed:
				// The portal remembers its own answer.
				callback(port.PermissionDialogResult{Persistent: true})
			case len(rest) == 0:
				callback(port.PermissionDialogResult{Allowed: true, Persistent: true})
			default:
				p.showFallback(ctx, origin, rest, func(result port.PermissionDialogResult) {
					callback(mergeDeviceGrant(permTypes, rest, result))
				})
			}
		})
	}()
}

func (p *Presenter) showFallback(
	ctx context.Context,
	origin string,
	permTypes []entity.PermissionType,
	callback func(result port.PermissionDialogResult),
) {
	if p.fallback == nil {
		callback(port.PermissionDialogResult{})
		return
	}
	p.fallback.ShowPermissionDialog(ctx, origin, permTypes, callback)
}

// mergeDeviceGrant combines a portal grant for the media devices in
// permTypes with the in-window answer for rest.
func mergeDeviceGrant(permTypes, rest []entity.PermissionType, result port.PermissionDialogResult) port.PermissionDialogResult {
	merged := port.PermissionDialogResult{
		Allowed:    true,
		Persistent: result.Persistent,
		Decisions:  make(map[entity.PermissionType]entity.PermissionDecision, len(permTypes)),
	}
	for _, t := range permTypes {
		if !slices.Contains(rest, t) {
			merged.Decisions[t] = entity.PermissionGranted
			continue
		}
		decision := result.DecisionFor(t)
		merged.Decisions[t] = decision
		if decision != entity.PermissionGranted {
			merged.Allowed = false
		}
	}
	return merged
}
