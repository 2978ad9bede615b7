package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/logging"
)

// DefaultWatchdogTimeout is how long the progress indicator may stay up
// after a navigation starts.
const DefaultWatchdogTimeout = 4 * time.Second

// SessionSnapshot is a read-only copy of the session state.
type SessionSnapshot struct {
	ID               entity.SessionID
	State            entity.LoadState
	Progress         int
	IndicatorVisible bool
	Failure          entity.FailureReason
	URL              string
}

// LifecycleDeps groups the collaborators of the LifecycleController.
type LifecycleDeps struct {
	Indicator   port.ProgressIndicator
	Fallback    port.FallbackPresenter
	Picker      port.FilePicker
	Scheduler   port.Scheduler
	Permissions *HandlePermissionUseCase
}

// LifecycleController drives the session through Idle, Loading, Loaded and
// Failed from the events the browser host reports. It is both the
// navigation and the chrome observer of the surface.
type LifecycleController struct {
	deps            LifecycleDeps
	watchdogTimeout time.Duration

	mu          sync.Mutex
	session     *entity.Session
	watchdog    port.Timer
	watchdogGen uint64
}

var (
	_ port.NavigationObserver = (*LifecycleController)(nil)
	_ port.ChromeObserver     = (*LifecycleController)(nil)
)

// NewLifecycleController wraps session. A non-positive watchdogTimeout
// uses DefaultWatchdogTimeout.
func NewLifecycleController(session *entity.Session, deps LifecycleDeps, watchdogTimeout time.Duration) *LifecycleController {
	if watchdogTimeout <= 0 {
		watchdogTimeout = DefaultWatchdogTimeout
	}
	return &LifecycleController{
		deps:            deps,
		watchdogTimeout: watchdogTimeout,
		session:         session,
	}
}

// Snapshot returns the current session state.
func (c *LifecycleController) Snapshot() SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return SessionSnapshot{
		ID:               c.session.ID,
		State:            c.session.State(),
		Progress:         c.session.Progress(),
		IndicatorVisible: c.session.IndicatorVisible(),
		Failure:          c.session.Failure(),
		URL:              c.session.CurrentURL(),
	}
}

func (c *LifecycleController) logger(ctx context.Context) *zerolog.Logger {
	l := logging.FromContext(ctx).With().
		Str("component", "lifecycle").
		Str("session_id", string(c.session.ID)).
		Logger()
	return &l
}

// OnLoadStarted resets progress, shows the indicator and (re)arms the
// watchdog.
func (c *LifecycleController) OnLoadStarted(ctx context.Context, uri string) {
	log := c.logger(ctx)

	c.mu.Lock()
	if err := c.session.StartNavigation(uri); err != nil {
		c.mu.Unlock()
		log.Debug().Err(err).Str("url", uri).Msg("ignoring load start")
		return
	}
	c.armWatchdogLocked(ctx)
	c.mu.Unlock()

	log.Debug().Str("url", uri).Msg("load started")
	c.deps.Indicator.SetProgress(0)
	c.deps.Indicator.Show()
}

// OnProgressChanged records percent and hides the indicator at 100.
func (c *LifecycleController) OnProgressChanged(ctx context.Context, percent int) {
	c.mu.Lock()
	if c.session.IsFailed() {
		c.mu.Unlock()
		return
	}
	hide := c.session.UpdateProgress(percent)
	progress := c.session.Progress()
	if progress == 100 {
		c.stopWatchdogLocked()
	}
	c.mu.Unlock()

	c.deps.Indicator.SetProgress(float64(progress) / 100)
	if hide {
		c.logger(ctx).Debug().Msg("load progress complete, hiding indicator")
		c.deps.Indicator.Hide()
	}
}

// OnLoadFinished moves Loading to Loaded.
func (c *LifecycleController) OnLoadFinished(ctx context.Context, uri string) {
	c.mu.Lock()
	if !c.session.FinishNavigation() {
		c.mu.Unlock()
		return
	}
	c.stopWatchdogLocked()
	hide := c.session.HideIndicator()
	c.mu.Unlock()

	c.logger(ctx).Info().Str("url", uri).Msg("page loaded")
	if hide {
		c.deps.Indicator.Hide()
	}
}

// OnLoadError fails the session for main-frame errors. Sub-resource errors
// and cancelled loads are only logged.
func (c *LifecycleController) OnLoadError(ctx context.Context, req port.LoadRequest, loadErr port.LoadError) {
	log := c.logger(ctx)

	if loadErr.Cancelled {
		log.Debug().Str("url", req.URI).Msg("load cancelled by a newer navigation")
		return
	}
	if !req.MainFrame {
		log.Warn().Str("url", req.URI).Err(loadErr).Msg("sub-resource failed to load")
		return
	}

	log.Error().Str("url", req.URI).Err(loadErr).Msg("main document failed to load")
	c.Fail(ctx, entity.FailureMainFrameLoad)
}

// OnHTTPError fails the session when the main document got an error status.
func (c *LifecycleController) OnHTTPError(ctx context.Context, req port.LoadRequest, resp port.HTTPResponse) {
	log := c.logger(ctx)

	if !req.MainFrame {
		log.Warn().Str("url", req.URI).Int("status", resp.StatusCode).Msg("sub-resource returned an error status")
		return
	}

	log.Error().Str("url", req.URI).Int("status", resp.StatusCode).Str("reason", resp.Reason).
		Msg("main document returned an error status")
	c.Fail(ctx, entity.FailureHTTPStatus)
}

// Fail moves the session to Failed and shows the fallback screen. Only the
// first call has any effect.
func (c *LifecycleController) Fail(ctx context.Context, reason entity.FailureReason) {
	c.mu.Lock()
	wasVisible := c.session.IndicatorVisible()
	if !c.session.Fail(reason) {
		c.mu.Unlock()
		c.logger(ctx).Debug().Str("reason", string(reason)).Msg("session already failed")
		return
	}
	c.stopWatchdogLocked()
	chooser := c.session.ReplaceFileChooser(nil)
	c.mu.Unlock()

	c.logger(ctx).Warn().Str("reason", string(reason)).Msg("switching to fallback screen")
	if wasVisible {
		c.deps.Indicator.Hide()
	}
	chooser.Cancel()
	c.deps.Fallback.ShowFallback(ctx, reason)
}

// OnPermissionRequested forwards page permission requests to the
// permission use case. A failed session denies everything.
func (c *LifecycleController) OnPermissionRequested(ctx context.Context, req port.PermissionRequest) {
	c.mu.Lock()
	failed := c.session.IsFailed()
	c.mu.Unlock()

	if failed || c.deps.Permissions == nil {
		req.Deny()
		return
	}
	c.deps.Permissions.HandlePermissionRequest(ctx, req)
}

// OnFileChooserRequested resolves any pending chooser with an empty result,
// stores the new one and opens the picker.
func (c *LifecycleController) OnFileChooserRequested(ctx context.Context, req port.FileChooserRequest) {
	log := c.logger(ctx)

	c.mu.Lock()
	previous := c.session.ReplaceFileChooser(nil)
	c.mu.Unlock()

	if previous.Cancel() {
		log.Debug().Str("chooser_id", previous.ID).Msg("cancelled stale file chooser")
	}

	pending := entity.NewPendingFileChooser(req.Resolve)

	c.mu.Lock()
	if c.session.IsFailed() {
		c.mu.Unlock()
		pending.Cancel()
		return
	}
	c.session.ReplaceFileChooser(pending)
	c.mu.Unlock()

	log.Debug().Str("chooser_id", pending.ID).Strs("mime_types", req.MIMETypes).Msg("opening file picker")
	c.deps.Picker.PickFile(ctx, req.MIMETypes, func(uris []string) {
		c.resolveFileChooser(ctx, pending.ID, uris)
	})
}

func (c *LifecycleController) resolveFileChooser(ctx context.Context, id string, uris []string) {
	c.mu.Lock()
	pending := c.session.TakeFileChooser(id)
	c.mu.Unlock()

	if pending == nil {
		c.logger(ctx).Debug().Str("chooser_id", id).Msg("file picker result for a chooser that is no longer pending")
		return
	}

	if len(uris) > 1 {
		uris = uris[:1]
	}
	pending.Resolve(uris)
}

func (c *LifecycleController) armWatchdogLocked(ctx context.Context) {
	c.stopWatchdogLocked()
	c.watchdogGen++
	gen := c.watchdogGen
	c.watchdog = c.deps.Scheduler.AfterFunc(c.watchdogTimeout, func() {
		c.onWatchdog(ctx, gen)
	})
}

func (c *LifecycleController) stopWatchdogLocked() {
	if c.watchdog != nil {
		c.watchdog.Stop()
		c.watchdog = nil
	}
}

// onWatchdog force-hides the indicator of a load that is still running.
// It never changes the load state.
func (c *LifecycleController) onWatchdog(ctx context.Context, gen uint64) {
	c.mu.Lock()
	if gen != c.watchdogGen {
		c.mu.Unlock()
		return
	}
	c.watchdog = nil
	hide := false
	if c.session.State() == entity.LoadStateLoading {
		hide = c.session.HideIndicator()
	}
	c.mu.Unlock()

	if hide {
		c.logger(ctx).Debug().Dur("timeout", c.watchdogTimeout).Msg("load watchdog hid the progress indicator")
		c.deps.Indicator.Hide()
	}
}
