package ui

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/application/usecase"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/bnema/codeora/internal/domain/url"
	"github.com/bnema/codeora/internal/infrastructure/portal"
	"github.com/bnema/codeora/internal/infrastructure/scheduler"
	"github.com/bnema/codeora/internal/infrastructure/webkit"
	"github.com/bnema/codeora/internal/infrastructure/webkit/bridge"
	"github.com/bnema/codeora/internal/infrastructure/webkit/handlers"
	"github.com/bnema/codeora/internal/logging"
	"github.com/bnema/codeora/internal/ui/component"
	"github.com/bnema/codeora/internal/ui/dialog"
	"github.com/bnema/codeora/internal/ui/input"
	"github.com/bnema/codeora/internal/ui/theme"
	"github.com/bnema/codeora/internal/ui/window"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// App wraps the GTK application and the one browsing session it hosts.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow
	host       *webkit.Host
	toaster    *component.Toaster
	gate       *usecase.PermissionGate
	lifecycle  *usecase.LifecycleController

	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if deps.MessageRouter == nil {
		deps.MessageRouter = bridge.NewMessageRouter(deps.Ctx)
	}
	return &App{deps: deps}, nil
}

// Run starts the GTK application and blocks until it exits. Returns the
// exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)

	ctx, cancel := context.WithCancelCause(ctx)
	a.cancel = cancel

	a.gtkApp = gtk.NewApplication(a.deps.Config.App.ApplicationID, gio.ApplicationFlagsNone)
	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

// onActivate builds the window and starts the session. A second activation
// (the app launched again) only raises the window.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.mainWindow != nil {
		a.mainWindow.Show()
		return
	}
	log.Debug().Msg("GTK application activated")

	theme.Apply()

	if err := a.buildWindow(ctx); err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		a.gtkApp.Quit()
		return
	}
	a.mainWindow.Show()
	log.Info().Msg("main window displayed")

	a.launch(ctx)
}

func (a *App) buildWindow(ctx context.Context) error {
	cfg := a.deps.Config

	mainWindow, err := window.New(ctx, a.gtkApp, cfg)
	if err != nil {
		return err
	}
	a.mainWindow = mainWindow

	host, err := webkit.NewHost(ctx, cfg, a.deps.MessageRouter)
	if err != nil {
		return err
	}
	a.host = host

	progress := component.NewProgressBar()
	a.toaster = component.NewToaster(cfg.Toast.Duration)
	popup := component.NewPermissionPopup()
	fallback := component.NewFallbackScreen(cfg.App.FallbackMessage)

	mainWindow.SetBrowser(host.Widget())
	mainWindow.SetFallback(fallback.Widget())
	mainWindow.AddOverlay(progress.Widget())
	mainWindow.AddOverlay(a.toaster.Widget())
	mainWindow.AddOverlay(popup.Widget())

	sched := scheduler.New()

	var prompt port.PermissionDialogPresenter = dialog.NewPermissionDialog(popup)
	if cfg.Permissions.UsePortal && a.deps.Devices != nil {
		prompt = portal.NewPresenter(a.deps.Devices, prompt, sched)
	}

	gate := usecase.NewPermissionGate(
		a.deps.PermissionRepo,
		prompt,
		a.toaster,
		url.Origin(cfg.App.URL),
		usecase.WithDeniedMessage(cfg.Permissions.DeniedMessage),
	)

	a.lifecycle = usecase.NewLifecycleController(
		entity.NewSession(cfg.App.URL, time.Now()),
		usecase.LifecycleDeps{
			Indicator: progress,
			Fallback:  &fallbackPresenter{screen: fallback, window: mainWindow, host: host},
			Picker:    component.NewFilePicker(mainWindow.Window()),
			Scheduler: sched,
			Permissions: usecase.NewHandlePermissionUseCase(
				gate, cfg.Permissions.ReactiveMicrophonePrompt,
			),
		},
		cfg.Lifecycle.WatchdogTimeout,
	)

	if err := host.SetObservers(a.lifecycle, a.lifecycle); err != nil {
		return err
	}
	host.SetNavigationPolicy(usecase.NewNavigationPolicy(cfg.Navigation.AllowedHosts))

	if err := handlers.RegisterAll(ctx, a.deps.MessageRouter, handlers.Config{
		NotificationUC: usecase.NewShowNotificationUseCase(a.toaster),
		Navigation:     a.lifecycle,
	}); err != nil {
		return err
	}

	a.attachInput(ctx)
	a.gate = gate
	return nil
}

// launch asks for the startup permissions and issues the initial load.
func (a *App) launch(ctx context.Context) {
	cfg := a.deps.Config
	log := logging.FromContext(ctx)

	err := usecase.NewLaunchSessionUseCase(a.gate, a.host, a.deps.Network, a.lifecycle).
		Execute(ctx, usecase.LaunchInput{
			URL:            cfg.App.URL,
			Capabilities:   StartupCapabilities(cfg.Permissions.RequestStorage),
			PreflightCheck: cfg.Network.PreflightCheck,
		})
	switch {
	case errors.Is(err, usecase.ErrOffline):
		log.Warn().Msg("session started offline")
	case err != nil:
		log.Error().Err(err).Msg("initial load failed")
		a.lifecycle.Fail(ctx, entity.FailureMainFrameLoad)
	}
}

func (a *App) attachInput(ctx context.Context) {
	navigateBack := usecase.NewNavigateBackUseCase(a.host, a.mainWindow)
	baseZoom := a.deps.Config.Browser.DefaultZoom

	input.Attach(ctx, a.mainWindow, input.Handlers{
		Back: func(ctx context.Context) {
			if err := navigateBack.Execute(ctx); err != nil {
				logging.FromContext(ctx).Debug().Err(err).Msg("back navigation failed")
			}
		},
		Zoom: func(_ context.Context, action input.Action) {
			view := a.host.View()
			view.SetZoomLevel(input.NextZoom(view.ZoomLevel(), baseZoom, action))
		},
	})
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.host != nil {
		a.host.Destroy()
	}
	if a.cancel != nil {
		a.cancel(errors.New("application shutdown"))
	}
	if a.deps.OnShutdown != nil {
		// ctx is cancelled by now; shutdown hooks get a fresh one.
		a.deps.OnShutdown(logging.WithContext(context.Background(), *log))
	}
	log.Info().Msg("application shutdown complete")
}

// Quit stops the main loop.
func (a *App) Quit() {
	if a.gtkApp != nil {
		a.gtkApp.Quit()
	}
}

// RunWithArgs creates the app and runs it.
func RunWithArgs(ctx context.Context, deps *Dependencies, args []string) int {
	app, err := New(deps)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to create application")
		return 1
	}
	return app.Run(ctx, args)
}
