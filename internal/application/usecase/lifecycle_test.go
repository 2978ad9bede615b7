package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/codeora/internal/application/port"
	portmocks "github.com/bnema/codeora/internal/application/port/mocks"
	"github.com/bnema/codeora/internal/application/usecase"
	"github.com/bnema/codeora/internal/domain/entity"
	repomocks "github.com/bnema/codeora/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const targetURL = "https://chat.example.com/"

type lifecycleFixture struct {
	ctx       context.Context
	indicator *portmocks.MockProgressIndicator
	fallback  *portmocks.MockFallbackPresenter
	picker    *portmocks.MockFilePicker
	dialog    *portmocks.MockPermissionDialogPresenter
	permRepo  *repomocks.MockPermissionRepository
	scheduler *manualScheduler
	gate      *usecase.PermissionGate
	ctrl      *usecase.LifecycleController
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()
	f := &lifecycleFixture{
		ctx:       testContext(),
		indicator: portmocks.NewMockProgressIndicator(t),
		fallback:  portmocks.NewMockFallbackPresenter(t),
		picker:    portmocks.NewMockFilePicker(t),
		dialog:    portmocks.NewMockPermissionDialogPresenter(t),
		permRepo:  repomocks.NewMockPermissionRepository(t),
		scheduler: &manualScheduler{},
	}
	f.gate = usecase.NewPermissionGate(f.permRepo, f.dialog, nil, testOrigin)
	f.ctrl = usecase.NewLifecycleController(
		entity.NewSession(targetURL, time.Now()),
		usecase.LifecycleDeps{
			Indicator:   f.indicator,
			Fallback:    f.fallback,
			Picker:      f.picker,
			Scheduler:   f.scheduler,
			Permissions: usecase.NewHandlePermissionUseCase(f.gate, true),
		},
		0,
	)
	return f
}

// allowIndicator accepts any indicator traffic; tests that care assert on
// the recorded calls.
func (f *lifecycleFixture) allowIndicator() {
	f.indicator.EXPECT().Show().Return().Maybe()
	f.indicator.EXPECT().Hide().Return().Maybe()
	f.indicator.EXPECT().SetProgress(mock.Anything).Return().Maybe()
}

func mainFrame(uri string) port.LoadRequest {
	return port.LoadRequest{URI: uri, MainFrame: true}
}

func TestLifecycle_LoadStartShowsIndicator(t *testing.T) {
	f := newLifecycleFixture(t)
	f.indicator.EXPECT().SetProgress(0.0).Return().Once()
	f.indicator.EXPECT().Show().Return().Once()

	f.ctrl.OnLoadStarted(f.ctx, targetURL)

	snap := f.ctrl.Snapshot()
	assert.Equal(t, entity.LoadStateLoading, snap.State)
	assert.Equal(t, 0, snap.Progress)
	assert.True(t, snap.IndicatorVisible)
	assert.Equal(t, targetURL, snap.URL)
	assert.Equal(t, 1, f.scheduler.Pending(), "watchdog armed")
}

func TestLifecycle_Progress100HidesIndicator(t *testing.T) {
	f := newLifecycleFixture(t)
	f.allowIndicator()

	f.ctrl.OnLoadStarted(f.ctx, targetURL)
	f.ctrl.OnProgressChanged(f.ctx, 45)
	f.indicator.AssertNotCalled(t, "Hide")

	f.ctrl.OnProgressChanged(f.ctx, 100)

	f.indicator.AssertNumberOfCalls(t, "Hide", 1)
	f.indicator.AssertCalled(t, "SetProgress", 0.45)
	snap := f.ctrl.Snapshot()
	assert.False(t, snap.IndicatorVisible)
	assert.Equal(t, 100, snap.Progress)
	assert.Equal(t, 0, f.scheduler.Pending(), "watchdog disarmed")

	f.scheduler.Advance(usecase.DefaultWatchdogTimeout)
	f.indicator.AssertNumberOfCalls(t, "Hide", 1)
}

func TestLifecycle_WatchdogHidesIndicatorOnly(t *testing.T) {
	f := newLifecycleFixture(t)
	f.allowIndicator()

	f.ctrl.OnLoadStarted(f.ctx, targetURL)
	f.ctrl.OnProgressChanged(f.ctx, 30)

	f.scheduler.Advance(usecase.DefaultWatchdogTimeout - time.Millisecond)
	f.indicator.AssertNotCalled(t, "Hide")

	f.scheduler.Advance(time.Millisecond)

	f.indicator.AssertNumberOfCalls(t, "Hide", 1)
	snap := f.ctrl.Snapshot()
	assert.False(t, snap.IndicatorVisible)
	assert.Equal(t, entity.LoadStateLoading, snap.State, "watchdog never changes the state")
	assert.Equal(t, 30, snap.Progress)
}

func TestLifecycle_NewNavigationRearmsWatchdog(t *testing.T) {
	f := newLifecycleFixture(t)
	f.allowIndicator()

	f.ctrl.OnLoadStarted(f.ctx, targetURL)
	f.scheduler.Advance(3 * time.Second)
	f.ctrl.OnLoadStarted(f.ctx, targetURL+"room")

	f.scheduler.Advance(2 * time.Second)
	f.indicator.AssertNotCalled(t, "Hide")

	f.scheduler.Advance(2 * time.Second)
	f.indicator.AssertNumberOfCalls(t, "Hide", 1)
}

func TestLifecycle_LoadFinished(t *testing.T) {
	f := newLifecycleFixture(t)
	f.allowIndicator()

	f.ctrl.OnLoadStarted(f.ctx, targetURL)
	f.ctrl.OnLoadFinished(f.ctx, targetURL)

	snap := f.ctrl.Snapshot()
	assert.Equal(t, entity.LoadStateLoaded, snap.State)
	assert.False(t, snap.IndicatorVisible)
	assert.Equal(t, 0, f.scheduler.Pending())
	f.indicator.AssertNumberOfCalls(t, "Hide", 1)
}

func TestLifecycle_MainFrameErrorShowsFallbackOnce(t *testing.T) {
	f := newLifecycleFixture(t)
	f.allowIndicator()
	f.fallback.EXPECT().ShowFallback(mock.Anything, entity.FailureMainFrameLoad).Return().Once()

	f.ctrl.OnLoadStarted(f.ctx, targetURL)
	f.ctrl.OnLoadError(f.ctx, mainFrame(targetURL), port.LoadError{Domain: "WebKitNetworkError", Code: 1, Message: "dns"})
	f.ctrl.OnLoadError(f.ctx, mainFrame(targetURL), port.LoadError{Message: "again"})
	f.ctrl.OnHTTPError(f.ctx, mainFrame(targetURL), port.HTTPResponse{StatusCode: 502})

	snap := f.ctrl.Snapshot()
	assert.Equal(t, entity.LoadStateFailed, snap.State)
	assert.Equal(t, entity.FailureMainFrameLoad, snap.Failure)
	assert.Equal(t, 0, f.scheduler.Pending(), "watchdog disarmed")

	f.ctrl.OnLoadStarted(f.ctx, targetURL)
	assert.Equal(t, entity.LoadStateFailed, f.ctrl.Snapshot().State, "failed is terminal")
}

func TestLifecycle_HTTPErrorShowsFallback(t *testing.T) {
	f := newLifecycleFixture(t)
	f.allowIndicator()
	f.fallback.EXPECT().ShowFallback(mock.Anything, entity.FailureHTTPStatus).Return().Once()

	f.ctrl.OnLoadStarted(f.ctx, targetURL)
	f.ctrl.OnHTTPError(f.ctx, mainFrame(targetURL), port.HTTPResponse{StatusCode: 503, Reason: "Service Unavailable"})

	assert.Equal(t, entity.FailureHTTPStatus, f.ctrl.Snapshot().Failure)
}

func TestLifecycle_SubResourceErrorsNeverFail(t *testing.T) {
	f := newLifecycleFixture(t)
	f.allowIndicator()

	f.ctrl.OnLoadStarted(f.ctx, targetURL)
	f.ctrl.OnLoadError(f.ctx, port.LoadRequest{URI: targetURL + "logo.png"}, port.LoadError{Message: "404"})
	f.ctrl.OnHTTPError(f.ctx, port.LoadRequest{URI: targetURL + "api"}, port.HTTPResponse{StatusCode: 500})
	f.ctrl.OnProgressChanged(f.ctx, 100)
	f.ctrl.OnLoadFinished(f.ctx, targetURL)

	f.fallback.AssertNotCalled(t, "ShowFallback", mock.Anything, mock.Anything)
	snap := f.ctrl.Snapshot()
	assert.Equal(t, entity.LoadStateLoaded, snap.State)
	assert.False(t, snap.IndicatorVisible)
}

func TestLifecycle_CancelledLoadIgnored(t *testing.T) {
	f := newLifecycleFixture(t)
	f.allowIndicator()

	f.ctrl.OnLoadStarted(f.ctx, targetURL)
	f.ctrl.OnLoadError(f.ctx, mainFrame(targetURL), port.LoadError{Cancelled: true})

	assert.Equal(t, entity.LoadStateLoading, f.ctrl.Snapshot().State)
}

func TestLifecycle_FileChooserReplacesPending(t *testing.T) {
	f := newLifecycleFixture(t)

	var pickerDone []func([]string)
	f.picker.EXPECT().PickFile(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ []string, done func([]string)) {
			pickerDone = append(pickerDone, done)
		}).Return().Times(2)

	var events []string
	var firstResult, secondResult []string
	firstResolved := false

	f.ctrl.OnFileChooserRequested(f.ctx, port.FileChooserRequest{Resolve: func(uris []string) {
		events = append(events, "first resolved")
		firstResolved = true
		firstResult = uris
	}})
	f.ctrl.OnFileChooserRequested(f.ctx, port.FileChooserRequest{Resolve: func(uris []string) {
		events = append(events, "second resolved")
		secondResult = uris
	}})

	require.True(t, firstResolved)
	assert.Empty(t, firstResult)
	require.Len(t, pickerDone, 2)

	// The first picker finishing late must not reach anyone.
	pickerDone[0]([]string{"file:///tmp/late.txt"})
	pickerDone[1]([]string{"file:///tmp/a.txt", "file:///tmp/b.txt"})
	pickerDone[1]([]string{"file:///tmp/again.txt"})

	assert.Equal(t, []string{"first resolved", "second resolved"}, events)
	assert.Equal(t, []string{"file:///tmp/a.txt"}, secondResult, "single selection")
}

func TestLifecycle_FileChooserCancelled(t *testing.T) {
	f := newLifecycleFixture(t)
	f.picker.EXPECT().PickFile(mock.Anything, []string{"image/*"}, mock.Anything).
		Run(func(_ context.Context, _ []string, done func([]string)) { done(nil) }).Return()

	called := false
	var got []string
	f.ctrl.OnFileChooserRequested(f.ctx, port.FileChooserRequest{
		MIMETypes: []string{"image/*"},
		Resolve:   func(uris []string) { called = true; got = uris },
	})

	assert.True(t, called)
	assert.Empty(t, got)
}

func TestLifecycle_FailureCancelsPendingChooser(t *testing.T) {
	f := newLifecycleFixture(t)
	f.allowIndicator()
	f.picker.EXPECT().PickFile(mock.Anything, mock.Anything, mock.Anything).Return()
	f.fallback.EXPECT().ShowFallback(mock.Anything, entity.FailureMainFrameLoad).Return()

	resolved := 0
	f.ctrl.OnFileChooserRequested(f.ctx, port.FileChooserRequest{Resolve: func([]string) { resolved++ }})
	f.ctrl.OnLoadError(f.ctx, mainFrame(targetURL), port.LoadError{Message: "boom"})

	assert.Equal(t, 1, resolved)
}

func TestLifecycle_GrantedMicrophoneSkipsPrompt(t *testing.T) {
	f := newLifecycleFixture(t)
	f.permRepo.EXPECT().GetAll(mock.Anything, testOrigin).Return([]*entity.PermissionRecord{
		{Origin: testOrigin, Type: entity.PermissionTypeMicrophone, Decision: entity.PermissionGranted},
	}, nil)

	allowed := false
	f.ctrl.OnPermissionRequested(f.ctx, port.PermissionRequest{
		Origin: testOrigin,
		Types:  []entity.PermissionType{entity.PermissionTypeMicrophone},
		Allow:  func() { allowed = true },
		Deny:   func() { t.Fatal("unexpected deny") },
	})

	assert.True(t, allowed)
	f.dialog.AssertNotCalled(t, "ShowPermissionDialog", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLifecycle_FailedSessionDeniesPermissions(t *testing.T) {
	f := newLifecycleFixture(t)
	f.fallback.EXPECT().ShowFallback(mock.Anything, entity.FailureNoNetwork).Return()

	f.ctrl.Fail(f.ctx, entity.FailureNoNetwork)

	denied := false
	f.ctrl.OnPermissionRequested(f.ctx, port.PermissionRequest{
		Types: []entity.PermissionType{entity.PermissionTypeMicrophone},
		Allow: func() { t.Fatal("unexpected allow") },
		Deny:  func() { denied = true },
	})
	assert.True(t, denied)
}

func TestLaunchSession_NoNetworkNeverLoads(t *testing.T) {
	f := newLifecycleFixture(t)
	surface := portmocks.NewMockBrowserSurface(t)
	network := portmocks.NewMockNetworkMonitor(t)

	network.EXPECT().NetworkAvailable(mock.Anything).Return(false)
	f.fallback.EXPECT().ShowFallback(mock.Anything, entity.FailureNoNetwork).Return().Once()

	uc := usecase.NewLaunchSessionUseCase(f.gate, surface, network, f.ctrl)
	err := uc.Execute(f.ctx, usecase.LaunchInput{URL: targetURL, PreflightCheck: true})

	require.ErrorIs(t, err, usecase.ErrOffline)
	surface.AssertNotCalled(t, "LoadURI", mock.Anything, mock.Anything)
	assert.Equal(t, entity.LoadStateFailed, f.ctrl.Snapshot().State)
}

func TestLaunchSession_RequestsPermissionsThenLoads(t *testing.T) {
	f := newLifecycleFixture(t)
	surface := portmocks.NewMockBrowserSurface(t)
	network := portmocks.NewMockNetworkMonitor(t)

	var order []string
	f.permRepo.EXPECT().GetAll(mock.Anything, testOrigin).Return(nil, nil)
	f.dialog.EXPECT().ShowPermissionDialog(mock.Anything, testOrigin, []entity.PermissionType{entity.PermissionTypeMicrophone}, mock.Anything).
		Run(func(context.Context, string, []entity.PermissionType, func(port.PermissionDialogResult)) {
			order = append(order, "prompt")
		}).Return()
	network.EXPECT().NetworkAvailable(mock.Anything).Return(true)
	surface.EXPECT().LoadURI(mock.Anything, targetURL).
		Run(func(context.Context, string) { order = append(order, "load") }).
		Return(nil).Once()

	uc := usecase.NewLaunchSessionUseCase(f.gate, surface, network, f.ctrl)
	err := uc.Execute(f.ctx, usecase.LaunchInput{
		URL:            targetURL,
		Capabilities:   []entity.PermissionType{entity.PermissionTypeMicrophone},
		PreflightCheck: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"prompt", "load"}, order, "load does not wait for the dialog")
}

func TestLaunchSession_LoadErrorWrapped(t *testing.T) {
	f := newLifecycleFixture(t)
	surface := portmocks.NewMockBrowserSurface(t)
	surface.EXPECT().LoadURI(mock.Anything, targetURL).Return(port.ErrSurfaceDestroyed)

	uc := usecase.NewLaunchSessionUseCase(f.gate, surface, nil, f.ctrl)
	err := uc.Execute(f.ctx, usecase.LaunchInput{URL: targetURL, PreflightCheck: true})

	assert.True(t, errors.Is(err, port.ErrSurfaceDestroyed))
}
