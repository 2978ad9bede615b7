package usecase_test

import (
	"context"
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

var startupTypes = []entity.PermissionType{
	entity.PermissionTypeMicrophone,
	entity.PermissionTypeStorageRead,
	entity.PermissionTypeStorageWrite,
}

func TestPermissionGate_AllGrantedSkipsPrompt(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	dialog := portmocks.NewMockPermissionDialogPresenter(t)

	records := make([]*entity.PermissionRecord, 0, len(startupTypes))
	for _, pt := range startupTypes {
		records = append(records, &entity.PermissionRecord{Origin: testOrigin, Type: pt, Decision: entity.PermissionGranted})
	}
	permRepo.EXPECT().GetAll(mock.Anything, testOrigin).Return(records, nil)

	gate := usecase.NewPermissionGate(permRepo, dialog, nil, testOrigin)

	var got entity.PermissionState
	gate.RequestPermissions(ctx, startupTypes, func(s entity.PermissionState) { got = s })

	require.NotNil(t, got, "callback runs immediately")
	assert.True(t, got.Granted(startupTypes...))
	dialog.AssertNotCalled(t, "ShowPermissionDialog")
}

func TestPermissionGate_PromptsOnlyUngrantedSubset(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	dialog := portmocks.NewMockPermissionDialogPresenter(t)
	notifier := portmocks.NewMockNotifier(t)
	now := time.Unix(1760000000, 0)

	permRepo.EXPECT().GetAll(mock.Anything, testOrigin).Return([]*entity.PermissionRecord{
		{Origin: testOrigin, Type: entity.PermissionTypeMicrophone, Decision: entity.PermissionGranted},
		{Origin: testOrigin, Type: entity.PermissionTypeStorageRead, Decision: entity.PermissionDenied},
	}, nil)
	dialog.EXPECT().ShowPermissionDialog(mock.Anything, testOrigin, []entity.PermissionType{
		entity.PermissionTypeStorageRead,
		entity.PermissionTypeStorageWrite,
	}, mock.Anything).Run(func(_ context.Context, _ string, _ []entity.PermissionType, cb func(port.PermissionDialogResult)) {
		cb(port.PermissionDialogResult{Allowed: false, Persistent: true})
	})
	permRepo.EXPECT().Set(mock.Anything, mock.AnythingOfType("*entity.PermissionRecord")).
		Run(func(_ context.Context, r *entity.PermissionRecord) {
			assert.Equal(t, entity.PermissionDenied, r.Decision)
			assert.Equal(t, now.Unix(), r.UpdatedAt)
			assert.NotEqual(t, entity.PermissionTypeMicrophone, r.Type)
		}).Return(nil).Times(2)
	notifier.EXPECT().Show(mock.Anything, "nope", port.NotificationWarning, time.Duration(0)).Return().Once()

	gate := usecase.NewPermissionGate(permRepo, dialog, notifier, testOrigin,
		usecase.WithDeniedMessage("nope"),
		usecase.WithClock(func() time.Time { return now }),
	)

	var got entity.PermissionState
	gate.RequestPermissions(ctx, startupTypes, func(s entity.PermissionState) { got = s })

	require.NotNil(t, got)
	assert.Equal(t, entity.PermissionGranted, got.Decision(entity.PermissionTypeMicrophone), "untouched")
	assert.Equal(t, entity.PermissionDenied, got.Decision(entity.PermissionTypeStorageRead))
	assert.Equal(t, entity.PermissionDenied, got.Decision(entity.PermissionTypeStorageWrite))
}

func TestPermissionGate_ConcurrentRequestsShareOneDialog(t *testing.T) {
	ctx := testContext()
	dialog := portmocks.NewMockPermissionDialogPresenter(t)

	var answer func(port.PermissionDialogResult)
	dialog.EXPECT().ShowPermissionDialog(mock.Anything, testOrigin, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, _ []entity.PermissionType, cb func(port.PermissionDialogResult)) {
			answer = cb
		}).Once()

	gate := usecase.NewPermissionGate(nil, dialog, nil, testOrigin)

	calls := 0
	mic := []entity.PermissionType{entity.PermissionTypeMicrophone}
	gate.RequestPermissions(ctx, mic, func(entity.PermissionState) { calls++ })
	gate.RequestPermissions(ctx, mic, func(entity.PermissionState) { calls++ })

	require.NotNil(t, answer)
	assert.Equal(t, 0, calls, "nothing resolves before the dialog is answered")

	answer(port.PermissionDialogResult{Allowed: true})

	assert.Equal(t, 2, calls)
	assert.True(t, gate.Granted(ctx, entity.PermissionTypeMicrophone))
}

func TestPermissionGate_NoDialogDenies(t *testing.T) {
	ctx := testContext()
	notifier := portmocks.NewMockNotifier(t)
	notifier.EXPECT().Show(mock.Anything, usecase.DefaultPermissionDeniedMessage, port.NotificationWarning, mock.Anything).Return()

	gate := usecase.NewPermissionGate(nil, nil, notifier, testOrigin)

	var got entity.PermissionState
	gate.RequestPermissions(ctx, []entity.PermissionType{entity.PermissionTypeMicrophone}, func(s entity.PermissionState) { got = s })

	assert.Equal(t, entity.PermissionDenied, got.Decision(entity.PermissionTypeMicrophone))
}

func TestPermissionGate_AppliesDecisionsPerType(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	dialog := portmocks.NewMockPermissionDialogPresenter(t)
	notifier := portmocks.NewMockNotifier(t)

	permRepo.EXPECT().GetAll(mock.Anything, testOrigin).Return(nil, nil)
	dialog.EXPECT().ShowPermissionDialog(mock.Anything, testOrigin, startupTypes, mock.Anything).
		Run(func(_ context.Context, _ string, _ []entity.PermissionType, cb func(port.PermissionDialogResult)) {
			cb(port.PermissionDialogResult{
				Persistent: true,
				Decisions: map[entity.PermissionType]entity.PermissionDecision{
					entity.PermissionTypeMicrophone:   entity.PermissionGranted,
					entity.PermissionTypeStorageRead:  entity.PermissionDenied,
					entity.PermissionTypeStorageWrite: entity.PermissionDenied,
				},
			})
		}).Once()

	stored := map[entity.PermissionType]entity.PermissionDecision{}
	permRepo.EXPECT().Set(mock.Anything, mock.AnythingOfType("*entity.PermissionRecord")).
		Run(func(_ context.Context, r *entity.PermissionRecord) { stored[r.Type] = r.Decision }).
		Return(nil)
	notifier.EXPECT().Show(mock.Anything, usecase.DefaultPermissionDeniedMessage, port.NotificationWarning, time.Duration(0)).Return().Once()

	gate := usecase.NewPermissionGate(permRepo, dialog, notifier, testOrigin)

	var got entity.PermissionState
	gate.RequestPermissions(ctx, startupTypes, func(s entity.PermissionState) { got = s })

	require.NotNil(t, got)
	assert.Equal(t, entity.PermissionGranted, got.Decision(entity.PermissionTypeMicrophone))
	assert.Equal(t, entity.PermissionDenied, got.Decision(entity.PermissionTypeStorageRead))
	assert.Equal(t, entity.PermissionDenied, got.Decision(entity.PermissionTypeStorageWrite))
	assert.Equal(t, entity.PermissionGranted, stored[entity.PermissionTypeMicrophone])
	assert.Equal(t, entity.PermissionDenied, stored[entity.PermissionTypeStorageRead])
}

func TestPermissionGate_JoinedRequestPromptsForUncoveredTypes(t *testing.T) {
	ctx := testContext()
	dialog := portmocks.NewMockPermissionDialogPresenter(t)

	mic := []entity.PermissionType{entity.PermissionTypeMicrophone}
	camera := []entity.PermissionType{entity.PermissionTypeCamera}

	var answerMic func(port.PermissionDialogResult)
	dialog.EXPECT().ShowPermissionDialog(mock.Anything, testOrigin, mic, mock.Anything).
		Run(func(_ context.Context, _ string, _ []entity.PermissionType, cb func(port.PermissionDialogResult)) {
			answerMic = cb
		}).Once()
	dialog.EXPECT().ShowPermissionDialog(mock.Anything, testOrigin, camera, mock.Anything).
		Run(func(_ context.Context, _ string, _ []entity.PermissionType, cb func(port.PermissionDialogResult)) {
			cb(port.PermissionDialogResult{Allowed: true})
		}).Once()

	gate := usecase.NewPermissionGate(nil, dialog, nil, testOrigin)

	gate.RequestPermissions(ctx, mic, nil)

	var page entity.PermissionState
	pageTypes := []entity.PermissionType{entity.PermissionTypeMicrophone, entity.PermissionTypeCamera}
	gate.RequestPermissions(ctx, pageTypes, func(s entity.PermissionState) { page = s })

	require.NotNil(t, answerMic)
	assert.Nil(t, page)

	answerMic(port.PermissionDialogResult{Allowed: true})

	require.NotNil(t, page, "camera prompt answered after the microphone dialog closed")
	assert.True(t, page.Granted(pageTypes...))
}
