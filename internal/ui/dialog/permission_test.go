package dialog

import (
	"context"
	"testing"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

type fakePermissionPopup struct {
	showCalls []fakePopupShowCall
	callback  func(allowed, persistent bool)
}

type fakePopupShowCall struct {
	heading string
	body    string
}

func (f *fakePermissionPopup) Show(_ context.Context, heading, body string, callback func(allowed, persistent bool)) {
	f.showCalls = append(f.showCalls, fakePopupShowCall{heading: heading, body: body})
	f.callback = callback
}

func (f *fakePermissionPopup) Respond(allowed, persistent bool) {
	if f.callback == nil {
		return
	}
	cb := f.callback
	f.callback = nil
	cb(allowed, persistent)
}

func TestPermissionDialog_QueuesRequestsWhilePopupVisible(t *testing.T) {
	popup := &fakePermissionPopup{}
	d := NewPermissionDialog(popup)

	var first, second *port.PermissionDialogResult
	d.ShowPermissionDialog(context.Background(), "https://example.com",
		[]entity.PermissionType{entity.PermissionTypeMicrophone},
		func(r port.PermissionDialogResult) { first = &r })
	d.ShowPermissionDialog(context.Background(), "https://example.com",
		[]entity.PermissionType{entity.PermissionTypeCamera},
		func(r port.PermissionDialogResult) { second = &r })

	if assert.Len(t, popup.showCalls, 1) {
		assert.Equal(t, "Allow Microphone Access?", popup.showCalls[0].heading)
		assert.Equal(t, "https://example.com wants to use microphone.", popup.showCalls[0].body)
	}
	assert.Nil(t, first)
	assert.Nil(t, second)

	popup.Respond(true, false)
	if assert.NotNil(t, first) {
		assert.Equal(t, port.PermissionDialogResult{Allowed: true}, *first)
	}
	if assert.Len(t, popup.showCalls, 2) {
		assert.Equal(t, "Allow Camera Access?", popup.showCalls[1].heading)
	}
	assert.Nil(t, second)

	popup.Respond(false, true)
	if assert.NotNil(t, second) {
		assert.Equal(t, port.PermissionDialogResult{Allowed: false, Persistent: true}, *second)
	}

	// Queue drained: the next request shows immediately.
	d.ShowPermissionDialog(context.Background(), "", nil, func(port.PermissionDialogResult) {})
	assert.Len(t, popup.showCalls, 3)
}

func TestPermissionDialog_NoPopup_DeniesRequest(t *testing.T) {
	d := &PermissionDialog{}

	called := false
	result := port.PermissionDialogResult{Allowed: true}
	d.ShowPermissionDialog(context.Background(), "https://example.com",
		[]entity.PermissionType{entity.PermissionTypeMicrophone},
		func(r port.PermissionDialogResult) {
			called = true
			result = r
		})

	assert.True(t, called)
	assert.Equal(t, port.PermissionDialogResult{}, result)
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name     string
		types    []entity.PermissionType
		expected string
	}{
		{"none", nil, "Allow Permission?"},
		{"microphone", []entity.PermissionType{entity.PermissionTypeMicrophone}, "Allow Microphone Access?"},
		{"screen", []entity.PermissionType{entity.PermissionTypeDisplay}, "Allow Screen Sharing?"},
		{"mic and camera", []entity.PermissionType{entity.PermissionTypeCamera, entity.PermissionTypeMicrophone}, "Allow Microphone and Camera?"},
		{
			"startup set",
			[]entity.PermissionType{entity.PermissionTypeMicrophone, entity.PermissionTypeStorageRead, entity.PermissionTypeStorageWrite},
			"Allow Microphone, File Access, and Downloads?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Heading(tt.types))
		})
	}
}

func TestBody(t *testing.T) {
	assert.Equal(t, "This page wants to use your device.", Body("", nil))
	assert.Equal(t, "https://a.example wants to use microphone and camera.",
		Body("https://a.example", []entity.PermissionType{entity.PermissionTypeMicrophone, entity.PermissionTypeCamera}))
}
