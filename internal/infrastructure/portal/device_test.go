package portal

import (
	"testing"

	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestPath(t *testing.T) {
	got := requestPath(":1.42", "codeora_abc")
	assert.Equal(t, dbus.ObjectPath("/org/freedesktop/portal/desktop/request/1_42/codeora_abc"), got)
	assert.True(t, got.IsValid())
}

func TestNewHandleToken_IsValidPathElement(t *testing.T) {
	token := newHandleToken()
	assert.True(t, requestPath(":1.1", token).IsValid())
	assert.NotEqual(t, token, newHandleToken())
}

func TestParseResponse(t *testing.T) {
	code, err := parseResponse([]any{uint32(0), map[string]dbus.Variant{}})
	require.NoError(t, err)
	assert.Equal(t, responseSuccess, code)

	code, err = parseResponse([]any{uint32(1)})
	require.NoError(t, err)
	assert.Equal(t, responseCancelled, code)

	_, err = parseResponse(nil)
	assert.Error(t, err)

	_, err = parseResponse([]any{"nope"})
	assert.Error(t, err)
}

func TestPortalDevices(t *testing.T) {
	devices, rest := portalDevices([]entity.PermissionType{
		entity.PermissionTypeMicrophone,
		entity.PermissionTypeStorageRead,
		entity.PermissionTypeCamera,
	})
	assert.Equal(t, []string{"microphone", "camera"}, devices)
	assert.Equal(t, []entity.PermissionType{entity.PermissionTypeStorageRead}, rest)
}

func TestDevicePortal_UnsupportedByDefault(t *testing.T) {
	p := &DevicePortal{}
	assert.False(t, p.Supported())

	_, err := p.AccessDevice(t.Context(), []string{"microphone"})
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.NoError(t, p.Close())
}
