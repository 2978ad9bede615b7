package webkit

import (
	"testing"

	"github.com/bnema/codeora/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassifyUserMediaPermissionTypes(t *testing.T) {
	tests := []struct {
		name      string
		isAudio   bool
		isVideo   bool
		isDisplay bool
		expected  []entity.PermissionType
	}{
		{
			name:     "microphone only",
			isAudio:  true,
			expected: []entity.PermissionType{entity.PermissionTypeMicrophone},
		},
		{
			name:     "audio and camera",
			isAudio:  true,
			isVideo:  true,
			expected: []entity.PermissionType{entity.PermissionTypeMicrophone, entity.PermissionTypeCamera},
		},
		{
			name:      "screen only",
			isDisplay: true,
			expected:  []entity.PermissionType{entity.PermissionTypeDisplay},
		},
		{
			name:      "screen with audio",
			isAudio:   true,
			isDisplay: true,
			expected:  []entity.PermissionType{entity.PermissionTypeMicrophone, entity.PermissionTypeDisplay},
		},
		{
			name:     "display fallback when all flags false",
			expected: []entity.PermissionType{entity.PermissionTypeDisplay},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyUserMediaPermissionTypes(tt.isAudio, tt.isVideo, tt.isDisplay))
		})
	}
}

func TestClassifyPermissionRequestTypes(t *testing.T) {
	tests := []struct {
		name     string
		kind     permissionRequestKind
		isVideo  bool
		expected []entity.PermissionType
	}{
		{
			name:     "device info request stays device_info",
			kind:     permissionRequestKindDeviceInfo,
			expected: []entity.PermissionType{entity.PermissionTypeDeviceInfo},
		},
		{
			name:     "user media camera",
			kind:     permissionRequestKindUserMedia,
			isVideo:  true,
			expected: []entity.PermissionType{entity.PermissionTypeCamera},
		},
		{
			name:     "geolocation",
			kind:     permissionRequestKindGeolocation,
			expected: []entity.PermissionType{entity.PermissionTypeGeolocation},
		},
		{
			name:     "notification",
			kind:     permissionRequestKindNotification,
			expected: []entity.PermissionType{entity.PermissionTypeNotification},
		},
		{
			name:     "unknown request denied",
			kind:     permissionRequestKindUnknown,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyPermissionRequestTypes(tt.kind, false, tt.isVideo, false))
		})
	}
}
