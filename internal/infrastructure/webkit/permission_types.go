package webkit

import (
	"github.com/bnema/codeora/internal/domain/entity"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
)

type permissionRequestKind int

const (
	permissionRequestKindUnknown permissionRequestKind = iota
	permissionRequestKindUserMedia
	permissionRequestKindDeviceInfo
	permissionRequestKindGeolocation
	permissionRequestKindNotification
	permissionRequestKindClipboard
	permissionRequestKindPointerLock
)

// classifyUserMediaPermissionTypes maps getUserMedia flags to capability
// types. WebKit reports getDisplayMedia with every flag false on some
// versions, so that case is treated as display capture.
func classifyUserMediaPermissionTypes(isAudio, isVideo, isDisplay bool) []entity.PermissionType {
	var types []entity.PermissionType
	if isAudio {
		types = append(types, entity.PermissionTypeMicrophone)
	}
	if isVideo && !isDisplay {
		types = append(types, entity.PermissionTypeCamera)
	}
	if isDisplay || (!isAudio && !isVideo) {
		types = append(types, entity.PermissionTypeDisplay)
	}
	return types
}

func classifyPermissionRequestTypes(kind permissionRequestKind, isAudio, isVideo, isDisplay bool) []entity.PermissionType {
	switch kind {
	case permissionRequestKindUserMedia:
		return classifyUserMediaPermissionTypes(isAudio, isVideo, isDisplay)
	case permissionRequestKindDeviceInfo:
		return []entity.PermissionType{entity.PermissionTypeDeviceInfo}
	case permissionRequestKindGeolocation:
		return []entity.PermissionType{entity.PermissionTypeGeolocation}
	case permissionRequestKindNotification:
		return []entity.PermissionType{entity.PermissionTypeNotification}
	case permissionRequestKindClipboard:
		return []entity.PermissionType{entity.PermissionTypeClipboard}
	case permissionRequestKindPointerLock:
		return []entity.PermissionType{entity.PermissionTypePointerLock}
	default:
		return nil
	}
}

// permissionTypes inspects a WebKit permission request.
func permissionTypes(req webkit.PermissionRequester) []entity.PermissionType {
	switch r := req.(type) {
	case *webkit.UserMediaPermissionRequest:
		return classifyPermissionRequestTypes(permissionRequestKindUserMedia,
			webkit.UserMediaPermissionIsForAudioDevice(r),
			webkit.UserMediaPermissionIsForVideoDevice(r),
			webkit.UserMediaPermissionIsForDisplayDevice(r),
		)
	case *webkit.DeviceInfoPermissionRequest:
		return classifyPermissionRequestTypes(permissionRequestKindDeviceInfo, false, false, false)
	case *webkit.GeolocationPermissionRequest:
		return classifyPermissionRequestTypes(permissionRequestKindGeolocation, false, false, false)
	case *webkit.NotificationPermissionRequest:
		return classifyPermissionRequestTypes(permissionRequestKindNotification, false, false, false)
	case *webkit.ClipboardPermissionRequest:
		return classifyPermissionRequestTypes(permissionRequestKindClipboard, false, false, false)
	case *webkit.PointerLockPermissionRequest:
		return classifyPermissionRequestTypes(permissionRequestKindPointerLock, false, false, false)
	default:
		return nil
	}
}
