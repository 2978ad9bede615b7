package ui

import "github.com/bnema/codeora/internal/domain/entity"

// StartupCapabilities returns what the gate asks for at launch: the
// microphone always, storage when configured.
func StartupCapabilities(requestStorage bool) []entity.PermissionType {
	caps := []entity.PermissionType{entity.PermissionTypeMicrophone}
	if requestStorage {
		caps = append(caps, entity.PermissionTypeStorageRead, entity.PermissionTypeStorageWrite)
	}
	return caps
}
