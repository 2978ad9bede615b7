package entity

import "slices"

// PermissionType identifies a capability the page or the shell may need.
type PermissionType string

const (
	// PermissionTypeMicrophone is audio capture. Always requested at startup.
	PermissionTypeMicrophone PermissionType = "microphone"

	// PermissionTypeCamera is video capture.
	PermissionTypeCamera PermissionType = "camera"

	// PermissionTypeStorageRead lets the page read user files through the picker.
	PermissionTypeStorageRead PermissionType = "storage_read"

	// PermissionTypeStorageWrite lets the page save downloads.
	PermissionTypeStorageWrite PermissionType = "storage_write"

	// PermissionTypeDeviceInfo is media device enumeration.
	PermissionTypeDeviceInfo PermissionType = "device_info"

	// PermissionTypeDisplay is screen capture.
	PermissionTypeDisplay PermissionType = "display"

	PermissionTypeNotification PermissionType = "notification"
	PermissionTypeGeolocation  PermissionType = "geolocation"
	PermissionTypeClipboard    PermissionType = "clipboard"
	PermissionTypePointerLock  PermissionType = "pointer_lock"
)

// PermissionDecision represents the user's decision for a permission.
type PermissionDecision string

const (
	// PermissionGranted means the permission was allowed.
	PermissionGranted PermissionDecision = "granted"

	// PermissionDenied means the permission was denied.
	PermissionDenied PermissionDecision = "denied"

	// PermissionPrompt means no decision has been made yet (default state).
	PermissionPrompt PermissionDecision = "prompt"
)

// ParsePermissionDecision accepts the stored string form.
func ParsePermissionDecision(s string) (PermissionDecision, bool) {
	switch d := PermissionDecision(s); d {
	case PermissionGranted, PermissionDenied, PermissionPrompt:
		return d, true
	default:
		return "", false
	}
}

// PermissionRecord stores a permission decision for a specific origin and type.
type PermissionRecord struct {
	Origin    string
	Type      PermissionType
	Decision  PermissionDecision
	UpdatedAt int64 // unix seconds
}

// IsGranted returns true if the permission is granted.
func (p *PermissionRecord) IsGranted() bool {
	return p != nil && p.Decision == PermissionGranted
}

// IsDenied returns true if the permission is denied.
func (p *PermissionRecord) IsDenied() bool {
	return p != nil && p.Decision == PermissionDenied
}

// IsMediaCapture reports whether the type is backed by a capture device.
func IsMediaCapture(t PermissionType) bool {
	return t == PermissionTypeMicrophone || t == PermissionTypeCamera
}

// IsAutoAllow returns true for low risk requests WebKit makes on its own
// (listing devices before asking for one).
func IsAutoAllow(t PermissionType) bool {
	return t == PermissionTypeDeviceInfo
}

// CanPersist returns false for types whose grant must not outlive the
// request.
func CanPersist(t PermissionType) bool {
	switch t {
	case PermissionTypeDisplay, PermissionTypeDeviceInfo, PermissionTypePointerLock:
		return false
	default:
		return true
	}
}

// PermissionTypesToStrings converts permission types to strings for logging.
func PermissionTypesToStrings(types []PermissionType) []string {
	result := make([]string, len(types))
	for i, t := range types {
		result[i] = string(t)
	}
	return result
}

// PermissionState is the shell's view of each capability. Types that were
// never asked for read as PermissionPrompt.
type PermissionState map[PermissionType]PermissionDecision

// Decision returns the recorded decision for t.
func (s PermissionState) Decision(t PermissionType) PermissionDecision {
	if d, ok := s[t]; ok {
		return d
	}
	return PermissionPrompt
}

// Granted reports whether every type in types is granted. An empty list is
// never granted.
func (s PermissionState) Granted(types ...PermissionType) bool {
	if len(types) == 0 {
		return false
	}
	for _, t := range types {
		if s.Decision(t) != PermissionGranted {
			return false
		}
	}
	return true
}

// Ungranted returns the subset of types that still need a prompt, in
// request order and without duplicates.
func (s PermissionState) Ungranted(types []PermissionType) []PermissionType {
	var out []PermissionType
	for _, t := range types {
		if s.Decision(t) != PermissionGranted && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

// AnyDenied reports whether one of types ended up denied.
func (s PermissionState) AnyDenied(types []PermissionType) bool {
	return slices.ContainsFunc(types, func(t PermissionType) bool {
		return s.Decision(t) == PermissionDenied
	})
}

// Clone returns an independent copy safe to hand to callbacks.
func (s PermissionState) Clone() PermissionState {
	out := make(PermissionState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
