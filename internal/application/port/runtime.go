package port

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrPkgConfigMissing indicates pkg-config is not available on the host.
	ErrPkgConfigMissing = errors.New("pkg-config missing")
	// ErrPkgConfigPackageMissing indicates the requested .pc package was not found.
	ErrPkgConfigPackageMissing = errors.New("pkg-config package missing")
)

// PkgConfigError wraps an error returned by pkg-config probing.
type PkgConfigError struct {
	Package string
	Output  string
	Err     error
}

func (e *PkgConfigError) Error() string {
	msg := fmt.Sprintf("pkg-config: %s", e.Package)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PkgConfigError) Unwrap() error { return e.Err }

// RuntimeVersionProbe reports the installed version of a native library.
type RuntimeVersionProbe interface {
	PkgConfigModVersion(ctx context.Context, pkgName string) (string, error)
}

// PortalAvailability reports whether the desktop device portal answered.
type PortalAvailability interface {
	Supported() bool
}
