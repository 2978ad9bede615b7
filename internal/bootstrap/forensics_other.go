//go:build !linux && !darwin

package bootstrap

import (
	"context"
	"runtime/debug"
)

// EnableCrashForensics makes a crash in cgo code leave a full traceback.
func EnableCrashForensics() {
	debug.SetTraceback("crash")
}

func logCoreDumpLimits(context.Context) {}
