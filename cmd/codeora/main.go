package main

import (
	"os"
	"runtime"

	"github.com/bnema/codeora/internal/bootstrap"
	"github.com/bnema/codeora/internal/cli/cmd"
	"github.com/bnema/codeora/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must run on the thread that started the process.
	runtime.LockOSThread()
}

func main() {
	bootstrap.EnableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	os.Exit(cmd.Execute())
}
