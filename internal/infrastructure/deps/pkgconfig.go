// Package deps probes the native libraries the GUI links against.
package deps

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bnema/codeora/internal/application/port"
)

// PkgConfigProbe uses pkg-config to query module versions.
type PkgConfigProbe struct {
	lookPath func(string) (string, error)
}

var _ port.RuntimeVersionProbe = (*PkgConfigProbe)(nil)

func NewPkgConfigProbe() *PkgConfigProbe {
	return &PkgConfigProbe{lookPath: exec.LookPath}
}

func (p *PkgConfigProbe) PkgConfigModVersion(ctx context.Context, pkgName string) (string, error) {
	pc, err := p.lookPath("pkg-config")
	if err != nil {
		return "", &port.PkgConfigError{Package: pkgName, Err: port.ErrPkgConfigMissing}
	}

	out, err := exec.CommandContext(ctx, pc, "--modversion", pkgName).CombinedOutput()
	if err != nil {
		return "", &port.PkgConfigError{
			Package: pkgName,
			Output:  strings.TrimSpace(string(out)),
			Err:     port.ErrPkgConfigPackageMissing,
		}
	}
	return strings.TrimSpace(string(out)), nil
}
