package usecase

import (
	"context"
	"strings"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/logging"
)

const (
	defaultMinGTK4Version      = "4.14"
	defaultMinWebKitGTKVersion = "2.44"
	defaultMinGLibVersion      = "2.80"
)

// RuntimeDependencyStatus is the result of checking one native library.
type RuntimeDependencyStatus struct {
	PkgConfigName   string
	DisplayName     string
	Installed       bool
	Version         string
	RequiredVersion string
	OK              bool
	Error           string
}

// DiagnoseOutput is what `codeora doctor` prints.
type DiagnoseOutput struct {
	// OK only reflects the runtime libraries; portal and network are
	// informational since the shell degrades without them.
	OK      bool
	Runtime []RuntimeDependencyStatus

	PortalChecked   bool
	PortalAvailable bool

	NetworkChecked bool
	Online         bool
}

// DiagnoseUseCase checks what the GUI needs on this host.
type DiagnoseUseCase struct {
	probe   port.RuntimeVersionProbe
	portal  port.PortalAvailability
	network port.NetworkMonitor
}

// NewDiagnoseUseCase creates the use case. portal and network may be nil to
// skip those checks.
func NewDiagnoseUseCase(probe port.RuntimeVersionProbe, portal port.PortalAvailability, network port.NetworkMonitor) *DiagnoseUseCase {
	return &DiagnoseUseCase{probe: probe, portal: portal, network: network}
}

// Execute runs every check and never fails; problems end up in the output.
func (uc *DiagnoseUseCase) Execute(ctx context.Context) *DiagnoseOutput {
	log := logging.FromContext(ctx).With().Str("component", "doctor").Logger()

	out := &DiagnoseOutput{
		OK: true,
		Runtime: []RuntimeDependencyStatus{
			{PkgConfigName: "gtk4", DisplayName: "GTK4", RequiredVersion: defaultMinGTK4Version},
			{PkgConfigName: "webkitgtk-6.0", DisplayName: "WebKitGTK 6.0", RequiredVersion: defaultMinWebKitGTKVersion},
			{PkgConfigName: "glib-2.0", DisplayName: "GLib", RequiredVersion: defaultMinGLibVersion},
		},
	}

	for i := range out.Runtime {
		status := &out.Runtime[i]
		if uc.probe == nil {
			status.Error = port.ErrPkgConfigMissing.Error()
			out.OK = false
			continue
		}

		version, err := uc.probe.PkgConfigModVersion(ctx, status.PkgConfigName)
		if err != nil {
			status.Error = err.Error()
			out.OK = false
			continue
		}
		status.Installed = true
		status.Version = strings.TrimSpace(version)

		cmp, ok := compareVersion(status.Version, status.RequiredVersion)
		if !ok {
			status.Error = "could not parse version"
			out.OK = false
			continue
		}
		status.OK = cmp >= 0
		if !status.OK {
			out.OK = false
		}
	}

	if uc.portal != nil {
		out.PortalChecked = true
		out.PortalAvailable = uc.portal.Supported()
	}
	if uc.network != nil {
		out.NetworkChecked = true
		out.Online = uc.network.NetworkAvailable(ctx)
	}

	log.Debug().
		Bool("ok", out.OK).
		Bool("portal", out.PortalAvailable).
		Bool("online", out.Online).
		Msg("diagnostics complete")
	return out
}

// compareVersion compares two dotted versions. ok is false if either cannot
// be parsed.
func compareVersion(a, b string) (cmp int, ok bool) {
	av, ok := parseVersionPrefix(a)
	if !ok {
		return 0, false
	}
	bv, ok := parseVersionPrefix(b)
	if !ok {
		return 0, false
	}

	for i := range max(len(av), len(bv)) {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		switch {
		case x > y:
			return 1, true
		case x < y:
			return -1, true
		}
	}
	return 0, true
}

// parseVersionPrefix reads the leading numeric segments of s, e.g. 2.46.1
// from "2.46.1-beta".
func parseVersionPrefix(s string) ([]int, bool) {
	var parts []int
	cur, inNum := 0, false

loop:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			inNum = true
			cur = cur*10 + int(c-'0')
		case c == '.':
			if !inNum {
				return nil, false
			}
			parts = append(parts, cur)
			cur, inNum = 0, false
		default:
			break loop
		}
	}
	if inNum {
		parts = append(parts, cur)
	}
	return parts, len(parts) > 0
}
