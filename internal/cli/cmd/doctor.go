package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/application/usecase"
	"github.com/bnema/codeora/internal/bootstrap"
	"github.com/bnema/codeora/internal/cli/styles"
	"github.com/bnema/codeora/internal/infrastructure/deps"
	"github.com/bnema/codeora/internal/infrastructure/portal"
	"github.com/spf13/cobra"
)

const doctorTimeout = 10 * time.Second

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check runtime requirements and diagnose issues",
	Long: `Doctor checks what the window needs on this machine:
- GTK4, WebKitGTK 6.0 and GLib versions (via pkg-config)
- the XDG desktop portal used for the microphone prompt
- network reachability of the configured page

Only missing or outdated libraries make doctor fail; without the portal or
the network codeora still starts and degrades.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, cancel := context.WithTimeout(a.Ctx(), doctorTimeout)
	defer cancel()

	devices := portal.NewDevicePortal(ctx)
	defer func() { _ = devices.Close() }()

	uc := usecase.NewDiagnoseUseCase(deps.NewPkgConfigProbe(), devices, bootstrap.NewNetworkMonitor(a.Config))
	out := uc.Execute(ctx)

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(a.Theme).Render(doctorReport(out, a.Config.App.URL)))

	if !out.OK {
		return fmt.Errorf("runtime requirements not met")
	}
	return nil
}

func doctorReport(out *usecase.DiagnoseOutput, pageURL string) styles.DoctorReport {
	report := styles.DoctorReport{OverallOK: out.OK}

	for _, c := range out.Runtime {
		report.Runtime = append(report.Runtime, styles.DoctorRuntimeCheck{
			Name:            c.DisplayName,
			Installed:       c.Installed,
			Version:         c.Version,
			RequiredVersion: c.RequiredVersion,
			OK:              c.OK,
			Error:           c.Error,
		})
	}

	if out.PortalChecked {
		check := styles.DoctorServiceCheck{Name: "Device portal", OK: out.PortalAvailable}
		if !out.PortalAvailable {
			check.Detail = "not available, the in-window prompt will be used"
		}
		report.Services = append(report.Services, check)
	}
	if out.NetworkChecked {
		check := styles.DoctorServiceCheck{Name: "Network", OK: out.Online, Detail: pageURL}
		if !out.Online {
			check.Detail = pageURL + " unreachable, the offline screen will be shown"
		}
		report.Services = append(report.Services, check)
	}
	return report
}

var _ port.PortalAvailability = (*portal.DevicePortal)(nil)
