package cmd

import (
	"fmt"

	"github.com/bnema/codeora/assets"
	"github.com/bnema/codeora/internal/application/port"
	"github.com/bnema/codeora/internal/cli/styles"
	"github.com/bnema/codeora/internal/infrastructure/desktop"
	"github.com/spf13/cobra"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Manage the application launcher entry",
	Long: `Install or remove the freedesktop launcher entry and icon so codeora
shows up in your application menu and its window groups with the icon.`,
}

var desktopInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the launcher entry and icon",
	Args:  cobra.NoArgs,
	RunE:  runDesktopInstall,
}

var desktopRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the launcher entry and icon",
	Args:  cobra.NoArgs,
	RunE:  runDesktopRemove,
}

var desktopStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the launcher entry is installed",
	Args:  cobra.NoArgs,
	RunE:  runDesktopStatus,
}

func init() {
	rootCmd.AddCommand(desktopCmd)
	desktopCmd.AddCommand(desktopInstallCmd, desktopRemoveCmd, desktopStatusCmd)
}

func desktopIntegration() (port.DesktopIntegration, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return desktop.New(a.Config.App.ApplicationID, a.Config.App.Title), nil
}

func runDesktopInstall(cmd *cobra.Command, _ []string) error {
	integration, err := desktopIntegration()
	if err != nil {
		return err
	}
	a := GetApp()

	if _, err := integration.InstallIcon(a.Ctx(), assets.LogoSVG); err != nil {
		return err
	}
	if _, err := integration.InstallDesktopFile(a.Ctx()); err != nil {
		return err
	}
	return printDesktopStatus(cmd, integration)
}

func runDesktopRemove(cmd *cobra.Command, _ []string) error {
	integration, err := desktopIntegration()
	if err != nil {
		return err
	}
	a := GetApp()

	if err := integration.RemoveDesktopFile(a.Ctx()); err != nil {
		return err
	}
	if err := integration.RemoveIcon(a.Ctx()); err != nil {
		return err
	}
	return printDesktopStatus(cmd, integration)
}

func runDesktopStatus(cmd *cobra.Command, _ []string) error {
	integration, err := desktopIntegration()
	if err != nil {
		return err
	}
	return printDesktopStatus(cmd, integration)
}

func printDesktopStatus(cmd *cobra.Command, integration port.DesktopIntegration) error {
	a := GetApp()
	status, err := integration.GetStatus(a.Ctx())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.RenderDesktopStatus(status))
	return nil
}
