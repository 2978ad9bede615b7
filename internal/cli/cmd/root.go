// Package cmd provides Cobra CLI commands for codeora.
package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/codeora/internal/cli"
	"github.com/bnema/codeora/internal/domain/build"
	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "codeora",
		Short: "A single-page desktop shell for the codeora chat app",
		Long: `Codeora opens the codeora chat web app in a dedicated GTK4/WebKitGTK window.

The window shows one fixed page, grants it the microphone when you allow it,
shows its toasts natively and falls back to a local screen when the page or
the network is unavailable.

Running codeora without a subcommand starts the window.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			if err := config.Init(configPath); err != nil {
				return fmt.Errorf("initialize configuration: %w", err)
			}
			app = cli.NewApp(config.Get())
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runGUI,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/codeora/config.toml)")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}
