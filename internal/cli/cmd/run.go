package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/codeora/internal/bootstrap"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the codeora window",
	Long:  `Open the codeora window. This is what running codeora without a subcommand does.`,
	Args:  cobra.NoArgs,
	RunE:  runGUI,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runGUI(_ *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	session, ctx, err := bootstrap.StartSession(a.Config)
	if err != nil {
		return err
	}
	defer session.Cleanup()

	session.Logger.Info().
		Str("version", a.BuildInfo.Version).
		Str("commit", a.BuildInfo.Commit).
		Str("url", a.Config.App.URL).
		Msg("starting codeora")

	// GTK only sees the program name; flags were consumed by cobra.
	if code := bootstrap.RunGUI(ctx, a.Config, os.Args[:1]); code != 0 {
		return fmt.Errorf("codeora exited with status %d", code)
	}
	return nil
}
