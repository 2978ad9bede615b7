package cmd

import (
	"fmt"

	"github.com/bnema/codeora/internal/cli/styles"
	"github.com/bnema/codeora/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration locations",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file, database and log locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	configFile := ""
	if m := config.GetManager(); m != nil {
		configFile = m.GetConfigFile()
	}

	logDir := ""
	if a.Config.Logging.EnableFileLog {
		logDir = a.Config.Logging.LogDir
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.RenderPaths([]styles.PathEntry{
		{Icon: styles.IconConfig, Label: "Config", Path: configFile},
		{Icon: styles.IconDatabase, Label: "Database", Path: a.Config.Database.Path},
		{Icon: styles.IconLogs, Label: "Logs", Path: logDir},
	}))
	return nil
}
