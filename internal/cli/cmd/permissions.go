package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/codeora/internal/cli/model"
	"github.com/bnema/codeora/internal/cli/styles"
)

var (
	resetOrigin string
	resetForce  bool

	stdinIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

var permissionsCmd = &cobra.Command{
	Use:     "permissions",
	Aliases: []string{"perms"},
	Short:   "Inspect and reset remembered permission decisions",
}

var permissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List remembered permission decisions",
	Args:  cobra.NoArgs,
	RunE:  runPermissionsList,
}

var permissionsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget permission decisions so the page asks again",
	Long: `Forget remembered permission decisions. The next time the page needs the
microphone, codeora asks again.

Asks for confirmation first; use --force to skip the prompt (required when
stdin is not a terminal).

Examples:
  codeora permissions reset                                   # all origins
  codeora permissions reset --origin https://chat.example.com
  codeora permissions reset --force`,
	Args: cobra.NoArgs,
	RunE: runPermissionsReset,
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
	permissionsCmd.AddCommand(permissionsListCmd)
	permissionsCmd.AddCommand(permissionsResetCmd)
	permissionsResetCmd.Flags().StringVar(&resetOrigin, "origin", "", "only reset decisions for this origin")
	permissionsResetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "reset without prompting")
}

func runPermissionsList(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	records, err := a.Permissions.List(a.Ctx())
	if err != nil {
		return fmt.Errorf("list permissions: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewPermissionsRenderer(a.Theme).RenderList(records))
	return nil
}

func runPermissionsReset(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	if !resetForce {
		if !stdinIsTerminal() {
			return fmt.Errorf("refusing to reset without a terminal to confirm on; pass --force")
		}
		ok, err := model.Confirm(a.Theme, "Forget remembered permissions?", resetScope(resetOrigin))
		if err != nil {
			return fmt.Errorf("confirm reset: %w", err)
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render("Nothing removed"))
			return nil
		}
	}

	removed, err := a.Permissions.DeleteAll(a.Ctx(), resetOrigin)
	if err != nil {
		return fmt.Errorf("reset permissions: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewPermissionsRenderer(a.Theme).RenderReset(resetOrigin, removed))
	return nil
}

func resetScope(origin string) string {
	if origin == "" {
		return "all origins"
	}
	return origin
}
