package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/modu-ai/routegen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "routegen",
	Short: "Generate page stub files from a route tree",
	Long: `routegen turns a nested route configuration into a matching directory
tree of page stubs (Vue 2, Vue 3, JSX or TSX components).

Existing files are never overwritten, so it is safe to run again after
adding routes.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if deps != nil {
			deps.SetVerbose(getBoolFlag(cmd, "verbose"))
		}
	},
}

// @MX:ANCHOR: [AUTO] Execute is the main entry point for the routegen CLI
// @MX:REASON: [AUTO] fan_in=2, called from cmd/routegen/main.go and root_test.go
// Execute initializes dependencies and runs the root command. An interrupt
// cancels the command's context.
func Execute() error {
	InitDependencies()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("routegen %s\n", version.GetVersion()))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every file operation")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
