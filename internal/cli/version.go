package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/routegen/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the routegen version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "routegen %s\n", version.GetFullVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
