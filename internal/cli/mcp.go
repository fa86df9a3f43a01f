package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modu-ai/routegen/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the generate_routes tool over MCP on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the
generate_routes tool. Relative paths in tool calls resolve against the
directory the server was started in.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if deps == nil {
			return fmt.Errorf("dependencies not initialized")
		}
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		return mcp.NewServer(cwd, deps.Logger).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
