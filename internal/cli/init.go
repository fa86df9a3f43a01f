package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modu-ai/routegen/internal/config"
	"github.com/modu-ai/routegen/internal/defs"
	"github.com/modu-ai/routegen/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .routegen.yaml options file",
	Long: `Create .routegen.yaml in the current directory (or --path) with the
options generate should use by default.

On a terminal a short wizard asks for each option; flags pre-fill the
answers. With --non-interactive, or without a terminal, flags and
defaults are written as-is. An existing file is kept unless --force is set.`,
	Args:    cobra.NoArgs,
	PreRunE: validateOptionFlags,
	RunE:    runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("path", defs.ConfigYAML, "Options file to write")
	initCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags and defaults")
	initCmd.Flags().Bool("force", false, "Replace an existing options file")
	addOptionFlags(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	path := getStringFlag(cmd, "path")
	force := getBoolFlag(cmd, "force")
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to replace it)", config.ErrConfigExists, path)
		}
	}

	overrides, err := optionOverrides(cmd)
	if err != nil {
		return err
	}
	opts, err := config.Resolve(overrides)
	if err != nil {
		return err
	}

	if !getBoolFlag(cmd, "non-interactive") && !deps.Headless.IsHeadless() {
		opts, err = ui.NewInitWizard(deps.Theme, deps.Headless).Run(cmd.Context(), opts)
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, nothing written.")
				return nil
			}
			return err
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := config.Save(path, opts, force); err != nil {
		return err
	}

	deps.Logger.Debug("options file written", "path", path)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
