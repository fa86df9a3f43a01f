package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/routegen/internal/defs"
	"github.com/modu-ai/routegen/pkg/models"
)

// optionFlag maps a command-line flag onto an option key.
type optionFlag struct {
	flag string
	key  string
}

var (
	stringOptionFlags = []optionFlag{
		{"suffix", defs.KeyFileSuffix},
		{"css", defs.KeyCSSCompiler},
		{"name-key", defs.KeyName},
		{"path-key", defs.KeyPath},
		{"children-key", defs.KeyChildren},
	}
	boolOptionFlags = []optionFlag{
		{"vue3", defs.KeyIsVue3},
		{"typescript", defs.KeyIsTypeScript},
		{"index", defs.KeyIsIndex},
		{"parent-folder", defs.KeyParentFolder},
	}
)

// addOptionFlags registers the flags that override generation options.
func addOptionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("suffix", "", "Stub file type: "+strings.Join(models.ValidFileSuffixes(), ", "))
	f.String("css", "", "Vue style language: css, less or scss")
	f.String("name-key", "", "Route field holding the display name")
	f.String("path-key", "", "Route field holding the path")
	f.String("children-key", "", "Route field holding child routes")
	f.Bool("vue3", false, "Generate Vue 3 components")
	f.Bool("typescript", true, "Add lang=\"ts\" to Vue 3 <script> blocks")
	f.Bool("index", false, "Write index.<ext> into every route folder")
	f.Bool("parent-folder", false, "Give routes with children their own file")
	f.String("template-file", "", "File whose content replaces the built-in stub ([name] is substituted)")
	f.Int("concurrency", 0, "Maximum number of files written at once")
}

// optionOverrides collects the option flags the user actually set, so
// unset flags never mask the options file or environment.
func optionOverrides(cmd *cobra.Command) (map[string]any, error) {
	overrides := make(map[string]any)
	f := cmd.Flags()

	for _, of := range stringOptionFlags {
		if f.Changed(of.flag) {
			overrides[of.key] = getStringFlag(cmd, of.flag)
		}
	}
	for _, of := range boolOptionFlags {
		if f.Changed(of.flag) {
			overrides[of.key] = getBoolFlag(cmd, of.flag)
		}
	}
	if f.Changed("concurrency") {
		n, err := f.GetInt("concurrency")
		if err != nil {
			return nil, err
		}
		overrides[defs.KeyConcurrency] = n
	}
	if path := getStringFlag(cmd, "template-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read template file: %w", err)
		}
		overrides[defs.KeyContent] = string(data)
	}
	return overrides, nil
}

// validateOptionFlags rejects malformed flag values before any work. --css
// is left to option validation, which only constrains it for vue stubs.
func validateOptionFlags(cmd *cobra.Command, _ []string) error {
	if s := getStringFlag(cmd, "suffix"); s != "" && !slices.Contains(models.ValidFileSuffixes(), s) {
		return fmt.Errorf("invalid --suffix %q: must be one of %s", s, strings.Join(models.ValidFileSuffixes(), ", "))
	}
	return nil
}
