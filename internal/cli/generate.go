package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modu-ai/routegen/internal/generator"
	"github.com/modu-ai/routegen/internal/routes"
	"github.com/modu-ai/routegen/internal/ui"
	"github.com/modu-ai/routegen/pkg/routegen"
)

// ErrGenerationFailed indicates at least one file could not be written.
var ErrGenerationFailed = errors.New("some files could not be generated")

// defaultOutputFolder is where stubs go when --out is not given.
const defaultOutputFolder = "src/views"

var generateCmd = &cobra.Command{
	Use:     "generate <routes-file>",
	Aliases: []string{"gen"},
	Short:   "Create stub files for every route in a route document",
	Long: `Read a JSON or YAML route document and create one stub file per route
below the output folder. Existing files are left untouched.

Options are layered: built-in defaults, then .routegen.yaml (or --config),
then ROUTEGEN_* environment variables (a .env file is loaded first), then
flags.

Examples:
  routegen generate routes.json
  routegen generate router.yaml --select '$.app.routes' --suffix tsx --index
  routegen generate routes.json --out src/pages --vue3 --css scss --dry-run
  routegen generate routes.json --markdown`,
	Args:    cobra.ExactArgs(1),
	PreRunE: validateOptionFlags,
	RunE:    runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringP("out", "o", defaultOutputFolder, "Output folder, relative to the current directory")
	f.String("select", "", "JSONPath selecting the route array in the document (default: $)")
	f.String("config", "", "Options file (default: .routegen.yaml when present)")
	f.Bool("dry-run", false, "Print the planned files without writing anything")
	f.Bool("json", false, "Print the result as JSON")
	f.Bool("markdown", false, "Print every outcome as a markdown table instead of the summary card")
	addOptionFlags(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	overrides, err := optionOverrides(cmd)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	opts, err := deps.Config.Load(cwd, getStringFlag(cmd, "config"), overrides)
	if err != nil {
		return err
	}

	nodes, err := routes.LoadFile(args[0], getStringFlag(cmd, "select"))
	if err != nil {
		return err
	}
	if err := routes.ValidateShape(nodes, opts.Fields); err != nil {
		return err
	}

	var tracker ui.Tracker
	gen, err := routegen.NewDiskGenerator(getStringFlag(cmd, "out"),
		generator.WithLogger(deps.Logger),
		generator.WithOutcomeHook(func(o generator.Outcome) {
			if tracker != nil {
				tracker.Record(o)
			}
		}),
	)
	if err != nil {
		return err
	}

	plan, err := gen.Plan(nodes, opts)
	if err != nil {
		return err
	}

	asJSON := getBoolFlag(cmd, "json")
	out := cmd.OutOrStdout()

	if getBoolFlag(cmd, "dry-run") {
		if asJSON {
			return writeJSON(cmd, planJSON(plan))
		}
		rendered, err := ui.RenderMarkdown(deps.Theme, ui.PlanMarkdown(plan), 100)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(out, rendered)
		return nil
	}

	if !asJSON {
		tracker = ui.NewProgress(deps.Theme, deps.Headless, cmd.ErrOrStderr()).
			Start("Generating stubs", len(plan.Entries))
	}
	report, err := gen.Execute(cmd.Context(), plan)
	if tracker != nil {
		tracker.Done()
	}
	if err != nil {
		return err
	}

	switch {
	case asJSON:
		if err := writeJSON(cmd, report); err != nil {
			return err
		}
	case getBoolFlag(cmd, "markdown"):
		rendered, err := ui.RenderMarkdown(deps.Theme, ui.ReportMarkdown(report), 100)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(out, rendered)
	default:
		_, _ = fmt.Fprintln(out, ui.RenderReportCard(deps.Theme, report, getStringFlag(cmd, "out")))
	}

	if !report.OK() {
		return fmt.Errorf("%w: %d failed", ErrGenerationFailed, report.Failed)
	}
	return nil
}

// plannedFile is the JSON shape of a dry-run entry.
type plannedFile struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Error     string `json:"error,omitempty"`
}

func planJSON(plan *generator.Plan) []plannedFile {
	files := make([]plannedFile, len(plan.Entries))
	for i, e := range plan.Entries {
		files[i] = plannedFile{Path: e.Target, Name: e.Name, Duplicate: e.Duplicate}
		if e.Err != nil {
			files[i].Error = e.Err.Error()
		}
	}
	return files
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
