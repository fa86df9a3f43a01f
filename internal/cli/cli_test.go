package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/modu-ai/routegen/internal/config"
	"github.com/modu-ai/routegen/internal/defs"
)

// setupCLI installs test dependencies, moves into a fresh directory and
// returns it.
func setupCLI(t *testing.T) string {
	t.Helper()

	d := NewDependencies(io.Discard, nil)
	d.Theme.NoColor = true
	d.Headless.ForceHeadless(true)
	SetDeps(d)
	t.Cleanup(func() { SetDeps(nil) })

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// resetFlags restores every flag of cmd to its default between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	return string(data)
}

const adminRoutes = `[{"name":"Home","path":"home"},{"name":"Admin","path":"admin","children":[{"name":"Users","path":"users"}]}]`

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"generate": false, "init": false, "mcp": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s should be registered on the root command", name)
		}
	}
}

func TestGenerateDefaults(t *testing.T) {
	dir := setupCLI(t)
	writeFile(t, filepath.Join(dir, "routes.json"), adminRoutes)

	out, err := run(t, "generate", "routes.json")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	if !strings.Contains(readFile(t, filepath.Join(dir, "src", "views", "home.vue")), "<h1>Home</h1>") {
		t.Error("home.vue missing its name")
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "views", "admin", "users.vue")); err != nil {
		t.Errorf("admin/users.vue missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "views", "admin.vue")); !os.IsNotExist(err) {
		t.Error("admin.vue must not exist without --parent-folder")
	}
	if !strings.Contains(out, "Routes generated") {
		t.Errorf("missing summary card:\n%s", out)
	}
}

func TestGenerateFlagsOverrideFileAndEnv(t *testing.T) {
	dir := setupCLI(t)
	writeFile(t, filepath.Join(dir, "router.yaml"), "app:\n  pages:\n    - title: Home\n      url: home\n")
	writeFile(t, filepath.Join(dir, defs.ConfigYAML), "name: title\npath: url\nfileSuffix: jsx\n")
	t.Setenv("ROUTEGEN_FILE_SUFFIX", "vue")

	if _, err := run(t, "generate", "router.yaml", "--select", "$.app.pages", "--suffix", "tsx", "--out", "pages"); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	got := readFile(t, filepath.Join(dir, "pages", "home.tsx"))
	if !strings.Contains(got, "const Home = () => {") {
		t.Errorf("home.tsx = %q", got)
	}
}

func TestGenerateJSONReport(t *testing.T) {
	dir := setupCLI(t)
	writeFile(t, filepath.Join(dir, "routes.json"), adminRoutes)

	out, err := run(t, "generate", "routes.json", "--json", "--parent-folder", "--concurrency", "2")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	var report struct {
		Created int `json:"created"`
		Skipped int `json:"skipped"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if report.Created != 3 {
		t.Errorf("created = %d, want 3", report.Created)
	}

	out, err = run(t, "generate", "routes.json", "--json", "--parent-folder")
	if err != nil {
		t.Fatalf("second generate error: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if report.Created != 0 || report.Skipped != 3 {
		t.Errorf("second run created %d skipped %d", report.Created, report.Skipped)
	}
}

func TestGenerateDryRun(t *testing.T) {
	dir := setupCLI(t)
	writeFile(t, filepath.Join(dir, "routes.json"), adminRoutes)

	out, err := run(t, "generate", "routes.json", "--dry-run", "--json", "--index")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	var planned []plannedFile
	if err := json.Unmarshal([]byte(out), &planned); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(planned) != 4 || !planned[1].Duplicate {
		t.Errorf("planned = %+v", planned)
	}
	if _, err := os.Stat(filepath.Join(dir, "src")); !os.IsNotExist(err) {
		t.Error("dry run must not write anything")
	}
}

func TestGenerateTemplateFile(t *testing.T) {
	dir := setupCLI(t)
	writeFile(t, filepath.Join(dir, "routes.json"), `[{"name":"Home","path":"home"}]`)
	writeFile(t, filepath.Join(dir, "stub.txt"), "<!-- [name] -->\n")

	if _, err := run(t, "generate", "routes.json", "--template-file", "stub.txt"); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if got := readFile(t, filepath.Join(dir, "src", "views", "home.vue")); got != "<!-- Home -->\n" {
		t.Errorf("home.vue = %q", got)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		routes  string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "bad_suffix_flag", routes: adminRoutes, args: []string{"--suffix", "svelte"}, wantMsg: "invalid --suffix"},
		{name: "bad_css_flag_for_vue", routes: adminRoutes, args: []string{"--css", "sass"}, wantErr: config.ErrInvalidOption, wantMsg: "css, less, scss"},
		{name: "zero_concurrency", routes: adminRoutes, args: []string{"--concurrency", "0"}, wantErr: config.ErrInvalidOption},
		{name: "empty_routes", routes: `[]`, wantMsg: "must not be empty"},
		{name: "missing_alias", routes: adminRoutes, args: []string{"--name-key", "title"}, wantMsg: "title"},
		{name: "missing_file", args: []string{}, wantMsg: "routes.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupCLI(t)
			if tt.routes != "" {
				writeFile(t, filepath.Join(dir, "routes.json"), tt.routes)
			}

			_, err := run(t, append([]string{"generate", "routes.json"}, tt.args...)...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
			if _, statErr := os.Stat(filepath.Join(dir, "src")); !os.IsNotExist(statErr) {
				t.Error("nothing may be written when generate is rejected")
			}
		})
	}
}

func TestGenerateIgnoresCSSForReact(t *testing.T) {
	dir := setupCLI(t)
	writeFile(t, filepath.Join(dir, "routes.json"), `[{"name":"Home","path":"home"}]`)

	if _, err := run(t, "generate", "routes.json", "--suffix", "tsx", "--css", "sass"); err != nil {
		t.Fatalf("--css must not be checked for tsx stubs: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "views", "home.tsx")); err != nil {
		t.Errorf("home.tsx missing: %v", err)
	}
}

func TestGenerateMarkdownReport(t *testing.T) {
	dir := setupCLI(t)
	writeFile(t, filepath.Join(dir, "routes.json"), adminRoutes)

	out, err := run(t, "generate", "routes.json", "--markdown")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	for _, want := range []string{"Generation report", "2 created, 0 skipped, 0 failed", "src/views/home.vue"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Routes generated") {
		t.Error("--markdown replaces the summary card")
	}
}

func TestGenerateReportsFailures(t *testing.T) {
	dir := setupCLI(t)
	writeFile(t, filepath.Join(dir, "routes.json"), `[{"name":"Up","path":"../../up"},{"name":"Home","path":"home"}]`)

	_, err := run(t, "generate", "routes.json")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "views", "home.vue")); err != nil {
		t.Error("valid routes must still be written when others fail")
	}
}

func TestInitNonInteractive(t *testing.T) {
	dir := setupCLI(t)

	if _, err := run(t, "init", "--non-interactive", "--suffix", "tsx", "--index"); err != nil {
		t.Fatalf("init error: %v", err)
	}

	raw, err := config.NewLoader().Load(dir, "")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	opts, err := config.Resolve(raw)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if opts.FileSuffix != "tsx" || !opts.IsIndex {
		t.Errorf("written options = %+v", opts)
	}

	if _, err := run(t, "init", "--non-interactive"); !errors.Is(err, config.ErrConfigExists) {
		t.Errorf("expected ErrConfigExists without --force, got %v", err)
	}
	if _, err := run(t, "init", "--non-interactive", "--force"); err != nil {
		t.Errorf("init --force error: %v", err)
	}
}

func TestInitHeadlessSkipsWizard(t *testing.T) {
	dir := setupCLI(t)

	if _, err := run(t, "init", "--path", "conf/routegen.yaml"); err != nil {
		t.Fatalf("init error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "conf", "routegen.yaml")); err != nil {
		t.Errorf("options file missing: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(out, "routegen v") {
		t.Errorf("version output = %q", out)
	}
}
