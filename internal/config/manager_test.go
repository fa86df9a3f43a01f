package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/modu-ai/routegen/internal/defs"
	"github.com/modu-ai/routegen/pkg/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
}

func TestLoaderMissingDefaultFile(t *testing.T) {
	t.Parallel()

	l := NewLoader()
	raw, err := l.Load(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(raw) != 0 {
		t.Errorf("expected empty map, got %v", raw)
	}
	if l.Source() != "" {
		t.Errorf("Source() = %q, want empty", l.Source())
	}
}

func TestLoaderMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(t.TempDir(), "/does/not/exist.yaml")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoaderReadsYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, defs.ConfigYAML), "fileSuffix: jsx\nparentFolder: true\nconcurrency: 2\n")

	l := NewLoader()
	raw, err := l.Load(dir, "")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if raw["fileSuffix"] != "jsx" || raw["parentFolder"] != true || raw["concurrency"] != 2 {
		t.Errorf("unexpected raw options: %v", raw)
	}
	if l.Source() != filepath.Join(dir, defs.ConfigYAML) {
		t.Errorf("Source() = %q", l.Source())
	}
}

func TestLoaderInvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, defs.ConfigYAML), "fileSuffix: [unclosed\n")

	_, err := NewLoader().Load(dir, "")
	if !errors.Is(err, ErrInvalidYAML) {
		t.Fatalf("expected ErrInvalidYAML, got %v", err)
	}
}

func TestManagerPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, defs.ConfigYAML), "fileSuffix: jsx\ncssCompiler: less\nname: title\n")
	writeFile(t, filepath.Join(dir, defs.DotEnv), "ROUTEGEN_CONCURRENCY=4\n")
	t.Setenv("ROUTEGEN_FILE_SUFFIX", "vue")
	t.Setenv("ROUTEGEN_VUE3", "true")
	t.Cleanup(func() { _ = os.Unsetenv("ROUTEGEN_CONCURRENCY") })

	m := NewManager()
	if _, ok := m.Get(); ok {
		t.Fatal("Get() before Load should report false")
	}

	opts, err := m.Load(dir, "", map[string]any{"cssCompiler": "scss"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if opts.FileSuffix != models.SuffixVue {
		t.Errorf("env should override file: FileSuffix = %q", opts.FileSuffix)
	}
	if !opts.IsVue3 {
		t.Error("env ROUTEGEN_VUE3 not applied")
	}
	if opts.CSSCompiler != models.CSSSCSS {
		t.Errorf("overrides should win: CSSCompiler = %q", opts.CSSCompiler)
	}
	if opts.Fields.Name != "title" {
		t.Errorf("file value lost: Fields.Name = %q", opts.Fields.Name)
	}
	if opts.Concurrency != 4 {
		t.Errorf(".env value not applied: Concurrency = %d", opts.Concurrency)
	}

	got, ok := m.Get()
	if !ok || got.FileSuffix != opts.FileSuffix {
		t.Errorf("Get() = %+v, %v", got, ok)
	}
	if m.Source() == "" {
		t.Error("Source() should name the options file")
	}
}

func TestManagerRejectsInvalidMergedOptions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, defs.ConfigYAML), "cssCompiler: sass\n")

	_, err := NewManager().Load(dir, "", nil)
	if !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestManagerInvalidEnv(t *testing.T) {
	t.Setenv("ROUTEGEN_CONCURRENCY", "many")

	_, err := NewManager().Load(t.TempDir(), "", nil)
	if !errors.Is(err, ErrInvalidEnv) {
		t.Fatalf("expected ErrInvalidEnv, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	got := Merge(map[string]any{"a": 1, "b": 1}, nil, map[string]any{"b": 2})
	if got["a"] != 1 || got["b"] != 2 || len(got) != 2 {
		t.Errorf("Merge() = %v", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, defs.ConfigYAML)

	opts := NewDefaultOptions()
	opts.FileSuffix = models.SuffixJSX
	opts.IsIndex = true
	if err := Save(path, opts, false); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if err := Save(path, opts, false); !errors.Is(err, ErrConfigExists) {
		t.Fatalf("second Save without force: expected ErrConfigExists, got %v", err)
	}
	if err := Save(path, opts, true); err != nil {
		t.Fatalf("forced Save error: %v", err)
	}

	raw, err := NewLoader().Load(dir, path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	loaded, err := Resolve(raw)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if loaded.FileSuffix != models.SuffixJSX || !loaded.IsIndex {
		t.Errorf("loaded options = %+v", loaded)
	}
}
