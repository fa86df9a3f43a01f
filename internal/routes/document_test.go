package routes

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modu-ai/routegen/pkg/models"
)

const sampleJSON = `{
  "app": "admin",
  "routes": [
    {"name": "Home", "path": "home"},
    {"name": "Admin", "path": "admin", "children": [{"name": "Users", "path": "users"}]}
  ]
}`

const sampleYAML = `
- name: Home
  path: home
- name: Admin
  path: admin
  children:
    - name: Users
      path: users
`

func TestParseJSONWithSelector(t *testing.T) {
	t.Parallel()

	nodes, err := Parse([]byte(sampleJSON), FormatJSON, "$.routes")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}

	fm := models.DefaultFieldMapping()
	children := nodes[1].Children(fm)
	if len(children) != 1 || children[0].Name(fm) != "Users" {
		t.Errorf("children = %v", children)
	}
}

func TestParseYAMLRoot(t *testing.T) {
	t.Parallel()

	nodes, err := Parse([]byte(sampleYAML), FormatYAML, "")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	fm := models.DefaultFieldMapping()
	if len(nodes) != 2 || nodes[0].Name(fm) != "Home" {
		t.Fatalf("nodes = %v", nodes)
	}
	if got := nodes[1].Children(fm)[0].Path(fm); got != "users" {
		t.Errorf("nested path = %q, want users", got)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		format   Format
		selector string
		mention  string
	}{
		{"malformed_json", `{"routes": [`, FormatJSON, "", ""},
		{"malformed_yaml", "- name: [", FormatYAML, "", ""},
		{"root_is_object", `{"a": 1}`, FormatJSON, "", "array"},
		{"selector_misses", sampleJSON, FormatJSON, "$.pages", "matched nothing"},
		{"bad_selector", sampleJSON, FormatJSON, "$[", "jsonpath"},
		{"unknown_format", "[]", Format("toml"), "", "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), tt.format, tt.selector)
			if !errors.Is(err, ErrInvalidDocument) {
				t.Fatalf("Parse() = %v, want ErrInvalidDocument", err)
			}
			if tt.mention != "" && !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error %q should mention %q", err, tt.mention)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"routes.json": FormatJSON,
		"routes.yaml": FormatYAML,
		"routes.YML":  FormatYAML,
		"routes":      FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "routes.yml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	nodes, err := LoadFile(path, "$")
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if len(nodes) != 2 {
		t.Errorf("got %d nodes, want 2", len(nodes))
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json"), ""); err == nil {
		t.Error("expected error for missing file")
	}
}
