package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/routegen/internal/defs"
)

// Loader reads raw options from a YAML options file.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu     sync.RWMutex
	source string
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads raw options. When path is empty it looks for .routegen.yaml in
// dir and returns an empty map if the file is absent. An explicit path that
// does not exist is an error.
func (l *Loader) Load(dir, path string) (map[string]any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.source = ""
	explicit := path != ""
	if !explicit {
		path = filepath.Join(filepath.Clean(dir), defs.ConfigYAML)
	}

	raw := make(map[string]any)
	loaded, err := loadYAMLFile(path, &raw)
	if err != nil {
		return nil, err
	}
	if !loaded {
		if explicit {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		slog.Debug("options file not found, using defaults", "path", path)
		return map[string]any{}, nil
	}

	l.source = path
	return raw, nil
}

// Source returns the path of the last file loaded, or "" if defaults were used.
func (l *Loader) Source() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source
}

// loadYAMLFile reads a YAML file and unmarshals it into the target.
// Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(path string, target any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), ErrInvalidYAML)
	}

	return true, nil
}
