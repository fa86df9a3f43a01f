package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/routegen/internal/defs"
)

// ErrConfigExists indicates Save refused to replace an existing options file.
var ErrConfigExists = errors.New("config: options file already exists")

// @MX:ANCHOR: [AUTO] Manager layers every option source for the CLI.
// @MX:REASON: [AUTO] fan_in=3, used by the generate and init commands and the composition root
// Manager resolves options from every source the CLI knows about.
// Precedence, lowest first: compiled defaults, options file, environment
// (after .env is loaded), explicit overrides such as command-line flags.
type Manager struct {
	mu      sync.RWMutex
	loader  *Loader
	options *Options
	source  string
}

// NewManager creates a Manager with no resolved options.
func NewManager() *Manager {
	return &Manager{loader: NewLoader()}
}

// Load reads the options file (configPath, or .routegen.yaml under dir),
// applies environment overrides and then overrides, and validates the
// merged result.
func (m *Manager) Load(dir, configPath string, overrides map[string]any) (Options, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fileRaw, err := m.loader.Load(dir, configPath)
	if err != nil {
		return Options{}, fmt.Errorf("load options: %w", err)
	}

	if err := LoadDotEnv(filepath.Join(filepath.Clean(dir), defs.DotEnv)); err != nil {
		return Options{}, fmt.Errorf("load %s: %w", defs.DotEnv, err)
	}
	env, err := LoadEnvConfig()
	if err != nil {
		return Options{}, err
	}

	opts, err := Resolve(Merge(fileRaw, env.ToMap(), overrides))
	if err != nil {
		return Options{}, err
	}

	m.options = &opts
	m.source = m.loader.Source()
	return opts.Clone(), nil
}

// Get returns the last resolved options. The second result is false if Load
// has not succeeded yet.
func (m *Manager) Get() (Options, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.options == nil {
		return Options{}, false
	}
	return m.options.Clone(), true
}

// Source returns the options file used by the last Load, or "".
func (m *Manager) Source() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.source
}

// Merge overlays raw option maps; later layers win. Nil layers are skipped.
func Merge(layers ...map[string]any) map[string]any {
	merged := make(map[string]any)
	for _, layer := range layers {
		maps.Copy(merged, layer)
	}
	return merged
}

// Save writes opts as YAML to path. An existing file is only replaced when
// force is set.
func Save(path string, opts Options, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := yaml.Marshal(opts.ToMap())
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	return atomicWrite(path, data)
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".routegen-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
