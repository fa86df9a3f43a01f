package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/modu-ai/routegen/internal/defs"
)

// EnvConfig holds environment overrides. Field names map to environment
// variables with the ROUTEGEN_ prefix. Unset variables leave the pointer nil
// so they never mask file or default values.
type EnvConfig struct {
	// Env: ROUTEGEN_NAME_KEY
	NameKey *string `envconfig:"NAME_KEY"`

	// Env: ROUTEGEN_PATH_KEY
	PathKey *string `envconfig:"PATH_KEY"`

	// Env: ROUTEGEN_CHILDREN_KEY
	ChildrenKey *string `envconfig:"CHILDREN_KEY"`

	// Env: ROUTEGEN_PARENT_FOLDER
	ParentFolder *bool `envconfig:"PARENT_FOLDER"`

	// Env: ROUTEGEN_FILE_SUFFIX
	FileSuffix *string `envconfig:"FILE_SUFFIX"`

	// Env: ROUTEGEN_VUE3
	IsVue3 *bool `envconfig:"VUE3"`

	// Env: ROUTEGEN_CSS_COMPILER
	CSSCompiler *string `envconfig:"CSS_COMPILER"`

	// Env: ROUTEGEN_TYPESCRIPT
	IsTypeScript *bool `envconfig:"TYPESCRIPT"`

	// Env: ROUTEGEN_INDEX
	IsIndex *bool `envconfig:"INDEX"`

	// Env: ROUTEGEN_CONCURRENCY
	Concurrency *int `envconfig:"CONCURRENCY"`
}

// LoadEnvConfig reads ROUTEGEN_* variables from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(defs.EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}
	return cfg, nil
}

// ToMap returns only the overrides that were set, in the raw key space.
func (e EnvConfig) ToMap() map[string]any {
	m := make(map[string]any)
	setString(m, defs.KeyName, e.NameKey)
	setString(m, defs.KeyPath, e.PathKey)
	setString(m, defs.KeyChildren, e.ChildrenKey)
	setString(m, defs.KeyFileSuffix, e.FileSuffix)
	setString(m, defs.KeyCSSCompiler, e.CSSCompiler)
	setBool(m, defs.KeyParentFolder, e.ParentFolder)
	setBool(m, defs.KeyIsVue3, e.IsVue3)
	setBool(m, defs.KeyIsTypeScript, e.IsTypeScript)
	setBool(m, defs.KeyIsIndex, e.IsIndex)
	if e.Concurrency != nil {
		m[defs.KeyConcurrency] = *e.Concurrency
	}
	return m
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory.
// If the file does not exist, it silently returns nil (not an error).
// Existing environment variables are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = defs.DotEnv
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

func setString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func setBool(m map[string]any, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}
