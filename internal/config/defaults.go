package config

import (
	"github.com/modu-ai/routegen/pkg/models"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultFileSuffix   = models.SuffixVue
	DefaultCSSCompiler  = models.CSSPlain
	DefaultIsTypeScript = true
	DefaultConcurrency  = 8
)

// NewDefaultOptions returns Options with all fields set to compiled defaults.
func NewDefaultOptions() Options {
	return Options{
		Fields:       models.DefaultFieldMapping(),
		FileSuffix:   DefaultFileSuffix,
		CSSCompiler:  DefaultCSSCompiler,
		IsTypeScript: DefaultIsTypeScript,
		Concurrency:  DefaultConcurrency,
	}
}
