// Package config provides generation options for routegen.
// It resolves defaults, validates caller-supplied option maps, loads
// options files and applies environment overrides.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidOption indicates a supplied option has the wrong type or value.
	ErrInvalidOption = errors.New("config: invalid option")

	// ErrInvalidYAML indicates invalid YAML syntax in an options file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrConfigNotFound indicates an explicitly requested options file does not exist.
	ErrConfigNotFound = errors.New("config: options file not found")

	// ErrInvalidEnv indicates an environment override could not be parsed.
	ErrInvalidEnv = errors.New("config: invalid environment override")
)

// ValidationError represents a single validation error with field context.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}
