package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/modu-ai/routegen/internal/defs"
	"github.com/modu-ai/routegen/pkg/models"
)

// @MX:ANCHOR: [AUTO] Resolve is the single place where caller options become an Options value.
// @MX:REASON: [AUTO] fan_in=4, called from the library facade, the generate command, the MCP tool and tests
// Resolve validates raw and merges it key by key over the compiled defaults.
// A nil or empty map yields the defaults. Unrecognized keys are kept in
// Options.Extra. The first invalid key aborts resolution.
func Resolve(raw map[string]any) (Options, error) {
	if err := ValidateRaw(raw); err != nil {
		return Options{}, err
	}

	opts := NewDefaultOptions()
	for _, key := range orderedKeys(raw) {
		opts.apply(key, raw[key])
	}
	return opts, nil
}

// ValidateRaw checks every supplied key of raw and returns the first
// violation as a *ValidationError. Recognized keys are visited in a fixed
// order, followed by unrecognized keys in sorted order, so the reported
// violation does not depend on map iteration order.
func ValidateRaw(raw map[string]any) error {
	if len(raw) == 0 {
		return nil
	}

	vue := resolvesToVue(raw)
	for _, key := range orderedKeys(raw) {
		if err := validateKey(key, raw[key], vue); err != nil {
			return err
		}
	}
	return nil
}

// validateKey checks a single key. vue reports whether the resolved file
// suffix is vue-family, which gates the isVue3 and cssCompiler rules.
func validateKey(key string, value any, vue bool) error {
	switch key {
	case defs.KeyName, defs.KeyPath, defs.KeyChildren, defs.KeyContent:
		if _, ok := value.(string); !ok {
			return typeError(key, "string", value)
		}
	case defs.KeyParentFolder, defs.KeyIsTypeScript, defs.KeyIsIndex:
		if _, ok := value.(bool); !ok {
			return typeError(key, "boolean", value)
		}
	case defs.KeyIsVue3:
		if _, ok := value.(bool); vue && !ok {
			return typeError(key, "boolean", value)
		}
	case defs.KeyFileSuffix:
		if err := validation.Validate(value, validation.Required, validation.In(anySlice(models.ValidFileSuffixes())...)); err != nil {
			return &ValidationError{
				Field:   key,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(models.ValidFileSuffixes(), ", ")),
				Value:   value,
				Wrapped: ErrInvalidOption,
			}
		}
	case defs.KeyCSSCompiler:
		if !vue {
			return nil
		}
		if err := validation.Validate(value, validation.Required, validation.In(anySlice(cssCompilerStrings())...)); err != nil {
			return &ValidationError{
				Field:   key,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(cssCompilerStrings(), ", ")),
				Value:   value,
				Wrapped: ErrInvalidOption,
			}
		}
	case defs.KeyConcurrency:
		n, ok := asInt(value)
		if !ok {
			return typeError(key, "integer", value)
		}
		if err := validation.Validate(n, validation.Required, validation.Min(1)); err != nil {
			return &ValidationError{
				Field:   key,
				Message: "must be at least 1",
				Value:   value,
				Wrapped: ErrInvalidOption,
			}
		}
	}
	return nil
}

// apply merges one validated key into the options.
func (o *Options) apply(key string, value any) {
	switch key {
	case defs.KeyName:
		o.Fields.Name = value.(string)
	case defs.KeyPath:
		o.Fields.Path = value.(string)
	case defs.KeyChildren:
		o.Fields.Children = value.(string)
	case defs.KeyContent:
		o.Content = value.(string)
	case defs.KeyParentFolder:
		o.ParentFolder = value.(bool)
	case defs.KeyIsTypeScript:
		o.IsTypeScript = value.(bool)
	case defs.KeyIsIndex:
		o.IsIndex = value.(bool)
	case defs.KeyFileSuffix:
		o.FileSuffix, _ = models.ParseFileSuffix(value.(string))
	case defs.KeyConcurrency:
		o.Concurrency, _ = asInt(value)
	case defs.KeyIsVue3:
		if b, ok := value.(bool); ok {
			o.IsVue3 = b
			return
		}
		o.setExtra(key, value)
	case defs.KeyCSSCompiler:
		if s, ok := value.(string); ok {
			o.CSSCompiler = models.CSSCompiler(s)
			return
		}
		o.setExtra(key, value)
	default:
		o.setExtra(key, value)
	}
}

func (o *Options) setExtra(key string, value any) {
	if o.Extra == nil {
		o.Extra = make(map[string]any)
	}
	o.Extra[key] = value
}

// resolvesToVue reports whether the supplied suffix, or the default when
// none is supplied, is vue-family.
func resolvesToVue(raw map[string]any) bool {
	v, ok := raw[defs.KeyFileSuffix]
	if !ok {
		return DefaultFileSuffix.IsVueFamily()
	}
	s, _ := v.(string)
	return models.IsVueSuffix(s)
}

// orderedKeys returns the keys of raw: recognized keys first in declaration
// order, then the rest sorted.
func orderedKeys(raw map[string]any) []string {
	keys := make([]string, 0, len(raw))
	for _, k := range knownKeys {
		if _, ok := raw[k]; ok {
			keys = append(keys, k)
		}
	}
	var extra []string
	for k := range raw {
		if !slices.Contains(knownKeys, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}

func typeError(key, want string, value any) error {
	return &ValidationError{
		Field:   key,
		Message: fmt.Sprintf("type error, %s required", want),
		Value:   value,
		Wrapped: ErrInvalidOption,
	}
}

// asInt accepts Go integers and integral floats (decoded JSON numbers).
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}

func cssCompilerStrings() []string {
	compilers := models.ValidCSSCompilers()
	strs := make([]string, len(compilers))
	for i, c := range compilers {
		strs[i] = string(c)
	}
	return strs
}

func anySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
