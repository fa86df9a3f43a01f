package models

import "strings"

// FileSuffix is the kind of stub file generated for each route.
type FileSuffix string

const (
	// SuffixVue generates Vue single-file components (Vue 2 or Vue 3).
	SuffixVue FileSuffix = "vue"

	// SuffixJSX generates React function components in .jsx files.
	SuffixJSX FileSuffix = "jsx"

	// SuffixTSX generates React function components in .tsx files.
	// The body is identical to the JSX stub.
	SuffixTSX FileSuffix = "tsx"
)

// ValidFileSuffixes returns every accepted spelling of a file suffix,
// with and without the leading dot.
func ValidFileSuffixes() []string {
	return []string{"vue", ".vue", "jsx", ".jsx", "tsx", ".tsx"}
}

// ParseFileSuffix normalizes s by stripping leading dots and reports whether
// the result is a known suffix.
func ParseFileSuffix(s string) (FileSuffix, bool) {
	suffix := FileSuffix(strings.TrimLeft(s, "."))
	return suffix, suffix.IsValid()
}

// IsValid checks if the suffix is a known value. The suffix must already be
// normalized (no leading dot).
func (s FileSuffix) IsValid() bool {
	switch s {
	case SuffixVue, SuffixJSX, SuffixTSX:
		return true
	}
	return false
}

// IsVueFamily reports whether the suffix selects a Vue template.
func (s FileSuffix) IsVueFamily() bool {
	return s == SuffixVue
}

// Ext returns the file extension including the leading dot.
func (s FileSuffix) Ext() string {
	return "." + string(s)
}

// IsVueSuffix reports whether a raw, possibly dotted suffix is vue-family.
func IsVueSuffix(raw string) bool {
	return raw == "vue" || raw == ".vue"
}

// CSSCompiler is the style language written into Vue <style lang="..."> blocks.
type CSSCompiler string

const (
	CSSPlain CSSCompiler = "css"
	CSSLess  CSSCompiler = "less"
	CSSSCSS  CSSCompiler = "scss"
)

// ValidCSSCompilers returns all valid CSS compiler values.
func ValidCSSCompilers() []CSSCompiler {
	return []CSSCompiler{CSSPlain, CSSLess, CSSSCSS}
}

// IsValid checks if the CSS compiler is a valid value.
func (c CSSCompiler) IsValid() bool {
	switch c {
	case CSSPlain, CSSLess, CSSSCSS:
		return true
	}
	return false
}

// FieldMapping names the keys under which a route node stores its
// display name, path and children.
type FieldMapping struct {
	Name     string `yaml:"name" json:"name"`
	Path     string `yaml:"path" json:"path"`
	Children string `yaml:"children" json:"children"`
}

// DefaultFieldMapping returns the mapping used when the caller configures
// no aliases.
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{Name: "name", Path: "path", Children: "children"}
}
