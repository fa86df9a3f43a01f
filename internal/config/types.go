package config

import (
	"maps"

	"github.com/modu-ai/routegen/internal/defs"
	"github.com/modu-ai/routegen/pkg/models"
)

// Options is the resolved, immutable configuration of one generation call.
// It is built fresh by Resolve for every call and passed explicitly, so two
// calls never observe each other's settings.
type Options struct {
	Fields models.FieldMapping

	// ParentFolder makes a node with children emit its own file next to
	// its folder.
	ParentFolder bool

	// FileSuffix is already normalized (no leading dot).
	FileSuffix models.FileSuffix

	IsVue3       bool
	CSSCompiler  models.CSSCompiler
	IsTypeScript bool

	// IsIndex writes index.<ext> into every directory of a node's path
	// instead of <last-segment>.<ext>.
	IsIndex bool

	// Content replaces the built-in template body when non-empty.
	Content string

	// Concurrency bounds the number of filesystem jobs in flight.
	Concurrency int

	// Extra holds supplied keys that routegen does not recognize.
	Extra map[string]any
}

// Clone returns a deep copy of the options.
func (o Options) Clone() Options {
	c := o
	if o.Extra != nil {
		c.Extra = make(map[string]any, len(o.Extra))
		maps.Copy(c.Extra, o.Extra)
	}
	return c
}

// ToMap renders the options back into the raw key space, suitable for
// writing an options file or re-validating.
func (o Options) ToMap() map[string]any {
	m := map[string]any{
		defs.KeyName:         o.Fields.Name,
		defs.KeyPath:         o.Fields.Path,
		defs.KeyChildren:     o.Fields.Children,
		defs.KeyParentFolder: o.ParentFolder,
		defs.KeyFileSuffix:   string(o.FileSuffix),
		defs.KeyIsVue3:       o.IsVue3,
		defs.KeyCSSCompiler:  string(o.CSSCompiler),
		defs.KeyIsTypeScript: o.IsTypeScript,
		defs.KeyIsIndex:      o.IsIndex,
		defs.KeyConcurrency:  o.Concurrency,
	}
	if o.Content != "" {
		m[defs.KeyContent] = o.Content
	}
	return m
}

// knownKeys lists recognized option keys in validation order.
var knownKeys = []string{
	defs.KeyName,
	defs.KeyPath,
	defs.KeyChildren,
	defs.KeyParentFolder,
	defs.KeyFileSuffix,
	defs.KeyIsVue3,
	defs.KeyCSSCompiler,
	defs.KeyIsTypeScript,
	defs.KeyIsIndex,
	defs.KeyContent,
	defs.KeyConcurrency,
}
