package template

import (
	"github.com/modu-ai/routegen/internal/config"
)

// TemplateContext provides data for rendering the built-in stubs.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	CSSCompiler string // "css", "less", "scss"
	TypeScript  bool   // adds lang="ts" to Vue 3 <script>
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with the compiled option
// defaults, then applies any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		CSSCompiler: string(config.DefaultCSSCompiler),
		TypeScript:  config.DefaultIsTypeScript,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithCSSCompiler sets the style language.
func WithCSSCompiler(c string) ContextOption {
	return func(ctx *TemplateContext) {
		if c != "" {
			ctx.CSSCompiler = c
		}
	}
}

// WithTypeScript toggles the TypeScript script attribute.
func WithTypeScript(ts bool) ContextOption {
	return func(ctx *TemplateContext) {
		ctx.TypeScript = ts
	}
}

// ContextFromOptions builds the rendering context for resolved options.
func ContextFromOptions(o config.Options) *TemplateContext {
	return NewTemplateContext(
		WithCSSCompiler(string(o.CSSCompiler)),
		WithTypeScript(o.IsTypeScript),
	)
}
