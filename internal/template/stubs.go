package template

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/modu-ai/routegen/internal/config"
	"github.com/modu-ai/routegen/internal/defs"
	"github.com/modu-ai/routegen/pkg/models"
)

//go:embed stubs/*.tmpl
var embeddedStubs embed.FS

// Stub template names inside StubFS.
const (
	StubVue2 = "vue2.vue.tmpl"
	StubVue3 = "vue3.vue.tmpl"
	StubJSX  = "jsx.tmpl"
)

// StubFS returns the built-in stub templates.
func StubFS() fs.FS {
	sub, err := fs.Sub(embeddedStubs, "stubs")
	if err != nil {
		panic(fmt.Sprintf("template: embedded stubs missing: %v", err))
	}
	return sub
}

// StubName selects the built-in stub for a normalized suffix.
func StubName(suffix models.FileSuffix, vue3 bool) (string, error) {
	switch suffix {
	case models.SuffixVue:
		if vue3 {
			return StubVue3, nil
		}
		return StubVue2, nil
	case models.SuffixJSX, models.SuffixTSX:
		return StubJSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSuffix, suffix)
}

// Stubs produces template bodies for resolved options.
type Stubs struct {
	renderer Renderer
}

// NewStubs creates Stubs backed by the built-in templates.
func NewStubs() *Stubs {
	return &Stubs{renderer: NewRenderer(StubFS())}
}

// NewStubsWithRenderer creates Stubs that render the built-in stub names
// through r.
func NewStubsWithRenderer(r Renderer) *Stubs {
	return &Stubs{renderer: r}
}

// Body returns the template body for opts with every option-dependent part
// filled in and the name placeholder still present. A custom Content body is
// returned verbatim, but the suffix is still checked.
func (s *Stubs) Body(opts config.Options) (string, error) {
	name, err := StubName(opts.FileSuffix, opts.IsVue3)
	if err != nil {
		return "", err
	}
	if opts.Content != "" {
		return opts.Content, nil
	}

	rendered, err := s.renderer.Render(name, ContextFromOptions(opts))
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return string(rendered), nil
}

// Substitute replaces every name placeholder in body with name.
func Substitute(body, name string) string {
	return strings.ReplaceAll(body, defs.NamePlaceholder, name)
}
