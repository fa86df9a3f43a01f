package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/routegen/internal/config"
	"github.com/modu-ai/routegen/pkg/models"
)

var (
	// ErrCancelled indicates the user aborted the wizard.
	ErrCancelled = errors.New("ui: wizard cancelled")

	// ErrHeadless indicates the wizard cannot run without a terminal.
	ErrHeadless = errors.New("ui: wizard requires a terminal, use --non-interactive")
)

// initAnswers collects the wizard's answers. It starts from the options
// the wizard was given, so unanswered questions keep those values.
type initAnswers struct {
	Suffix       string
	Vue3         bool
	CSS          string
	TypeScript   bool
	ParentFolder bool
	Index        bool
	NameKey      string
	PathKey      string
	ChildrenKey  string
}

func answersFrom(o config.Options) *initAnswers {
	return &initAnswers{
		Suffix:       string(o.FileSuffix),
		Vue3:         o.IsVue3,
		CSS:          string(o.CSSCompiler),
		TypeScript:   o.IsTypeScript,
		ParentFolder: o.ParentFolder,
		Index:        o.IsIndex,
		NameKey:      o.Fields.Name,
		PathKey:      o.Fields.Path,
		ChildrenKey:  o.Fields.Children,
	}
}

// apply validates the answers through the regular option resolver.
func (a *initAnswers) apply(base config.Options) (config.Options, error) {
	raw := base.ToMap()
	raw["fileSuffix"] = a.Suffix
	raw["isVue3"] = a.Vue3
	raw["cssCompiler"] = a.CSS
	raw["isTypeScript"] = a.TypeScript
	raw["parentFolder"] = a.ParentFolder
	raw["isIndex"] = a.Index
	raw["name"] = a.NameKey
	raw["path"] = a.PathKey
	raw["children"] = a.ChildrenKey
	return config.Resolve(raw)
}

// question is one wizard step. show reports whether the step applies to
// the answers given so far.
type question struct {
	field huh.Field
	show  func(*initAnswers) bool
}

func always(*initAnswers) bool { return true }

func isVue(a *initAnswers) bool { return models.IsVueSuffix(a.Suffix) }

func buildQuestions(a *initAnswers) []question {
	suffixOpts := []huh.Option[string]{
		huh.NewOption("Vue single-file component (.vue)", string(models.SuffixVue)),
		huh.NewOption("React JSX (.jsx)", string(models.SuffixJSX)),
		huh.NewOption("React TSX (.tsx)", string(models.SuffixTSX)),
	}
	cssOpts := make([]huh.Option[string], 0, len(models.ValidCSSCompilers()))
	for _, c := range models.ValidCSSCompilers() {
		cssOpts = append(cssOpts, huh.NewOption(string(c), string(c)))
	}

	return []question{
		{huh.NewSelect[string]().Title("Stub file type").Options(suffixOpts...).Value(&a.Suffix), always},
		{huh.NewConfirm().Title("Generate Vue 3 components?").Value(&a.Vue3), isVue},
		{huh.NewConfirm().Title("Use TypeScript in <script>?").Value(&a.TypeScript), func(a *initAnswers) bool { return isVue(a) && a.Vue3 }},
		{huh.NewSelect[string]().Title("Style language").Options(cssOpts...).Value(&a.CSS), isVue},
		{huh.NewConfirm().Title("Write an index file into every route folder?").Value(&a.Index), always},
		{huh.NewConfirm().Title("Give routes with children their own file?").
			Description("Writes admin.vue next to the admin/ folder").Value(&a.ParentFolder), func(a *initAnswers) bool { return !a.Index }},
		{keyInput("Route name field", &a.NameKey), always},
		{keyInput("Route path field", &a.PathKey), always},
		{keyInput("Route children field", &a.ChildrenKey), always},
	}
}

func keyInput(title string, value *string) *huh.Input {
	return huh.NewInput().Title(title).Value(value).Validate(func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("field name must not be empty")
		}
		return nil
	})
}

// InitWizard asks for the options written by `routegen init`.
type InitWizard struct {
	theme    *Theme
	headless *HeadlessManager
}

// NewInitWizard creates an InitWizard.
func NewInitWizard(theme *Theme, hm *HeadlessManager) *InitWizard {
	return &InitWizard{theme: theme, headless: hm}
}

// Run asks every applicable question, starting from defaults.
// Each question runs as its own form so later questions can depend on
// earlier answers.
func (w *InitWizard) Run(ctx context.Context, defaults config.Options) (config.Options, error) {
	if w.headless.IsHeadless() {
		return config.Options{}, ErrHeadless
	}

	answers := answersFrom(defaults)
	theme := newWizardTheme(w.theme)
	for _, q := range buildQuestions(answers) {
		if err := ctx.Err(); err != nil {
			return config.Options{}, err
		}
		if !q.show(answers) {
			continue
		}
		form := huh.NewForm(huh.NewGroup(q.field)).WithTheme(theme)
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return config.Options{}, ErrCancelled
			}
			return config.Options{}, fmt.Errorf("wizard error: %w", err)
		}
	}
	return answers.apply(defaults)
}

// newWizardTheme maps the UI palette onto huh's base theme.
func newWizardTheme(t *Theme) *huh.Theme {
	ht := huh.ThemeBase()
	if t.NoColor {
		return ht
	}

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: t.Colors.Primary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: t.Colors.Success}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: t.Colors.Error}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: t.Colors.Muted}

	ht.Focused.Title = ht.Focused.Title.Foreground(primary).Bold(true)
	ht.Focused.Description = ht.Focused.Description.Foreground(muted)
	ht.Focused.ErrorIndicator = ht.Focused.ErrorIndicator.Foreground(red)
	ht.Focused.ErrorMessage = ht.Focused.ErrorMessage.Foreground(red)
	ht.Focused.SelectSelector = ht.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	ht.Focused.SelectedOption = ht.Focused.SelectedOption.Foreground(green)
	ht.Focused.FocusedButton = ht.Focused.FocusedButton.Foreground(lipgloss.Color("#FFFFFF")).Background(primary)
	ht.Blurred = ht.Focused
	return ht
}
