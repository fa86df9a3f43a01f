package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/routegen/internal/generator"
	"github.com/modu-ai/routegen/pkg/models"
)

// cardStyle returns a rounded-border card.
func (t *Theme) cardStyle() lipgloss.Style {
	s := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	if !t.NoColor {
		s = s.BorderForeground(t.border().GetForeground())
	}
	return s
}

// RenderReportCard summarizes a finished run in a bordered card, listing
// every failure with its reason.
func RenderReportCard(theme *Theme, r *generator.Report, outputFolder string) string {
	var title string
	if r.OK() {
		title = theme.success().Render("✓") + " Routes generated"
	} else {
		title = theme.failure().Render("✗") + " Routes generated with failures"
	}

	var body strings.Builder
	body.WriteString(theme.primary().Bold(true).Render(title))
	body.WriteString("\n\n")
	fmt.Fprintf(&body, "%s %s\n", theme.muted().Render("output "), outputFolder)
	fmt.Fprintf(&body, "%s %d\n", theme.success().Render("created"), r.Created)
	fmt.Fprintf(&body, "%s %d\n", theme.warning().Render("skipped"), r.Skipped)
	fmt.Fprintf(&body, "%s %d", theme.failure().Render("failed "), r.Failed)

	for _, o := range r.Failures() {
		fmt.Fprintf(&body, "\n  %s %s: %s", theme.failure().Render("✗"), o.Path, o.Reason)
	}
	return theme.cardStyle().Render(body.String())
}

// ReportMarkdown renders every outcome as a markdown table.
func ReportMarkdown(r *generator.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Generation report\n\n%d created, %d skipped, %d failed\n\n", r.Created, r.Skipped, r.Failed)
	b.WriteString("| Status | Path | Name | Reason |\n|---|---|---|---|\n")
	for _, o := range r.Outcomes {
		fmt.Fprintf(&b, "| %s | `%s` | %s | %s |\n", o.Status, o.Path, escapeCell(o.Name), escapeCell(o.Reason))
	}
	return b.String()
}

// PlanMarkdown renders a dry-run plan as a markdown table.
func PlanMarkdown(p *generator.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Generation plan\n\n%d files would be written\n\n", len(p.Pending()))
	b.WriteString("| Action | Path | Name |\n|---|---|---|\n")
	for _, e := range p.Entries {
		action := "write"
		switch {
		case e.Err != nil:
			action = string(models.StatusFailed) + ": " + e.Err.Error()
		case e.Duplicate:
			action = string(models.StatusSkipped) + ": " + generator.ErrDuplicateTarget.Error()
		}
		fmt.Fprintf(&b, "| %s | `%s` | %s |\n", escapeCell(action), e.Target, escapeCell(e.Name))
	}
	return b.String()
}

// RenderMarkdown formats markdown for the terminal. Without colors the
// notty style is used.
func RenderMarkdown(theme *Theme, md string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if theme.NoColor {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
