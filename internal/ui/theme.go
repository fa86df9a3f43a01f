// Package ui renders generation progress and results for the routegen CLI
// and hosts the interactive init wizard.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ThemeColors holds the dark-background palette as hex strings.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
	Border    string
}

// Theme controls colors for every UI component.
type Theme struct {
	NoColor bool
	Colors  ThemeColors
}

// NewTheme returns the default theme. Colors are disabled when NO_COLOR is
// set or TERM is "dumb".
func NewTheme() *Theme {
	return &Theme{
		NoColor: os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb",
		Colors: ThemeColors{
			Primary:   "#DA7756",
			Secondary: "#7C3AED",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#9CA3AF",
			Border:    "#4B5563",
		},
	}
}

// style returns a foreground style for hex, adapting to light terminals.
func (t *Theme) style(light, dark string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: light, Dark: dark})
}

func (t *Theme) primary() lipgloss.Style { return t.style("#C45A3C", t.Colors.Primary) }
func (t *Theme) success() lipgloss.Style { return t.style("#059669", t.Colors.Success) }
func (t *Theme) warning() lipgloss.Style { return t.style("#D97706", t.Colors.Warning) }
func (t *Theme) failure() lipgloss.Style { return t.style("#DC2626", t.Colors.Error) }
func (t *Theme) muted() lipgloss.Style   { return t.style("#6B7280", t.Colors.Muted) }
func (t *Theme) border() lipgloss.Style  { return t.style("#D1D5DB", t.Colors.Border) }
