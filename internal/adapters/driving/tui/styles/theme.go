// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the dashboard.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Throttle colours the throttle gauge.
	Throttle lipgloss.Color

	// Brake colours the brake gauge.
	Brake lipgloss.Color

	// Warning indicates caution, such as an engaged hand brake.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#F97316"), // Orange
		Secondary:  lipgloss.Color("#38BDF8"), // Sky blue
		Foreground: lipgloss.Color("#E2E8F0"), // Light gray
		Muted:      lipgloss.Color("#64748B"), // Slate
		Throttle:   lipgloss.Color("#4ADE80"), // Green
		Brake:      lipgloss.Color("#F87171"), // Red
		Warning:    lipgloss.Color("#FACC15"), // Yellow
		Error:      lipgloss.Color("#F87171"), // Red
		Border:     lipgloss.Color("#334155"), // Border slate
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the dashboard header.
	Title lipgloss.Style

	// Label style for gauge and field labels.
	Label lipgloss.Style

	// Value style for field values.
	Value lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Throttle style for the throttle gauge fill.
	Throttle lipgloss.Style

	// Brake style for the brake gauge fill.
	Brake lipgloss.Style

	// Steer style for the steering gauge marker.
	Steer lipgloss.Style

	// Warning style for caution indicators.
	Warning lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Help style for the keybinding footer.
	Help lipgloss.Style

	// Border style for the dashboard frame.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Label: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Value: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Throttle: lipgloss.NewStyle().
			Foreground(theme.Throttle),

		Brake: lipgloss.NewStyle().
			Foreground(theme.Brake),

		Steer: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Warning),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
