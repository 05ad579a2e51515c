package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the browser.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Warning highlights active filters.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#16A34A"), // Green
		Foreground: lipgloss.Color("#E5E7EB"), // Light gray
		Muted:      lipgloss.Color("#6B7280"), // Medium gray
		Warning:    lipgloss.Color("#FBBF24"), // Amber
		Error:      lipgloss.Color("#F87171"), // Red
		Border:     lipgloss.Color("#374151"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles for the browser.
type Styles struct {
	// Title style for the header line.
	Title lipgloss.Style

	// Input style for the keyword box.
	Input lipgloss.Style

	// Row style for a result line.
	Row lipgloss.Style

	// RowAlias style for the alias column.
	RowAlias lipgloss.Style

	// Filter style for an active filter chip.
	Filter lipgloss.Style

	// Status style for the bottom status bar.
	Status lipgloss.Style

	// Error style for error output.
	Error lipgloss.Style
}

// DefaultStyles returns styles built from the default theme.
func DefaultStyles() *Styles {
	theme := DefaultTheme()
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Row: lipgloss.NewStyle().
			Foreground(theme.Foreground),
		RowAlias: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Filter: lipgloss.NewStyle().
			Foreground(theme.Warning),
		Status: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),
	}
}
