package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles of the menu, setup and scoreboard screens.
type Theme struct {
	Title       lipgloss.Style
	Item        lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Controls    lipgloss.Style
	Best        lipgloss.Style
	Hazard      lipgloss.Style

	// Scoreboard
	Frame     lipgloss.Style
	TabActive lipgloss.Style
	Selected  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Tile orange
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Best:        lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Hazard:      lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // Black hole purple

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

var menuTheme = DefaultTheme()

// styled centers text in width and applies style. Centering happens on
// the plain text so escape codes do not skew it.
func styled(style lipgloss.Style, text string, width int) string {
	return style.Render(centerText(text, width))
}
