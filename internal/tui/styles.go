package tui

import "charm.land/lipgloss/v2"

var (
	colorMatrix    = lipgloss.Color("#00AA00")
	colorDarkGray  = lipgloss.Color("#2a2a2a")
	colorHighlight = lipgloss.Color("#005500")

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorMatrix)
	styleBorder   = lipgloss.NewStyle().Foreground(colorDarkGray)
	styleSelected = lipgloss.NewStyle().Background(colorHighlight).Foreground(lipgloss.Color("#ffffff"))
	styleKind     = lipgloss.NewStyle().Foreground(colorDarkGray)
	styleStatus   = lipgloss.NewStyle().Faint(true)
)
