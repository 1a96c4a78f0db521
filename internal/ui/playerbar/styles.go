package playerbar

import "github.com/charmbracelet/lipgloss"

// Player status symbols.
const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
)

// BarStyle frames the progress/volume bar at the bottom of the screen.
var BarStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// TitleStyle highlights the currently playing track's title.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// MetaStyle renders secondary track metadata (artist, album).
var MetaStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("250"))
