package style

import "github.com/charmbracelet/lipgloss"

// Palette defines the colors used for tables and error boxes.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Surface = lipgloss.Color("#313244")

	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Sapphire = lipgloss.Color("#74c7ec")

	AccentColor = Mauve
	ErrorColor  = Red
	BorderColor = Surface
)
