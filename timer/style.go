package timer

import "github.com/charmbracelet/lipgloss"

// Style holds the styles used to render each screen.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
}

// NewStyle derives the screen styles from the accent colour and the
// terminal background.
func NewStyle(accent string, darkTheme bool) Style {
	secondary := lipgloss.Color("#FFFFFF")
	hint := lipgloss.Color("#7A7A7A")

	if !darkTheme {
		secondary = lipgloss.Color("#1A1A1A")
		hint = lipgloss.Color("#5C5C5C")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(hint),
	}
}
