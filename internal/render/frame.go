package render

import "github.com/charmbracelet/lipgloss"

// Frame boxes content, with an optional dim caption line underneath.
func Frame(content, caption string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#243141")).
		Padding(0, 1)
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"})

	out := boxStyle.Render(content)
	if caption != "" {
		out += "\n" + dimStyle.Render(caption)
	}
	return out
}

// Heading styles a section title.
func Heading(text string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true)
	return titleStyle.Render(text)
}
