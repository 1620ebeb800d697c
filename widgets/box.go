package widgets

import "github.com/charmbracelet/lipgloss"

type Box struct {
	Title   string
	Content string
	Border  lipgloss.TerminalColor
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(max(1, width-2)).Height(max(1, height-2))
	if b.Border != nil {
		style = style.BorderForeground(b.Border)
	}
	content := b.Content
	if b.Title != "" {
		content = "[" + b.Title + "]\n" + content
	}
	return style.Render(content)
}
