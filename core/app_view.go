package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/termkit/widgets"
)

func (m *Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	available := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}
	bodyWidth := max(1, m.width-2)
	var body string
	if m.base != nil && available > 0 {
		body = m.base.View(bodyWidth, available)
	}
	// Each stacked screen is composited over everything beneath it.
	for _, s := range m.screens.Screens() {
		if available <= 0 {
			break
		}
		body = widgets.RenderPopup(body, s.View(max(20, m.width-12), max(8, m.height-8)), bodyWidth, available)
	}
	body = fitHeight(body, available)
	main := strings.TrimSuffix(strings.Join([]string{header, status, body}, "\n"), "\n")
	main = fitHeight(main, lipgloss.Height(header)+lipgloss.Height(status)+available)
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m *Model) string {
	left := headerAppStyle.Render(m.title)
	right := ""
	if top := m.screens.Top(); top != nil {
		right = headerTitleStyle.Render(top.Title())
	} else if m.base != nil {
		right = headerTitleStyle.Render(m.base.Title())
	}
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
