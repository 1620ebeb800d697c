package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func newHelp() help.Model {
	h := help.New()
	h.ShortSeparator = " │ "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
	h.Styles.ShortSeparator = footerSepStyle
	h.Styles.Ellipsis = footerSepStyle
	return h
}

// RenderFooter lists the key hints of the active scope, cut to the model width.
func RenderFooter(m *Model) string {
	width := max(1, m.width)
	var hints []key.Binding
	for _, b := range m.keys.BindingsForScope(m.ActiveScope()) {
		if kb := b.Help(); kb.Enabled() {
			hints = append(hints, kb)
		}
	}
	line := m.help.Styles.ShortDesc.Render("No shortcuts")
	if len(hints) > 0 {
		m.help.Width = width
		line = m.help.ShortHelpView(hints)
	}
	return renderBar(footerStyle, width, line)
}

func RenderStatusBar(m *Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	return renderBar(style, max(1, m.width), msg)
}

// renderBar draws text on a single full-width line.
func renderBar(style lipgloss.Style, width int, text string) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	return style.Width(width).MaxWidth(width).Render(line)
}
