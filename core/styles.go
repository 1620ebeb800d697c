package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerTitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	headerBarStyle   = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorText)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
	footerSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)
)
