package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// List renders a titled bullet list, keeping the newest Tail items when the
// area is too short.
type List struct {
	Title string
	Items []string
	Empty string
	Tail  bool
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	items := l.Items
	if len(items) == 0 && l.Empty != "" {
		items = []string{l.Empty}
	}
	room := height
	if l.Title != "" {
		room--
	}
	if l.Tail && len(items) > room && room > 0 {
		items = items[len(items)-room:]
	}
	rows := make([]string, 0, len(items)+1)
	if l.Title != "" {
		rows = append(rows, l.Title)
	}
	for _, item := range items {
		rows = append(rows, ansi.Truncate("- "+item, width, "…"))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
