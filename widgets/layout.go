package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Func adapts a render function to Widget.
type Func func(width, height int) string

func (f Func) Render(width, height int) string {
	if f == nil {
		return ""
	}
	return f(width, height)
}

// Row is one entry of a Column. A row with Weight takes a share of the height
// the other rows leave free; a row with Height gets exactly that many lines;
// otherwise it keeps the height it renders at.
type Row struct {
	Widget Widget
	Height int
	Weight int
}

// Column stacks rows top to bottom and never renders more than the height it
// is given. Align positions each row horizontally when it is narrower than
// the column.
type Column struct {
	Rows  []Row
	Gap   int
	Align lipgloss.Position
}

func (c Column) Render(width, height int) string {
	if len(c.Rows) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	blocks := make([]string, len(c.Rows))
	free := height - max(0, c.Gap*(len(c.Rows)-1))
	weights := 0
	for i, r := range c.Rows {
		switch {
		case r.Weight > 0:
			weights += r.Weight
		case r.Height > 0:
			blocks[i] = fitLines(render(r.Widget, width, r.Height), r.Height)
			free -= r.Height
		default:
			blocks[i] = render(r.Widget, width, height)
			free -= lineCount(blocks[i])
		}
	}
	free = max(0, free)
	// Growing rows split what is left; the last one takes the remainder.
	left := free
	last := -1
	for i, r := range c.Rows {
		if r.Weight > 0 {
			last = i
		}
	}
	for i, r := range c.Rows {
		if r.Weight <= 0 {
			continue
		}
		share := free * r.Weight / weights
		if i == last {
			share = left
		}
		left -= share
		if share > 0 {
			blocks[i] = fitLines(render(r.Widget, width, share), share)
		}
	}

	lines := make([]string, 0, height)
	for i, b := range blocks {
		if i > 0 {
			for range c.Gap {
				lines = append(lines, "")
			}
		}
		if b == "" && c.Rows[i].Weight > 0 {
			continue
		}
		if c.Align != lipgloss.Left && lipgloss.Width(b) < width {
			b = lipgloss.PlaceHorizontal(width, c.Align, b)
		}
		lines = append(lines, strings.Split(b, "\n")...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func render(w Widget, width, height int) string {
	if w == nil {
		return ""
	}
	return w.Render(width, height)
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// fitLines pads or cuts s to exactly n lines.
func fitLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
