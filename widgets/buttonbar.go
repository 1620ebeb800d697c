package widgets

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Variant is the visual intent of a button.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantPrimary Variant = "primary"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
)

type ButtonDef struct {
	Label    string
	Variant  Variant
	ID       string
	Disabled bool
}

// Key returns ID, falling back to the label.
func (d ButtonDef) Key() string {
	if d.ID != "" {
		return d.ID
	}
	return d.Label
}

var variantColors = map[Variant]lipgloss.Color{
	VariantDefault: "#a6adc8",
	VariantPrimary: "#89b4fa",
	VariantSuccess: "#a6e3a1",
	VariantWarning: "#fab387",
	VariantError:   "#f38ba8",
}

var (
	buttonStyle         = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
	buttonDisabledColor = lipgloss.Color("#45475a")
	buttonFocusFg       = lipgloss.Color("#1e1e2e")
)

// ButtonBar is a row or column of buttons with a single focused entry.
type ButtonBar struct {
	buttons  []ButtonDef
	vertical bool
	focus    int
}

func NewButtonBar(buttons []ButtonDef, horizontal bool) *ButtonBar {
	b := &ButtonBar{buttons: append([]ButtonDef(nil), buttons...), vertical: !horizontal, focus: -1}
	b.focus = b.step(-1, 1)
	return b
}

func (b *ButtonBar) Buttons() []ButtonDef {
	return append([]ButtonDef(nil), b.buttons...)
}

func (b *ButtonBar) Horizontal() bool { return !b.vertical }

func (b *ButtonBar) SetHorizontal(horizontal bool) { b.vertical = !horizontal }

// Focused returns the button that enter would press.
func (b *ButtonBar) Focused() (ButtonDef, bool) {
	if b.focus < 0 || b.focus >= len(b.buttons) {
		return ButtonDef{}, false
	}
	return b.buttons[b.focus], true
}

// Press returns the focused button unless it is disabled.
func (b *ButtonBar) Press() (ButtonDef, bool) {
	d, ok := b.Focused()
	if !ok || d.Disabled {
		return ButtonDef{}, false
	}
	return d, true
}

func (b *ButtonBar) FocusIndex() int { return b.focus }

func (b *ButtonBar) Next() { b.move(1) }

func (b *ButtonBar) Prev() { b.move(-1) }

// Focus moves focus to the enabled button with key id.
func (b *ButtonBar) Focus(id string) bool {
	for i, d := range b.buttons {
		if d.Key() == id && !d.Disabled {
			b.focus = i
			return true
		}
	}
	return false
}

func (b *ButtonBar) SetDisabled(id string, disabled bool) {
	for i := range b.buttons {
		if b.buttons[i].Key() == id {
			b.buttons[i].Disabled = disabled
		}
	}
	if cur, ok := b.Focused(); !ok || cur.Disabled {
		b.focus = b.step(b.focus, 1)
	}
}

// Hotkey finds the first enabled button whose label starts with r.
func (b *ButtonBar) Hotkey(r rune) (ButtonDef, bool) {
	r = unicode.ToLower(r)
	for _, d := range b.buttons {
		if d.Disabled {
			continue
		}
		for _, first := range strings.TrimSpace(d.Label) {
			if unicode.ToLower(first) == r {
				return d, true
			}
			break
		}
	}
	return ButtonDef{}, false
}

func (b *ButtonBar) move(dir int) {
	if next := b.step(b.focus, dir); next >= 0 {
		b.focus = next
	}
}

// step walks from i in dir, wrapping, to the next enabled button.
func (b *ButtonBar) step(i, dir int) int {
	n := len(b.buttons)
	for k := 1; k <= n; k++ {
		j := ((i+dir*k)%n + n) % n
		if !b.buttons[j].Disabled {
			return j
		}
	}
	return -1
}

func (b *ButtonBar) Render(width, height int) string {
	rendered := make([]string, 0, len(b.buttons))
	for i, d := range b.buttons {
		rendered = append(rendered, renderButton(d, i == b.focus))
	}
	if len(rendered) == 0 {
		return ""
	}
	var out string
	if b.vertical {
		out = lipgloss.JoinVertical(lipgloss.Center, rendered...)
	} else {
		spaced := make([]string, 0, len(rendered)*2)
		for i, r := range rendered {
			if i > 0 {
				spaced = append(spaced, " ")
			}
			spaced = append(spaced, r)
		}
		out = lipgloss.JoinHorizontal(lipgloss.Center, spaced...)
	}
	if width > 0 && lipgloss.Width(out) < width {
		out = lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
	}
	return out
}

func renderButton(d ButtonDef, focused bool) string {
	color, ok := variantColors[d.Variant]
	if !ok {
		color = variantColors[VariantDefault]
	}
	style := buttonStyle.BorderForeground(color).Foreground(color)
	switch {
	case d.Disabled:
		style = style.BorderForeground(buttonDisabledColor).Foreground(buttonDisabledColor)
	case focused:
		style = style.Background(color).Foreground(buttonFocusFg).Bold(true)
	}
	return style.Render(d.Label)
}
