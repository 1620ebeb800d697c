package widgets

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	UpDownMin = 1
	UpDownMax = 999
)

var (
	updownStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	updownOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475a"))
)

// UpDown is an integer spinner bounded to [UpDownMin, UpDownMax].
type UpDown struct {
	text     string
	Disabled bool
	Hidden   bool
}

func NewUpDown() *UpDown {
	return &UpDown{text: strconv.Itoa(UpDownMin)}
}

// Value parses the current text; ok is false when it is not a number in range.
func (u *UpDown) Value() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(u.text))
	if err != nil || n < UpDownMin || n > UpDownMax {
		return 0, false
	}
	return n, true
}

func (u *UpDown) SetValue(n int) {
	u.text = strconv.Itoa(n)
}

// SetText stores raw typed input; it may be invalid until the next press.
func (u *UpDown) SetText(s string) {
	u.text = s
}

func (u *UpDown) Text() string { return u.text }

func (u *UpDown) Inc() { u.press(1) }

func (u *UpDown) Dec() { u.press(-1) }

// press applies delta; unparsable input resets to the minimum.
func (u *UpDown) press(delta int) {
	if u.Disabled {
		return
	}
	n, ok := u.Value()
	if !ok {
		u.SetValue(UpDownMin)
		return
	}
	n += delta
	n = min(max(n, UpDownMin), UpDownMax)
	u.SetValue(n)
}

func (u *UpDown) MinusEnabled() bool {
	if u.Disabled {
		return false
	}
	n, ok := u.Value()
	return ok && n > UpDownMin
}

func (u *UpDown) PlusEnabled() bool {
	if u.Disabled {
		return false
	}
	n, ok := u.Value()
	return !ok || n < UpDownMax
}

func (u *UpDown) Render(width, height int) string {
	if u.Hidden {
		return ""
	}
	plus, minus := updownStyle, updownStyle
	if !u.PlusEnabled() {
		plus = updownOffStyle
	}
	if !u.MinusEnabled() {
		minus = updownOffStyle
	}
	return plus.Render("[+]") + " " + updownStyle.Render(u.text) + " " + minus.Render("[-]")
}
