package widgets

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func threeButtons() []ButtonDef {
	return []ButtonDef{
		{Label: "Yes", Variant: VariantSuccess},
		{Label: "No", Variant: VariantError},
		{Label: "Cancel", Variant: VariantDefault, ID: "cancel"},
	}
}

func TestButtonBarFocusWraps(t *testing.T) {
	b := NewButtonBar(threeButtons(), true)
	require.Equal(t, 0, b.FocusIndex())

	b.Prev()
	cur, ok := b.Focused()
	require.True(t, ok)
	require.Equal(t, "cancel", cur.Key())

	b.Next()
	cur, _ = b.Focused()
	require.Equal(t, "Yes", cur.Key())
}

func TestButtonBarSkipsDisabled(t *testing.T) {
	b := NewButtonBar(threeButtons(), true)
	b.SetDisabled("No", true)
	b.Next()
	cur, _ := b.Focused()
	require.Equal(t, "cancel", cur.Key())

	b.SetDisabled("cancel", true)
	cur, _ = b.Focused()
	require.Equal(t, "Yes", cur.Key())
	require.False(t, b.Focus("No"))
}

func TestButtonBarHotkey(t *testing.T) {
	b := NewButtonBar(threeButtons(), true)
	d, ok := b.Hotkey('c')
	require.True(t, ok)
	require.Equal(t, "cancel", d.Key())

	_, ok = b.Hotkey('z')
	require.False(t, ok)
}

func TestButtonBarPress(t *testing.T) {
	b := NewButtonBar(threeButtons(), true)
	d, ok := b.Press()
	require.True(t, ok)
	require.Equal(t, "Yes", d.Key())

	for _, def := range threeButtons() {
		b.SetDisabled(def.Key(), true)
	}
	_, ok = b.Press()
	require.False(t, ok)
}

func TestButtonBarEmpty(t *testing.T) {
	b := NewButtonBar(nil, true)
	_, ok := b.Focused()
	require.False(t, ok)
	b.Next()
	require.Equal(t, "", b.Render(10, 1))
}

func TestButtonBarRenderOrientation(t *testing.T) {
	b := NewButtonBar(threeButtons(), true)
	plain := ansi.Strip(b.Render(0, 0))
	require.Contains(t, plain, "Yes")
	require.Contains(t, plain, "Cancel")
	require.Equal(t, 3, len(splitLines(plain)))

	b.SetHorizontal(false)
	require.False(t, b.Horizontal())
	require.Equal(t, 9, len(splitLines(ansi.Strip(b.Render(0, 0)))))
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
