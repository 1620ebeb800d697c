package widgets

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	require.ErrorIs(t, Required(""), ErrRequired)
	require.NoError(t, Required("x"))
}

func TestLabeledInputValidate(t *testing.T) {
	l := NewLabeledInput("name", "Name", WithValidators(Required))
	require.ErrorIs(t, l.Validate(), ErrRequired)

	l.SetValue("Ada")
	require.NoError(t, l.Validate())
	require.Equal(t, "Ada", l.Value())
}

func TestLabeledInputCustomValidator(t *testing.T) {
	errShort := errors.New("too short")
	l := NewLabeledInput("city", "City", WithValidators(Required, func(v string) error {
		if len(v) < 3 {
			return errShort
		}
		return nil
	}))
	l.SetValue("NY")
	require.ErrorIs(t, l.Validate(), errShort)
	require.Contains(t, ansi.Strip(l.Render(30, 3)), "too short")
}

func TestLabeledInputWidths(t *testing.T) {
	h := NewLabeledInput("a", "Label", WithHorizontal(true), WithWidth(20))
	require.Equal(t, 20-len("Label")-1, h.InputWidth(40))

	v := NewLabeledInput("b", "Label", WithWidth(20))
	require.Equal(t, 20, v.InputWidth(40))
	require.Equal(t, 10, v.InputWidth(10))
}

func TestLabeledInputLayout(t *testing.T) {
	h := NewLabeledInput("a", "Label", WithHorizontal(true))
	require.Equal(t, 1, strings.Count(ansi.Strip(h.Render(30, 1)), "\n")+1)

	v := NewLabeledInput("b", "Label")
	require.Equal(t, 2, strings.Count(ansi.Strip(v.Render(30, 2)), "\n")+1)
}

func TestLabeledInputSideButton(t *testing.T) {
	l := NewLabeledInput("path", "Path", WithSideButton(), WithValidators(Required))
	require.True(t, l.HasButton())
	require.Equal(t, "path-input", l.InputID())
	require.ErrorIs(t, l.Validate(), ErrRequired)

	l.SetValue("/tmp")
	require.Equal(t, "/tmp", l.Value())
	require.Contains(t, ansi.Strip(l.Render(30, 2)), "[...]")
}
