package widgets

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var ErrRequired = errors.New("value is required")

// Validator checks an input value.
type Validator func(value string) error

// Required rejects empty values.
func Required(value string) error {
	if len(value) == 0 {
		return ErrRequired
	}
	return nil
}

const sideButtonWidth = 5

// NewTextInput returns an unprompted text input with a steady cursor, so
// focus and typing never schedule blink timers.
func NewTextInput() textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

var (
	inputLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	inputErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	sideButtonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa"))
)

// InputWithButton is a text input followed by a small "..." button.
type InputWithButton struct {
	ID         string
	Width      int
	input      textinput.Model
	validators []Validator
}

func NewInputWithButton(id string, width int, validators ...Validator) *InputWithButton {
	in := NewTextInput()
	w := &InputWithButton{ID: id, Width: width, input: in, validators: validators}
	w.input.Validate = chain(validators)
	return w
}

func (w *InputWithButton) InputID() string  { return w.ID + "-input" }
func (w *InputWithButton) ButtonID() string { return w.ID + "-button" }

func (w *InputWithButton) Value() string { return w.input.Value() }

func (w *InputWithButton) SetValue(v string) { w.input.SetValue(v) }

func (w *InputWithButton) Focus() tea.Cmd { return w.input.Focus() }

func (w *InputWithButton) Blur() { w.input.Blur() }

func (w *InputWithButton) Err() error { return chain(w.validators)(w.input.Value()) }

func (w *InputWithButton) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

func (w *InputWithButton) Render(width, height int) string {
	if w.Width > 0 && (width <= 0 || w.Width < width) {
		width = w.Width
	}
	w.input.Width = max(1, width-sideButtonWidth)
	return w.input.View() + " " + sideButtonStyle.Render("[...]")
}

// LabeledInput is a label paired with a text input, laid out side by side or
// stacked.
type LabeledInput struct {
	ID         string
	Label      string
	Horizontal bool
	Width      int
	input      textinput.Model
	side       *InputWithButton
	validators []Validator
}

type InputOption func(*LabeledInput)

func WithHorizontal(horizontal bool) InputOption {
	return func(l *LabeledInput) { l.Horizontal = horizontal }
}

func WithWidth(width int) InputOption {
	return func(l *LabeledInput) { l.Width = width }
}

func WithValidators(validators ...Validator) InputOption {
	return func(l *LabeledInput) { l.validators = append(l.validators, validators...) }
}

// WithSideButton replaces the plain input with an InputWithButton.
func WithSideButton() InputOption {
	return func(l *LabeledInput) { l.side = NewInputWithButton(l.InputID(), 0) }
}

func NewLabeledInput(id, label string, opts ...InputOption) *LabeledInput {
	in := NewTextInput()
	l := &LabeledInput{ID: id, Label: label, input: in}
	for _, opt := range opts {
		opt(l)
	}
	l.input.Validate = chain(l.validators)
	if l.side != nil {
		l.side.validators = l.validators
		l.side.input.Validate = l.input.Validate
	}
	return l
}

func (l *LabeledInput) LabelID() string { return l.ID + "-label" }
func (l *LabeledInput) InputID() string { return l.ID + "-input" }

func (l *LabeledInput) HasButton() bool { return l.side != nil }

func (l *LabeledInput) Value() string {
	if l.side != nil {
		return l.side.Value()
	}
	return l.input.Value()
}

func (l *LabeledInput) SetValue(v string) {
	if l.side != nil {
		l.side.SetValue(v)
		return
	}
	l.input.SetValue(v)
}

func (l *LabeledInput) Focus() tea.Cmd {
	if l.side != nil {
		return l.side.Focus()
	}
	return l.input.Focus()
}

func (l *LabeledInput) Blur() {
	if l.side != nil {
		l.side.Blur()
		return
	}
	l.input.Blur()
}

// Validate runs every validator against the current value.
func (l *LabeledInput) Validate() error {
	return chain(l.validators)(l.Value())
}

func (l *LabeledInput) Update(msg tea.Msg) tea.Cmd {
	if l.side != nil {
		return l.side.Update(msg)
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return cmd
}

// InputWidth is the width left for the input once the label is placed.
func (l *LabeledInput) InputWidth(width int) int {
	if l.Width > 0 && (width <= 0 || l.Width < width) {
		width = l.Width
	}
	if l.Horizontal {
		width -= ansi.StringWidth(l.Label) + 1
	}
	return max(1, width)
}

func (l *LabeledInput) Render(width, height int) string {
	iw := l.InputWidth(width)
	var field string
	if l.side != nil {
		field = l.side.Render(iw, 1)
	} else {
		l.input.Width = iw
		field = l.input.View()
	}
	label := inputLabelStyle.Render(l.Label)
	var out string
	if l.Horizontal {
		out = label + " " + field
	} else {
		out = label + "\n" + field
	}
	if err := l.Validate(); err != nil && strings.TrimSpace(l.Value()) != "" {
		out += "\n" + inputErrStyle.Render(err.Error())
	}
	return out
}

func chain(validators []Validator) textinput.ValidateFunc {
	return func(value string) error {
		for _, v := range validators {
			if v == nil {
				continue
			}
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}
