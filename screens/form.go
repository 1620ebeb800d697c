package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/termkit/core"
	"github.com/jask/termkit/widgets"
)

type FormField struct {
	Key        string
	Label      string
	Value      string
	Required   bool
	Validators []widgets.Validator
}

// FormResult is the dismiss result of a submitted form. A cancelled form is
// dismissed with nil.
type FormResult struct {
	Values map[string]string
	Count  int
}

var (
	formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	formHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	formErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	formFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
)

// FormScreen edits a set of labeled inputs and, optionally, a count.
type FormScreen struct {
	id     core.ScreenID
	title  string
	fields []FormField
	inputs []*widgets.LabeledInput
	count  *widgets.UpDown
	focus  int
	err    string
}

// NewFormScreen builds a form. withCount adds an up/down spinner after the
// text fields.
func NewFormScreen(title string, fields []FormField, withCount bool) *FormScreen {
	inputs := make([]*widgets.LabeledInput, 0, len(fields))
	for _, f := range fields {
		validators := append([]widgets.Validator(nil), f.Validators...)
		if f.Required {
			validators = append([]widgets.Validator{widgets.Required}, validators...)
		}
		in := widgets.NewLabeledInput(f.Key, f.Label, widgets.WithHorizontal(true), widgets.WithValidators(validators...))
		in.SetValue(f.Value)
		inputs = append(inputs, in)
	}
	s := &FormScreen{id: core.NewScreenID("form"), title: title, fields: fields, inputs: inputs}
	if withCount {
		s.count = widgets.NewUpDown()
	}
	return s
}

func (s *FormScreen) ID() core.ScreenID { return s.id }
func (s *FormScreen) Title() string     { return s.title }
func (s *FormScreen) Scope() string     { return core.ScopeForm }

func (s *FormScreen) Mount() tea.Cmd {
	if len(s.inputs) > 0 {
		return s.inputs[0].Focus()
	}
	return nil
}

// Count returns the spinner, or nil when the form has none.
func (s *FormScreen) Count() *widgets.UpDown { return s.count }

func (s *FormScreen) Input(key string) *widgets.LabeledInput {
	for i, f := range s.fields {
		if f.Key == key {
			return s.inputs[i]
		}
	}
	return nil
}

func (s *FormScreen) slots() int {
	n := len(s.inputs)
	if s.count != nil {
		n++
	}
	return n
}

func (s *FormScreen) onCount() bool {
	return s.count != nil && s.focus == len(s.inputs)
}

func (s *FormScreen) move(dir int) tea.Cmd {
	n := s.slots()
	if n == 0 {
		return nil
	}
	if s.focus < len(s.inputs) {
		s.inputs[s.focus].Blur()
	}
	s.focus = (s.focus + dir + n) % n
	if s.focus < len(s.inputs) {
		return s.inputs[s.focus].Focus()
	}
	return nil
}

func (s *FormScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "esc":
		return s, core.Dismiss(s.id, nil)
	case "tab", "down":
		return s, s.move(1)
	case "shift+tab", "up":
		return s, s.move(-1)
	case "enter":
		return s, s.submit()
	}
	if s.onCount() {
		s.updateCount(key)
		return s, nil
	}
	if s.focus < len(s.inputs) {
		return s, s.inputs[s.focus].Update(msg)
	}
	return s, nil
}

func (s *FormScreen) updateCount(key tea.KeyMsg) {
	switch key.String() {
	case "+", "right":
		s.count.Inc()
	case "-", "left":
		s.count.Dec()
	case "backspace":
		t := s.count.Text()
		if len(t) > 0 {
			s.count.SetText(t[:len(t)-1])
		}
	default:
		if key.Type == tea.KeyRunes {
			s.count.SetText(s.count.Text() + string(key.Runes))
		}
	}
}

func (s *FormScreen) submit() tea.Cmd {
	for i, in := range s.inputs {
		if err := in.Validate(); err != nil {
			s.err = s.fields[i].Label + ": " + err.Error()
			return core.StatusCmd(s.err)
		}
	}
	res := FormResult{Values: make(map[string]string, len(s.inputs))}
	for i, in := range s.inputs {
		res.Values[s.fields[i].Key] = in.Value()
	}
	if s.count != nil {
		n, ok := s.count.Value()
		if !ok {
			s.err = "count must be a number between 1 and 999"
			return core.StatusCmd(s.err)
		}
		res.Count = n
	}
	s.err = ""
	return core.Dismiss(s.id, res)
}

func (s *FormScreen) View(width, height int) string {
	w := max(20, min(width, 60))
	lines := []string{formTitleStyle.Render(s.title), ""}
	for i, in := range s.inputs {
		row := in.Render(w, 1)
		if i == s.focus {
			row = formFocusStyle.Render("› ") + row
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	if s.count != nil {
		prefix := "  "
		if s.onCount() {
			prefix = formFocusStyle.Render("› ")
		}
		lines = append(lines, prefix+"Count "+s.count.Render(w, 1))
	}
	if s.err != "" {
		lines = append(lines, "", formErrStyle.Render(s.err))
	}
	lines = append(lines, "", formHintStyle.Render("enter: submit  esc: cancel  tab: next field"))
	return strings.Join(lines, "\n")
}
