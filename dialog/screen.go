package dialog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/termkit/core"
	"github.com/jask/termkit/widgets"
)

type State int

const (
	StateCreated State = iota
	StatePushed
	StateDismissed
	StateDelivered
	StateDiscarded
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StatePushed:
		return "pushed"
	case StateDismissed:
		return "dismissed"
	case StateDelivered:
		return "delivered"
	case StateDiscarded:
		return "discarded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Align(lipgloss.Center)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
)

// Screen is the modal for one Request. It closes with exactly one Result.
type Screen struct {
	id      core.ScreenID
	req     Request
	buttons *widgets.ButtonBar
	state   State
	chosen  *Result
}

func NewScreen(req Request) *Screen {
	defs := make([]widgets.ButtonDef, 0, len(req.Choices))
	for _, c := range req.Choices {
		defs = append(defs, widgets.ButtonDef{Label: c.Label, Variant: c.Intent})
	}
	return &Screen{
		id:      core.NewScreenID("dialog"),
		req:     req,
		buttons: widgets.NewButtonBar(defs, true),
	}
}

func (s *Screen) ID() core.ScreenID { return s.id }

func (s *Screen) Title() string {
	if s.req.Title != "" {
		return s.req.Title
	}
	return "Question"
}

func (s *Screen) Scope() string    { return core.ScopeDialog }
func (s *Screen) Request() Request { return s.req }
func (s *Screen) State() State     { return s.state }

// Chosen returns the recorded choice once the dialog is dismissed.
func (s *Screen) Chosen() (Result, bool) {
	if s.chosen == nil {
		return Result{}, false
	}
	return *s.chosen, true
}

func (s *Screen) Mount() tea.Cmd {
	if s.state == StateCreated {
		s.state = StatePushed
	}
	return nil
}

func (s *Screen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "tab", "right":
		s.buttons.Next()
	case "shift+tab", "left":
		s.buttons.Prev()
	case "enter", " ":
		return s, s.Press(s.buttons.FocusIndex())
	case "esc":
		if i := s.req.cancelIndex(); i >= 0 {
			return s, s.Press(i)
		}
	default:
		if key.Type == tea.KeyRunes && len(key.Runes) == 1 {
			return s, s.pressHotkey(key.Runes[0])
		}
	}
	return s, nil
}

func (s *Screen) pressHotkey(r rune) tea.Cmd {
	d, ok := s.buttons.Hotkey(r)
	if !ok {
		return nil
	}
	for i, c := range s.req.Choices {
		if c.Label == d.Label {
			return s.Press(i)
		}
	}
	return nil
}

// Press records choice i and dismisses the dialog. Only the first press of a
// visible dialog counts.
func (s *Screen) Press(i int) tea.Cmd {
	if s.state != StatePushed || i < 0 || i >= len(s.req.Choices) {
		return nil
	}
	c := s.req.Choices[i]
	res := Result{RequestID: s.req.ID, Label: c.Label, Index: i, Answer: c.Answer}
	s.chosen = &res
	s.state = StateDismissed
	return core.Dismiss(s.id, res)
}

func (s *Screen) View(width, height int) string {
	prompt := s.req.Prompt
	w := 0
	for _, line := range strings.Split(prompt, "\n") {
		w = max(w, utf8.RuneCountInString(line))
	}
	w = min(max(w, lipgloss.Width(s.buttons.Render(0, 3))), max(10, width))
	var rows []widgets.Row
	if s.req.Title != "" {
		rows = append(rows, widgets.Row{Widget: widgets.Text(titleStyle.Render(s.req.Title))}, widgets.Row{Widget: widgets.Text("")})
	}
	rows = append(rows,
		widgets.Row{Widget: widgets.Text(promptStyle.Width(w).Render(prompt))},
		widgets.Row{Widget: widgets.Text("")},
		widgets.Row{Widget: s.buttons},
	)
	return widgets.Column{Rows: rows, Align: lipgloss.Center}.Render(w, max(1, height))
}
