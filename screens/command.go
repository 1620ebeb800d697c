package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/termkit/core"
	"github.com/jask/termkit/widgets"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}
func (i CommandOption) Description() string { return i.Desc }
func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// OptionsFromResults adapts registry search results for the palette.
func OptionsFromResults(results []core.CommandResult) []CommandOption {
	out := make([]CommandOption, 0, len(results))
	for _, r := range results {
		out = append(out, CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
	}
	return out
}

type CommandScreen struct {
	id       core.ScreenID
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

func NewCommandScreen(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := widgets.NewTextInput()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowTitle(false)
	s := &CommandScreen{id: core.NewScreenID("command"), scope: scope, search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

// NewCommandPalette searches the model's command registry and executes the
// chosen command.
func NewCommandPalette(m *core.Model, scope string) core.Screen {
	return NewCommandScreen(scope, func(query string) []CommandOption {
		return OptionsFromResults(m.CommandRegistry().Search(query, scope, m))
	}, func(id string) tea.Msg {
		return core.CommandExecuteMsg{CommandID: id}
	})
}

func (s *CommandScreen) ID() core.ScreenID { return s.id }
func (s *CommandScreen) Title() string     { return "Command Palette" }
func (s *CommandScreen) Scope() string     { return core.ScopeCommand }

// Items lists the options currently shown.
func (s *CommandScreen) Items() []CommandOption {
	items := s.list.Items()
	out := make([]CommandOption, 0, len(items))
	for _, it := range items {
		if opt, ok := it.(CommandOption); ok {
			out = append(out, opt)
		}
	}
	return out
}

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, core.Dismiss(s.id, nil)
		case "enter":
			it, ok := s.list.SelectedItem().(CommandOption)
			if !ok {
				return s, nil
			}
			if it.Disabled {
				return s, tea.Batch(core.Dismiss(s.id, nil), core.StatusCmd(it.Reason))
			}
			if s.onSelect == nil {
				return s, core.Dismiss(s.id, it.ID)
			}
			return s, tea.Batch(core.Dismiss(s.id, it.ID), func() tea.Msg { return s.onSelect(it.ID) })
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(msg)
			return s, cmd
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.refresh()
	return s, cmd
}

func (s *CommandScreen) refresh() {
	query := strings.TrimSpace(s.input.Value())
	items := s.search(query)
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = s.list.SetItems(ls)
	s.list.Select(0)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-4))
	return "Command Palette (scope: " + s.scope + ")\n" + s.input.View() + "\n" + s.list.View()
}
