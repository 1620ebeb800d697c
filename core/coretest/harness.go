// Package coretest drives a core.Model without a terminal: commands run
// inline and the bus is drained into Update until it is empty.
package coretest

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/termkit/core"
)

// StubScreen records every message it receives.
type StubScreen struct {
	id    core.ScreenID
	scope string
	Got   []tea.Msg
}

func NewStubScreen(scope string) *StubScreen {
	return &StubScreen{id: core.NewScreenID("stub"), scope: scope}
}

func (s *StubScreen) ID() core.ScreenID { return s.id }
func (s *StubScreen) Title() string     { return "stub" }
func (s *StubScreen) Scope() string     { return s.scope }

func (s *StubScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	s.Got = append(s.Got, msg)
	return s, nil
}

func (s *StubScreen) View(width, height int) string { return "" }

// Harness owns a model and its bus.
type Harness struct {
	Bus   *core.Bus
	Model *core.Model
	// Quit is set once a tea.Quit command has run.
	Quit bool
}

func New(base core.Screen, bus *core.Bus, opts ...core.Option) *Harness {
	if bus == nil {
		bus = core.NewBus()
	}
	return &Harness{
		Bus:   bus,
		Model: core.NewModel(base, bus, core.NewKeyRegistry(core.DefaultKeyBindings()), nil, opts...),
	}
}

// Send feeds msg to the model and settles.
func (h *Harness) Send(msg tea.Msg) {
	h.process(msg)
	h.Settle()
}

// Run executes cmd and settles.
func (h *Harness) Run(cmd tea.Cmd) {
	h.exec(cmd)
	h.Settle()
}

// Key sends a key press by name, e.g. "enter" or "q".
func (h *Harness) Key(name string) {
	h.Send(KeyMsg(name))
}

// Settle drains the bus into the model until nothing is queued.
func (h *Harness) Settle() {
	for h.Bus.Len() > 0 {
		for _, msg := range h.Bus.Drain() {
			h.process(msg)
		}
	}
}

func (h *Harness) exec(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	h.process(cmd())
}

func (h *Harness) process(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range msg {
			h.exec(c)
		}
		return
	case tea.QuitMsg:
		h.Quit = true
		return
	}
	_, cmd := h.Model.Update(msg)
	h.exec(cmd)
}

// KeyMsg builds a tea.KeyMsg for a key name.
func KeyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
