package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type testScreen struct {
	id      ScreenID
	scope   string
	got     []tea.Msg
	mounted int
}

func newTestScreen(kind, scope string) *testScreen {
	return &testScreen{id: NewScreenID(kind), scope: scope}
}

func (s *testScreen) ID() ScreenID         { return s.id }
func (s *testScreen) Title() string        { return "Screen" }
func (s *testScreen) Scope() string        { return s.scope }
func (s *testScreen) View(int, int) string { return "screen" }
func (s *testScreen) Mount() tea.Cmd       { s.mounted++; return nil }
func (s *testScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return s, Dismiss(s.id, "closed")
	}
	return s, nil
}

// step feeds msg to m and runs the resulting command chain inline.
func step(m *Model, msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if batch, ok := next.(tea.BatchMsg); ok {
			for _, c := range batch {
				if c != nil {
					queue = append(queue, c())
				}
			}
			continue
		}
		if next == nil {
			continue
		}
		_, cmd := m.Update(next)
		if cmd != nil {
			queue = append(queue, cmd())
		}
		queue = append(queue, m.Bus().Drain()...)
	}
}

func TestScreenGetsKeyBeforeBase(t *testing.T) {
	base := newTestScreen("base", ScopeHome)
	m := NewModel(base, nil, nil, nil)
	screen := newTestScreen("modal", ScopeDialog)
	m.PushScreen(screen, nil)

	step(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if len(screen.got) != 1 {
		t.Fatalf("screen should handle key first")
	}
	if len(base.got) != 0 {
		t.Fatalf("base should not receive key when screen open")
	}
	if len(m.Screens()) != 1 {
		t.Fatalf("screen should remain open")
	}
}

func TestDismissRunsContinuationOnce(t *testing.T) {
	m := NewModel(newTestScreen("base", ScopeHome), nil, nil, nil)
	screen := newTestScreen("modal", ScopeDialog)
	var results []any
	m.PushScreen(screen, func(r any) tea.Cmd {
		results = append(results, r)
		return nil
	})

	step(m, tea.KeyMsg{Type: tea.KeyEsc})
	step(m, DismissMsg{Screen: screen.ID(), Result: "again"})
	if len(m.Screens()) != 0 {
		t.Fatalf("expected screen to be dismissed")
	}
	if len(results) != 1 || results[0] != "closed" {
		t.Fatalf("expected one continuation call, got %v", results)
	}
}

func TestDismissBelowTopKeepsOrder(t *testing.T) {
	m := NewModel(nil, nil, nil, nil)
	a := newTestScreen("a", ScopeDialog)
	b := newTestScreen("b", ScopeDialog)
	m.PushScreen(a, nil)
	m.PushScreen(b, nil)

	step(m, DismissMsg{Screen: a.ID()})
	if got := m.Screens(); len(got) != 1 || got[0].ID() != b.ID() {
		t.Fatalf("expected only b to remain, got %v", got)
	}
}

func TestEnvelopeReachesScreenBelowModal(t *testing.T) {
	base := newTestScreen("base", ScopeHome)
	m := NewModel(base, nil, nil, nil)
	lower := newTestScreen("lower", ScopeTerminal)
	upper := newTestScreen("upper", ScopeDialog)
	m.PushScreen(lower, nil)
	m.PushScreen(upper, nil)

	m.Bus().Inbox(lower.ID()).Post("hello")
	m.Bus().Inbox(base.ID()).Post("base mail")
	for _, msg := range m.Bus().Drain() {
		step(m, msg)
	}
	if len(lower.got) != 1 || lower.got[0] != "hello" {
		t.Fatalf("lower screen should get its mail, got %v", lower.got)
	}
	if len(base.got) != 1 || base.got[0] != "base mail" {
		t.Fatalf("base should get its mail, got %v", base.got)
	}
	if len(upper.got) != 0 {
		t.Fatalf("top screen should not see other mail, got %v", upper.got)
	}
}

func TestPushScreenMsgMounts(t *testing.T) {
	m := NewModel(nil, nil, nil, nil)
	s := newTestScreen("modal", ScopeDialog)
	m.Bus().Push(s, nil)
	for _, msg := range m.Bus().Drain() {
		step(m, msg)
	}
	if m.Top() != Screen(s) || s.mounted != 1 {
		t.Fatalf("expected pushed and mounted screen")
	}
}

func TestPopScreenResumesWithNil(t *testing.T) {
	m := NewModel(nil, nil, nil, nil)
	var results []any
	m.PushScreen(newTestScreen("modal", ScopeDialog), func(r any) tea.Cmd {
		results = append(results, r)
		return nil
	})
	step(m, PopScreenMsg{})
	step(m, PopScreenMsg{})
	if len(m.Screens()) != 0 {
		t.Fatalf("pop should drop the screen")
	}
	if len(results) != 1 || results[0] != nil {
		t.Fatalf("expected one nil resume, got %v", results)
	}
}

func TestQuitBindingAndPalette(t *testing.T) {
	base := newTestScreen("base", ScopeHome)
	keys := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Scopes: []string{ScopeHome}},
		{Keys: []string{"x"}, Action: "quit", Scopes: []string{ScopeHome}},
	})
	palette := newTestScreen("palette", ScopeCommand)
	m := NewModel(base, nil, keys, nil, WithCommandModal(func(*Model, string) Screen { return palette }))

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if m.Top() != Screen(palette) {
		t.Fatalf("expected palette on top")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.Quitting() {
		t.Fatalf("quit binding must not fire while a screen is open")
	}
	step(m, DismissMsg{Screen: palette.ID()})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if !m.Quitting() || cmd == nil {
		t.Fatalf("expected quit from home scope")
	}
}

func TestStatusMsgSetsError(t *testing.T) {
	m := NewModel(nil, nil, nil, nil)
	m.Update(StatusMsg{Text: "boom", IsErr: true})
	if text, isErr := m.Status(); text != "boom" || !isErr {
		t.Fatalf("unexpected status %q %v", text, isErr)
	}
}

func TestViewCompositesStackedScreens(t *testing.T) {
	m := NewModel(newTestScreen("base", ScopeHome), nil, nil, nil, WithTitle("demo"))
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.PushScreen(newTestScreen("modal", ScopeDialog), nil)
	view := m.View()
	if !strings.Contains(view, "demo") || !strings.Contains(view, "screen") {
		t.Fatalf("expected header and screen body in view:\n%s", view)
	}
	if got := len(strings.Split(view, "\n")); got != 20 {
		t.Fatalf("expected view to fill 20 lines, got %d", got)
	}
}

func TestFooterShowsScopeHints(t *testing.T) {
	m := NewModel(newTestScreen("base", ScopeHome), nil, NewKeyRegistry(DefaultKeyBindings()), nil)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 10})
	footer := RenderFooter(m)
	if !strings.Contains(footer, "ctrl+k") || !strings.Contains(footer, "commands") {
		t.Fatalf("expected home hints in footer, got %q", footer)
	}
	m.PushScreen(newTestScreen("modal", ScopeDialog), nil)
	footer = RenderFooter(m)
	if strings.Contains(footer, "ctrl+k") || !strings.Contains(footer, "cancel") {
		t.Fatalf("expected dialog hints in footer, got %q", footer)
	}
}
