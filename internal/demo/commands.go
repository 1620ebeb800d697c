package demo

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/termkit/core"
)

// Commands exposes the home actions in the command palette.
func Commands(h *Home) []core.Command {
	action := func(name string) func(m *core.Model) tea.Cmd {
		return func(m *core.Model) tea.Cmd { return h.Action(name) }
	}
	running := func(m *core.Model) (bool, string) {
		if h.deps.Console.Terminal().Running() {
			return true, "a task is running"
		}
		return false, ""
	}
	scopes := []string{core.ScopeHome}
	return []core.Command{
		{ID: "run", Name: "Run Demo Task", Description: "ask, then run the counting task", Scopes: scopes, Execute: action("run"), Disabled: running},
		{ID: "run-now", Name: "Run Demo Task Now", Description: "run the counting task without asking", Scopes: scopes, Execute: action("run-now"), Disabled: running},
		{ID: "verify", Name: "Verify", Description: "yes/no question", Scopes: scopes, Execute: action("verify")},
		{ID: "verify-cancel", Name: "Verify Cancel", Description: "yes/no/cancel question", Scopes: scopes, Execute: action("verify-cancel")},
		{ID: "message", Name: "Message", Description: "single button message", Scopes: scopes, Execute: action("message")},
		{ID: "about", Name: "About", Description: "about termkit", Scopes: scopes, Execute: action("about")},
		{ID: "form", Name: "Form", Description: "labeled inputs and a counter", Scopes: scopes, Execute: action("form")},
		{ID: "console", Name: "Console", Description: "open the console", Scopes: scopes, Execute: action("console")},
		{ID: "quit", Name: "Quit", Description: "leave termkit", Scopes: scopes, Execute: action("confirm-quit")},
	}
}
