package core

// Scopes used by the stock screens.
const (
	ScopeHome     = "home"
	ScopeTerminal = "screen:terminal"
	ScopeDialog   = "screen:dialog"
	ScopeCommand  = "screen:command"
	ScopeForm     = "screen:form"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{ScopeHome}},
		{Keys: []string{"r"}, Action: "run", Description: "run task", Scopes: []string{ScopeHome}},
		{Keys: []string{"v"}, Action: "verify", Description: "verify", Scopes: []string{ScopeHome}},
		{Keys: []string{"c"}, Action: "verify-cancel", Description: "verify/cancel", Scopes: []string{ScopeHome}},
		{Keys: []string{"m"}, Action: "message", Description: "message", Scopes: []string{ScopeHome}},
		{Keys: []string{"f"}, Action: "form", Description: "form", Scopes: []string{ScopeHome}},
		{Keys: []string{"a"}, Action: "about", Description: "about", Scopes: []string{ScopeHome}},
		{Keys: []string{"o"}, Action: "console", Description: "console", Scopes: []string{ScopeHome}},
		{Keys: []string{"q"}, Action: "confirm-quit", Description: "quit", Scopes: []string{ScopeHome}},
		{Keys: []string{"tab", "right"}, Action: "focus-next", Description: "next button", Scopes: []string{ScopeTerminal, ScopeDialog}},
		{Keys: []string{"shift+tab", "left"}, Action: "focus-prev", Description: "prev button", Scopes: []string{ScopeTerminal, ScopeDialog}},
		{Keys: []string{"enter"}, Action: "press", Description: "press", Scopes: []string{ScopeTerminal, ScopeDialog}},
		{Keys: []string{"s"}, Action: "save-log", Description: "save log", Scopes: []string{ScopeTerminal}},
		{Keys: []string{"esc", "q"}, Action: "close", Description: "close", Scopes: []string{ScopeTerminal}},
		{Keys: []string{"up", "down", "pgup", "pgdown"}, Action: "scroll", Description: "scroll", Scopes: []string{ScopeTerminal}},
		{Keys: []string{"esc"}, Action: "cancel", Description: "cancel", Scopes: []string{ScopeDialog}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeCommand, ScopeForm}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{ScopeCommand}},
		{Keys: []string{"enter"}, Action: "submit", Description: "submit", Scopes: []string{ScopeForm}},
		{Keys: []string{"tab", "shift+tab"}, Action: "next-field", Description: "next field", Scopes: []string{ScopeForm}},
		{Keys: []string{"+", "-"}, Action: "count", Description: "count", Scopes: []string{ScopeForm}},
	}
}
