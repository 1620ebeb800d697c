package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// PushScreenMsg asks the model to push Screen; OnDismiss runs once when the
// screen is dismissed.
type PushScreenMsg struct {
	Screen    Screen
	OnDismiss DismissFunc
}

// PopScreenMsg closes the top screen without a result; its continuation runs
// with nil.
type PopScreenMsg struct{}

// DismissMsg removes the screen with the given id and resumes its
// continuation with Result.
type DismissMsg struct {
	Screen ScreenID
	Result any
}

// Envelope addresses Msg to a single screen, wherever it sits in the stack.
type Envelope struct {
	To  ScreenID
	Msg tea.Msg
}

type CommandExecuteMsg struct {
	CommandID string
}

// CorrelationKey tags an asynchronous result with the flow that asked for it.
// Keys are not unique: two pending requests may share one.
type CorrelationKey string

// Correlated is an immutable payload carried back to a requester together
// with the key it supplied.
type Correlated[T any] struct {
	Key     CorrelationKey
	Payload T
}

func Correlate[T any](key CorrelationKey, payload T) Correlated[T] {
	return Correlated[T]{Key: key, Payload: payload}
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

// Dismiss returns a command that dismisses screen id with result.
func Dismiss(id ScreenID, result any) tea.Cmd {
	return func() tea.Msg { return DismissMsg{Screen: id, Result: result} }
}
