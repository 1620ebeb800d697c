package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.broadcast(msg)
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case Envelope:
		return m, m.deliver(msg)
	case PushScreenMsg:
		return m, m.PushScreen(msg.Screen, msg.OnDismiss)
	case DismissMsg:
		cmd, ok := m.screens.Dismiss(msg.Screen, msg.Result)
		if !ok {
			m.logger.Debug("dismiss for screen not on stack", "screen", msg.Screen)
		}
		return m, cmd
	case PopScreenMsg:
		_, cmd := m.screens.Pop()
		return m, cmd
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, m)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		// Screens beneath the top one never see keys.
		if top := m.screens.Top(); top != nil {
			return m, m.updateScreen(top, msg)
		}
		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			return m, m.PushScreen(m.OpenCommandModal(m, scope), nil)
		}
		if m.base != nil {
			return m, m.updateScreen(m.base, msg)
		}
		return m, nil
	}

	if top := m.screens.Top(); top != nil {
		return m, m.updateScreen(top, msg)
	}
	if m.base != nil {
		return m, m.updateScreen(m.base, msg)
	}
	return m, nil
}

func (m *Model) deliver(env Envelope) tea.Cmd {
	if m.base != nil && m.base.ID() == env.To {
		return m.updateScreen(m.base, env.Msg)
	}
	for _, s := range m.screens.Screens() {
		if s.ID() == env.To {
			return m.updateScreen(s, env.Msg)
		}
	}
	m.logger.Debug("dropped message for unknown screen", "screen", env.To)
	return nil
}

func (m *Model) updateScreen(s Screen, msg tea.Msg) tea.Cmd {
	id := s.ID()
	next, cmd := s.Update(msg)
	if next == nil {
		return cmd
	}
	if m.base != nil && m.base.ID() == id {
		m.base = next
		return cmd
	}
	m.screens.replace(id, next)
	return cmd
}

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, m.screens.Len()+1)
	if m.base != nil {
		cmds = append(cmds, m.updateScreen(m.base, msg))
	}
	for _, s := range m.screens.Screens() {
		cmds = append(cmds, m.updateScreen(s, msg))
	}
	return tea.Batch(cmds...)
}
