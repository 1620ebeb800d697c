package core

import tea "github.com/charmbracelet/bubbletea"

// DismissFunc resumes the pusher of a screen with the screen's result.
type DismissFunc func(result any) tea.Cmd

type stackEntry struct {
	screen    Screen
	onDismiss DismissFunc
}

// ScreenStack holds suspended continuations: each push records how to resume
// the caller, each dismissal pops the screen and resumes it exactly once.
type ScreenStack struct {
	items []stackEntry
}

func (s *ScreenStack) Push(screen Screen, onDismiss DismissFunc) {
	if screen == nil {
		return
	}
	s.items = append(s.items, stackEntry{screen: screen, onDismiss: onDismiss})
}

// Pop removes the top screen and resumes its continuation with a nil result.
func (s *ScreenStack) Pop() (Screen, tea.Cmd) {
	if len(s.items) == 0 {
		return nil, nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	if last.onDismiss == nil {
		return last.screen, nil
	}
	return last.screen, last.onDismiss(nil)
}

// Dismiss removes the screen with id and runs its continuation with result.
// It reports false when no such screen is stacked.
func (s *ScreenStack) Dismiss(id ScreenID, result any) (tea.Cmd, bool) {
	i, ok := s.index(id)
	if !ok {
		return nil, false
	}
	entry := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	if entry.onDismiss == nil {
		return nil, true
	}
	return entry.onDismiss(result), true
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1].screen
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

func (s ScreenStack) Contains(id ScreenID) bool {
	_, ok := s.index(id)
	return ok
}

// Screens lists stacked screens bottom to top.
func (s ScreenStack) Screens() []Screen {
	out := make([]Screen, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, e.screen)
	}
	return out
}

func (s *ScreenStack) replace(id ScreenID, next Screen) {
	if next == nil {
		return
	}
	if i, ok := s.index(id); ok {
		s.items[i].screen = next
	}
}

func (s ScreenStack) index(id ScreenID) (int, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].screen.ID() == id {
			return i, true
		}
	}
	return 0, false
}
