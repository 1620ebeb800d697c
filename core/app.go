package core

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type Screen interface {
	ID() ScreenID
	Title() string
	Scope() string
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
}

// Mounter is implemented by screens that need to act when they are pushed.
type Mounter interface {
	Mount() tea.Cmd
}

type Model struct {
	width     int
	height    int
	title     string
	base      Screen
	screens   ScreenStack
	bus       *Bus
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	logger    *slog.Logger
	help      help.Model

	OpenCommandModal func(m *Model, scope string) Screen
}

type Option func(*Model)

func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithCommandModal(open func(m *Model, scope string) Screen) Option {
	return func(m *Model) { m.OpenCommandModal = open }
}

// NewModel builds the root model. base is the screen shown when the stack is
// empty; it can receive mail but is never dismissed.
func NewModel(base Screen, bus *Bus, keys *KeyRegistry, commands *CommandRegistry, opts ...Option) *Model {
	if bus == nil {
		bus = NewBus()
	}
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	if commands == nil {
		commands = NewCommandRegistry(nil)
	}
	m := &Model{
		title:    "termkit",
		base:     base,
		bus:      bus,
		keys:     keys,
		commands: commands,
		status:   "Ready",
		width:    100,
		height:   32,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		help:     newHelp(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	if mt, ok := m.base.(Mounter); ok {
		return mt.Mount()
	}
	return nil
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m *Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.base == nil {
		return "app"
	}
	return m.base.Scope()
}

// PushScreen stacks s on the UI loop and mounts it.
func (m *Model) PushScreen(s Screen, onDismiss DismissFunc) tea.Cmd {
	if s == nil {
		return nil
	}
	m.screens.Push(s, onDismiss)
	m.logger.Debug("screen pushed", "screen", s.ID(), "depth", m.screens.Len())
	if mt, ok := s.(Mounter); ok {
		return mt.Mount()
	}
	return nil
}

func (m *Model) Top() Screen {
	return m.screens.Top()
}

func (m *Model) Screens() []Screen {
	return m.screens.Screens()
}

func (m *Model) Base() Screen {
	return m.base
}

func (m *Model) Bus() *Bus {
	return m.bus
}

func (m *Model) Quitting() bool {
	return m.quitting
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) KeyRegistry() *KeyRegistry {
	return m.keys
}
