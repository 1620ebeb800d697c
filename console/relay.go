package console

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/termkit/core"
	"github.com/jask/termkit/internal/logging"
)

// Printer is the logging surface tasks see.
type Printer interface {
	Print(msg string)
	Warning(msg string)
	Error(msg string)
}

// Console routes Print, Warning and Error from any goroutine into the
// installed Terminal while it is shown. Calls made while it is hidden are
// dropped.
type Console struct {
	bus      *core.Bus
	terminal *Terminal
	inbox    core.Inbox
	logger   *slog.Logger

	// active is read from any goroutine and written on the UI loop.
	active atomic.Bool

	mu        sync.Mutex
	dismissed any
}

var (
	installMu sync.Mutex
	installed *Console
)

// Init installs the process-wide Console. A second call returns the instance
// that is already installed and ignores its arguments.
func Init(bus *core.Bus, terminal *Terminal, logger *slog.Logger) *Console {
	installMu.Lock()
	defer installMu.Unlock()
	if installed != nil {
		if installed.bus != bus || installed.terminal != terminal {
			logging.OrNop(logger).Warn("console already installed, keeping the existing one",
				"screen", installed.terminal.ID())
		}
		return installed
	}
	c := &Console{
		bus:      bus,
		terminal: terminal,
		inbox:    terminal.Inbox(),
		logger:   logging.OrNop(logger),
	}
	terminal.ctx = WithContext(terminal.ctx, c)
	installed = c
	return c
}

// Teardown releases the installed Console.
func Teardown() {
	installMu.Lock()
	defer installMu.Unlock()
	installed = nil
}

// Current returns the installed Console, or nil.
func Current() *Console {
	installMu.Lock()
	defer installMu.Unlock()
	return installed
}

func (c *Console) Terminal() *Terminal { return c.terminal }

func (c *Console) Active() bool { return c.active.Load() }

// DismissResult is the value the Terminal was last dismissed with.
func (c *Console) DismissResult() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dismissed
}

// Show pushes the Terminal with a fresh log. It reports false, doing nothing,
// when the console is already shown. Call it on the UI loop.
func (c *Console) Show() bool {
	if c.active.Load() {
		return false
	}
	c.terminal.Clear()
	c.mu.Lock()
	c.dismissed = nil
	c.mu.Unlock()
	c.active.Store(true)
	c.bus.Push(c.terminal, c.onDismiss)
	c.logger.Debug("console shown", "screen", c.terminal.ID())
	return true
}

func (c *Console) onDismiss(result any) tea.Cmd {
	c.mu.Lock()
	c.dismissed = result
	c.mu.Unlock()
	c.active.Store(false)
	c.logger.Debug("console dismissed", "result", result)
	return nil
}

// Run shows the console if needed and hands task to the Terminal.
func (c *Console) Run(task Task, args Args) tea.Cmd {
	c.Show()
	return c.terminal.Run(task, args)
}

func (c *Console) Print(msg string)   { c.post(WriteMsg{Text: msg}) }
func (c *Console) Warning(msg string) { c.post(WriteMsg{Text: msg, Severity: SeverityWarning}) }
func (c *Console) Error(msg string)   { c.post(WriteMsg{Text: msg, Severity: SeverityError}) }

func (c *Console) post(msg WriteMsg) {
	if c == nil || !c.active.Load() {
		return
	}
	c.inbox.Post(msg)
}

// Print forwards to the installed Console, if any.
func Print(msg string) {
	if c := Current(); c != nil {
		c.Print(msg)
	}
}

func Warning(msg string) {
	if c := Current(); c != nil {
		c.Warning(msg)
	}
}

func Error(msg string) {
	if c := Current(); c != nil {
		c.Error(msg)
	}
}

// inboxPrinter posts straight to a Terminal, for tasks run without a Console.
type inboxPrinter struct {
	inbox core.Inbox
}

func (p inboxPrinter) Print(msg string) {
	p.inbox.Post(WriteMsg{Text: msg})
}

func (p inboxPrinter) Warning(msg string) {
	p.inbox.Post(WriteMsg{Text: msg, Severity: SeverityWarning})
}

func (p inboxPrinter) Error(msg string) {
	p.inbox.Post(WriteMsg{Text: msg, Severity: SeverityError})
}

type discardPrinter struct{}

func (discardPrinter) Print(string)   {}
func (discardPrinter) Warning(string) {}
func (discardPrinter) Error(string)   {}

type printerKey struct{}

// WithContext attaches p to ctx for tasks to find.
func WithContext(ctx context.Context, p Printer) context.Context {
	return context.WithValue(ctx, printerKey{}, p)
}

// FromContext returns the Printer attached to ctx. It never returns nil.
func FromContext(ctx context.Context) Printer {
	if p, ok := lookup(ctx); ok {
		return p
	}
	return discardPrinter{}
}

func lookup(ctx context.Context) (Printer, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(printerKey{}).(Printer)
	return p, ok && p != nil
}
