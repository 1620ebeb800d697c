package console

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/termkit/core"
	"github.com/jask/termkit/internal/logging"
	"github.com/jask/termkit/internal/metrics"
	"github.com/jask/termkit/widgets"
)

const (
	ButtonSaveLog = "save_log"
	ButtonClose   = "close"
)

// Args are the named arguments handed to a Task.
type Args map[string]any

// Task is run off the UI loop and reports a status. Output goes through the
// Printer found with FromContext.
type Task func(ctx context.Context, args Args) bool

// RunResult describes one finished task run.
type RunResult struct {
	RunID    string
	Result   bool
	Failed   bool
	Started  time.Time
	Finished time.Time
	Lines    int
}

// RunFinishedMsg is posted by the worker after the READY line. Its key is the
// run id.
type RunFinishedMsg = core.Correlated[RunResult]

// Recorder persists finished runs. It is called off the UI loop.
type Recorder interface {
	RecordRun(ctx context.Context, r RunResult) error
}

// Settings holds the configurable parts of a Terminal.
type Settings struct {
	LogDir          string
	LogExt          string
	TimestampFormat string
	WarningTag      string
	ErrorTag        string
}

func DefaultSettings() Settings {
	return Settings{
		LogDir:          ".",
		LogExt:          ".log",
		TimestampFormat: "02-01-2006, 15:04:05",
		WarningTag:      "WARNING",
		ErrorTag:        "ERROR",
	}
}

var (
	logStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	logBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#cdd6f4"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// Terminal is the Task Runner screen. Its log and buttons are owned by the UI
// loop; workers reach them only through its inbox. The running flag is set by
// Run and cleared by the worker once its last message is posted, so a run
// ends even when the Terminal is not on the stack.
type Terminal struct {
	id       core.ScreenID
	inbox    core.Inbox
	buf      Buffer
	view     viewport.Model
	buttons  *widgets.ButtonBar
	settings Settings

	running    atomic.Bool
	runID      string
	inFlight   map[string]struct{}
	lastResult *RunResult

	ctx      context.Context
	now      func() time.Time
	recorder Recorder
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

type TerminalOption func(*Terminal)

func WithSettings(s Settings) TerminalOption {
	return func(t *Terminal) {
		def := DefaultSettings()
		if s.LogDir == "" {
			s.LogDir = def.LogDir
		}
		if s.LogExt == "" {
			s.LogExt = def.LogExt
		}
		if s.TimestampFormat == "" {
			s.TimestampFormat = def.TimestampFormat
		}
		if s.WarningTag == "" {
			s.WarningTag = def.WarningTag
		}
		if s.ErrorTag == "" {
			s.ErrorTag = def.ErrorTag
		}
		t.settings = s
	}
}

func WithClock(now func() time.Time) TerminalOption {
	return func(t *Terminal) {
		if now != nil {
			t.now = now
		}
	}
}

func WithRecorder(r Recorder) TerminalOption {
	return func(t *Terminal) { t.recorder = r }
}

func WithMetrics(m *metrics.Metrics) TerminalOption {
	return func(t *Terminal) { t.metrics = m }
}

func WithLogger(logger *slog.Logger) TerminalOption {
	return func(t *Terminal) { t.logger = logging.OrNop(logger) }
}

// WithBaseContext sets the context tasks inherit.
func WithBaseContext(ctx context.Context) TerminalOption {
	return func(t *Terminal) {
		if ctx != nil {
			t.ctx = ctx
		}
	}
}

func NewTerminal(bus *core.Bus, opts ...TerminalOption) *Terminal {
	id := core.NewScreenID("terminal")
	t := &Terminal{
		id:       id,
		inbox:    bus.Inbox(id),
		view:     viewport.New(80, 20),
		settings: DefaultSettings(),
		buttons: widgets.NewButtonBar([]widgets.ButtonDef{
			{Label: "Save Log", Variant: widgets.VariantPrimary, ID: ButtonSaveLog},
			{Label: "Close", Variant: widgets.VariantSuccess, ID: ButtonClose},
		}, true),
		ctx:      context.Background(),
		now:      time.Now,
		logger:   logging.NewNop(),
		inFlight: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Terminal) ID() core.ScreenID  { return t.id }
func (t *Terminal) Title() string      { return "Console" }
func (t *Terminal) Scope() string      { return core.ScopeTerminal }
func (t *Terminal) Inbox() core.Inbox  { return t.inbox }
func (t *Terminal) Running() bool      { return t.running.Load() }
func (t *Terminal) Lines() []Line      { return t.buf.Lines() }
func (t *Terminal) Settings() Settings { return t.settings }

// LastRun returns the most recent finished run.
func (t *Terminal) LastRun() (RunResult, bool) {
	if t.lastResult == nil {
		return RunResult{}, false
	}
	return *t.lastResult, true
}

// Run starts task on a worker unless one is already in flight, in which case
// it does nothing and returns nil.
func (t *Terminal) Run(task Task, args Args) tea.Cmd {
	return t.RunContext(t.ctx, task, args)
}

func (t *Terminal) RunContext(ctx context.Context, task Task, args Args) tea.Cmd {
	if task == nil {
		return nil
	}
	if !t.running.CompareAndSwap(false, true) {
		t.metrics.RunRejected()
		t.logger.Debug("run rejected, task in flight", "run", t.runID)
		return nil
	}
	if ctx == nil {
		ctx = t.ctx
	}
	if _, ok := lookup(ctx); !ok {
		ctx = WithContext(ctx, inboxPrinter{inbox: t.inbox})
	}
	t.runID = uuid.NewString()
	t.inFlight[t.runID] = struct{}{}
	t.metrics.RunStarted()
	t.logger.Info("task started", "run", t.runID)

	runID := t.runID
	inbox := t.inbox
	now := t.now
	format := t.settings.TimestampFormat
	logger := t.logger
	m := t.metrics
	running := &t.running
	return func() tea.Msg {
		defer running.Store(false)
		started := now()
		result, failed := invoke(ctx, task, args, inbox, logger, m)
		finished := now()
		inbox.Post(WriteMsg{Text: readyLine(result, finished, format)})
		inbox.Post(core.Correlate(core.CorrelationKey(runID), RunResult{
			RunID:    runID,
			Result:   result,
			Failed:   failed,
			Started:  started,
			Finished: finished,
		}))
		return nil
	}
}

func readyLine(result bool, at time.Time, format string) string {
	return fmt.Sprintf("READY %t %s", result, at.Format(format))
}

func invoke(ctx context.Context, task Task, args Args, inbox core.Inbox, logger *slog.Logger, m *metrics.Metrics) (result, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			result, failed = false, true
			m.TaskPanicked()
			logger.Error("task panicked", "panic", r, "stack", string(debug.Stack()))
			inbox.Post(WriteMsg{Text: fmt.Sprintf("task failed: %v", r), Severity: SeverityError})
		}
	}()
	return task(ctx, args), false
}

func (t *Terminal) Write(text string) {
	t.buf.Write(text, SeverityNormal)
	t.refresh()
}

func (t *Terminal) WriteLine(text string) {
	t.buf.WriteLine(text, SeverityNormal)
	t.refresh()
}

func (t *Terminal) WriteLines(lines []string) {
	for _, l := range lines {
		t.buf.WriteLine(l, SeverityNormal)
	}
	t.refresh()
}

func (t *Terminal) Clear() {
	t.buf.Clear()
	t.refresh()
}

func (t *Terminal) Warning(text string) {
	t.buf.WriteLine(t.settings.WarningTag+": "+text, SeverityWarning)
	t.refresh()
}

func (t *Terminal) Error(text string) {
	t.buf.WriteLine(t.settings.ErrorTag+": "+text, SeverityError)
	t.refresh()
}

// Close dismisses the screen with result true. While a task is running it
// does nothing.
func (t *Terminal) Close() tea.Cmd {
	if t.running.Load() {
		t.metrics.CloseWhileRunning()
		t.logger.Debug("close refused, task in flight", "run", t.runID)
		return nil
	}
	return core.Dismiss(t.id, true)
}

// SaveLog writes the log to path, one line per record, overwriting the file.
func (t *Terminal) SaveLog(path string) error {
	return t.buf.Save(path)
}

// saveLogCmd snapshots the log and writes it to a timestamped file in the log
// directory.
func (t *Terminal) saveLogCmd() tea.Cmd {
	snapshot := Buffer{lines: t.buf.Lines()}
	dir := t.settings.LogDir
	path := filepath.Join(dir, "termkit-"+t.now().Format("20060102-150405")+t.settings.LogExt)
	logger := t.logger
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Warn("save log failed", "error", err)
			return core.StatusMsg{Text: fmt.Sprintf("save log: %v", err), IsErr: true}
		}
		if err := snapshot.Save(path); err != nil {
			logger.Warn("save log failed", "error", err)
			return core.StatusMsg{Text: err.Error(), IsErr: true}
		}
		return core.StatusMsg{Text: "Log saved to " + path}
	}
}

func (t *Terminal) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case WriteMsg:
		t.apply(msg)
		return t, nil
	case RunFinishedMsg:
		return t, t.finish(msg)
	case tea.WindowSizeMsg:
		return t, nil
	case tea.KeyMsg:
		return t, t.handleKey(msg)
	}
	var cmd tea.Cmd
	t.view, cmd = t.view.Update(msg)
	return t, cmd
}

func (t *Terminal) apply(msg WriteMsg) {
	switch msg.Severity {
	case SeverityWarning:
		t.Warning(msg.Text)
	case SeverityError:
		t.Error(msg.Text)
	default:
		if msg.NoNewline {
			t.Write(msg.Text)
		} else {
			t.WriteLine(msg.Text)
		}
	}
}

// finish records a run this Terminal started. Results for other runs are
// ignored.
func (t *Terminal) finish(msg RunFinishedMsg) tea.Cmd {
	if _, ok := t.inFlight[string(msg.Key)]; !ok {
		t.logger.Warn("finish for unknown run", "run", msg.Key, "current", t.runID)
		return nil
	}
	delete(t.inFlight, string(msg.Key))
	res := msg.Payload
	res.Lines = t.buf.Len()
	t.lastResult = &res
	t.metrics.RunFinished(fmt.Sprintf("%t", res.Result), res.Finished.Sub(res.Started))
	t.logger.Info("task finished", "run", res.RunID, "result", res.Result, "failed", res.Failed)
	if t.recorder == nil {
		return nil
	}
	rec := t.recorder
	ctx := t.ctx
	logger := t.logger
	return func() tea.Msg {
		if err := rec.RecordRun(ctx, res); err != nil {
			logger.Warn("record run failed", "run", res.RunID, "error", err)
			return core.StatusMsg{Text: fmt.Sprintf("history: %v", err), IsErr: true}
		}
		return nil
	}
}

func (t *Terminal) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "right":
		t.buttons.Next()
	case "shift+tab", "left":
		t.buttons.Prev()
	case "enter":
		if b, ok := t.buttons.Press(); ok {
			return t.press(b.Key())
		}
	case "s":
		return t.press(ButtonSaveLog)
	case "esc", "q":
		return t.press(ButtonClose)
	default:
		var cmd tea.Cmd
		t.view, cmd = t.view.Update(msg)
		return cmd
	}
	return nil
}

func (t *Terminal) press(id string) tea.Cmd {
	switch id {
	case ButtonSaveLog:
		return t.saveLogCmd()
	case ButtonClose:
		return t.Close()
	}
	return nil
}

func (t *Terminal) refresh() {
	atBottom := t.view.AtBottom()
	t.view.SetContent(t.render())
	if atBottom {
		t.view.GotoBottom()
	}
}

func (t *Terminal) render() string {
	lines := t.buf.Lines()
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		switch l.Severity {
		case SeverityWarning:
			out = append(out, warningStyle.Render(l.Text))
		case SeverityError:
			out = append(out, errorStyle.Render(l.Text))
		default:
			out = append(out, logStyle.Render(l.Text))
		}
	}
	return strings.Join(out, "\n")
}

func (t *Terminal) View(width, height int) string {
	state := "idle"
	if t.running.Load() {
		state = "running"
	}
	status := statusStyle.Render(fmt.Sprintf("%s · %d lines", state, t.buf.Len()))
	return widgets.Column{Rows: []widgets.Row{
		{Widget: widgets.Func(t.renderLog), Weight: 1},
		{Widget: widgets.Text(status)},
		{Widget: t.buttons},
	}}.Render(width, height)
}

// renderLog sizes the viewport to the cell it is given, border included.
func (t *Terminal) renderLog(width, height int) string {
	t.view.Width = max(10, width-2)
	t.view.Height = max(1, height-2)
	return logBoxStyle.Render(t.view.View())
}
