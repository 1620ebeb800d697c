package demo

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/termkit/console"
	"github.com/jask/termkit/core"
	"github.com/jask/termkit/dialog"
	"github.com/jask/termkit/internal/logging"
	"github.com/jask/termkit/screens"
	"github.com/jask/termkit/widgets"
)

// Correlation keys the home screen asks under.
const (
	KeyRun   core.CorrelationKey = "run"
	KeyQuit  core.CorrelationKey = "quit"
	KeyAbout core.CorrelationKey = "about"
)

// formDone carries a form's dismiss result back to the home screen.
type formDone struct {
	result any
}

type Deps struct {
	Bus        *core.Bus
	Console    *console.Console
	Dialogs    *dialog.Controller
	Iterations int
	Delay      time.Duration
	Markdown   Renderer
	Now        func() time.Time
	Logger     *slog.Logger
}

// Home is the base screen of the demo app.
type Home struct {
	id       core.ScreenID
	inbox    core.Inbox
	deps     Deps
	outcomes []string
	lastForm *screens.FormResult
}

func NewHome(deps Deps) *Home {
	if deps.Markdown == nil {
		deps.Markdown = PlainRenderer
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Iterations <= 0 {
		deps.Iterations = 95000
	}
	deps.Logger = logging.OrNop(deps.Logger)
	id := core.NewScreenID("home")
	return &Home{id: id, inbox: deps.Bus.Inbox(id), deps: deps}
}

func (h *Home) ID() core.ScreenID { return h.id }
func (h *Home) Title() string     { return "Home" }
func (h *Home) Scope() string     { return core.ScopeHome }
func (h *Home) Inbox() core.Inbox { return h.inbox }

// Outcomes lists the answers received so far, oldest first.
func (h *Home) Outcomes() []string { return append([]string(nil), h.outcomes...) }

func (h *Home) LastForm() (screens.FormResult, bool) {
	if h.lastForm == nil {
		return screens.FormResult{}, false
	}
	return *h.lastForm, true
}

func (h *Home) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dialog.ResultMsg:
		return h, h.onDialog(msg)
	case formDone:
		h.onForm(msg.result)
		return h, nil
	case tea.KeyMsg:
		return h, h.Action(actionForKey(msg.String()))
	}
	return h, nil
}

func actionForKey(k string) string {
	switch k {
	case "r":
		return "run"
	case "v":
		return "verify"
	case "c":
		return "verify-cancel"
	case "m":
		return "message"
	case "a":
		return "about"
	case "f":
		return "form"
	case "o":
		return "console"
	case "q":
		return "confirm-quit"
	}
	return ""
}

// Action performs a named home action. Call it on the UI loop.
func (h *Home) Action(name string) tea.Cmd {
	d := h.deps.Dialogs
	switch name {
	case "run":
		d.Verify(h.inbox, fmt.Sprintf("Run the demo task with N=%d?", h.deps.Iterations), KeyRun)
	case "run-now":
		return h.StartRun()
	case "verify":
		d.Verify(h.inbox, "Do you like this toolkit?", "")
	case "verify-cancel":
		d.VerifyCancel(h.inbox, "Save changes before leaving?\nCancel keeps you here.", "")
	case "message":
		d.Message(h.inbox, "This is a message.\nIt has one button.", "")
	case "about":
		text, err := h.deps.Markdown(aboutMarkdown)
		if err != nil {
			h.deps.Logger.Warn("render about", "error", err)
			return core.ErrorCmd(err)
		}
		d.Message(h.inbox, strings.TrimRight(text, "\n"), KeyAbout)
	case "form":
		h.openForm()
	case "console":
		if !h.deps.Console.Show() {
			return core.StatusCmd("Console already open")
		}
	case "confirm-quit":
		d.Verify(h.inbox, "Quit termkit?", KeyQuit)
	}
	return nil
}

// StartRun opens the console and runs Task in it.
func (h *Home) StartRun() tea.Cmd {
	c := h.deps.Console
	c.Show()
	c.Print("INITIALIZE RUN " + h.deps.Now().Format(c.Terminal().Settings().TimestampFormat))
	return c.Run(Task, console.Args{ArgIterations: h.deps.Iterations, ArgDelay: h.deps.Delay})
}

func (h *Home) onDialog(msg dialog.ResultMsg) tea.Cmd {
	res := msg.Payload
	switch msg.Key {
	case KeyQuit:
		if res.Answer.AsBool() {
			return tea.Quit
		}
		return nil
	case KeyRun:
		if res.Answer.AsBool() {
			return h.StartRun()
		}
		h.record("run declined")
	case dialog.KeyVerify:
		h.record(fmt.Sprintf("verify: %s (%t)", res.Label, res.Answer.AsBool()))
	case dialog.KeyVerifyCancel:
		h.record("verify/cancel: " + res.Answer.String())
	case dialog.KeyMessage, KeyAbout:
		h.record(fmt.Sprintf("%s acknowledged", msg.Key))
	default:
		h.deps.Logger.Warn("dialog result for unknown key", "key", msg.Key, "request", res.RequestID)
	}
	return nil
}

func (h *Home) openForm() {
	form := screens.NewFormScreen("Run settings", []screens.FormField{
		{Key: "name", Label: "Name", Required: true},
		{Key: "comment", Label: "Comment"},
	}, true)
	inbox := h.inbox
	h.deps.Bus.Push(form, func(result any) tea.Cmd {
		inbox.Post(formDone{result: result})
		return nil
	})
}

func (h *Home) onForm(result any) {
	res, ok := result.(screens.FormResult)
	if !ok {
		h.record("form cancelled")
		return
	}
	h.lastForm = &res
	h.record(fmt.Sprintf("form: %s x%d", res.Values["name"], res.Count))
}

func (h *Home) record(s string) {
	h.outcomes = append(h.outcomes, s)
}

var homeHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))

func (h *Home) View(width, height int) string {
	run := "No runs yet"
	if last, ok := h.deps.Console.Terminal().LastRun(); ok {
		run = fmt.Sprintf("Last run: READY %t, %d lines, %s", last.Result, last.Lines, last.Finished.Sub(last.Started).Round(time.Millisecond))
		if last.Failed {
			run += " (task failed)"
		}
	}
	intro := widgets.Text(homeHintStyle.Render("r run · v verify · c verify/cancel · m message · f form · a about · o console · q quit"))
	answers := widgets.Func(func(w, hh int) string {
		list := widgets.List{Items: h.outcomes, Empty: "nothing answered yet", Tail: true}
		return widgets.Box{Title: "Answers", Content: list.Render(max(10, w-4), max(1, hh-3))}.Render(w, hh)
	})
	return widgets.Column{Rows: []widgets.Row{
		{Widget: intro},
		{Widget: widgets.Box{Title: "Console", Content: run}, Height: 4},
		{Widget: answers, Weight: 1},
	}}.Render(width, height)
}
