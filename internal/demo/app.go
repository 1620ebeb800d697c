package demo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jask/termkit/console"
	"github.com/jask/termkit/core"
	"github.com/jask/termkit/dialog"
	"github.com/jask/termkit/internal/config"
	"github.com/jask/termkit/internal/metrics"
	"github.com/jask/termkit/screens"
)

// App bundles the pieces of a running demo.
type App struct {
	Bus      *core.Bus
	Model    *core.Model
	Home     *Home
	Console  *console.Console
	Dialogs  *dialog.Controller
	Terminal *console.Terminal
}

type Options struct {
	Config   config.Config
	Recorder console.Recorder
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Markdown Renderer
	Now      func() time.Time
	Delay    time.Duration
}

// ErrConsoleInUse is returned by NewApp while another app still holds the
// process-wide Console.
var ErrConsoleInUse = errors.New("console already installed by another app")

// NewApp wires the console, dialog controller and home screen onto one bus.
// It installs the process-wide Console; call console.Teardown when done.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	bus := core.NewBus()
	cc := opts.Config.Console
	termOpts := []console.TerminalOption{
		console.WithSettings(console.Settings{
			LogDir:          cc.LogDir,
			LogExt:          cc.LogExt,
			TimestampFormat: cc.TimestampFormat,
			WarningTag:      cc.WarningTag,
			ErrorTag:        cc.ErrorTag,
		}),
		console.WithMetrics(opts.Metrics),
		console.WithLogger(opts.Logger),
		console.WithBaseContext(ctx),
		console.WithClock(opts.Now),
	}
	if opts.Recorder != nil {
		termOpts = append(termOpts, console.WithRecorder(opts.Recorder))
	}
	term := console.NewTerminal(bus, termOpts...)
	con := console.Init(bus, term, opts.Logger)
	if con.Terminal() != term {
		return nil, ErrConsoleInUse
	}
	dialogs := dialog.NewController(bus, dialog.WithLogger(opts.Logger), dialog.WithMetrics(opts.Metrics))
	home := NewHome(Deps{
		Bus:        bus,
		Console:    con,
		Dialogs:    dialogs,
		Iterations: opts.Config.Demo.Iterations,
		Delay:      opts.Delay,
		Markdown:   opts.Markdown,
		Now:        opts.Now,
		Logger:     opts.Logger,
	})
	model := core.NewModel(home, bus,
		core.NewKeyRegistry(core.DefaultKeyBindings()),
		core.NewCommandRegistry(Commands(home)),
		core.WithTitle("termkit"),
		core.WithLogger(opts.Logger),
		core.WithCommandModal(screens.NewCommandPalette),
	)
	return &App{Bus: bus, Model: model, Home: home, Console: con, Dialogs: dialogs, Terminal: term}, nil
}
