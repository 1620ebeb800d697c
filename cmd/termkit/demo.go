package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jask/termkit/console"
	"github.com/jask/termkit/internal/demo"
	"github.com/jask/termkit/internal/history"
	"github.com/jask/termkit/internal/logging"
	"github.com/jask/termkit/internal/metrics"
)

var errNoTTY = errors.New("termkit demo needs an interactive terminal")

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive console and dialog demo",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().Int("iterations", 0, "demo task iterations (overrides demo.iterations)")
	demoCmd.Flags().Duration("delay", 2*time.Millisecond, "pause after each printed line of the demo task")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTTY
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if n, _ := cmd.Flags().GetInt("iterations"); n > 0 {
		cfg.Demo.Iterations = n
	}
	delay, _ := cmd.Flags().GetDuration("delay")

	logger, closer, err := logging.New(cfg.Log.Path, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := metrics.New()
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.Addr, logger); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	var recorder console.Recorder
	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			logger.Warn("run history disabled", "error", err)
		} else {
			defer store.Close()
			recorder = store
		}
	}

	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	renderer, err := demo.NewRenderer("", max(40, width-20))
	if err != nil {
		logger.Warn("markdown renderer unavailable", "error", err)
		renderer = demo.PlainRenderer
	}

	app, err := demo.NewApp(ctx, demo.Options{
		Config:   cfg,
		Recorder: recorder,
		Metrics:  m,
		Logger:   logger,
		Markdown: renderer,
		Delay:    delay,
	})
	if err != nil {
		return fmt.Errorf("start demo: %w", err)
	}
	defer console.Teardown()

	p := tea.NewProgram(app.Model, tea.WithAltScreen(), tea.WithContext(ctx))
	go func() {
		if err := app.Bus.Pump(ctx, p); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("bus pump stopped", "error", err)
		}
	}()

	logger.Info("demo started", "iterations", cfg.Demo.Iterations)
	_, err = p.Run()
	cancel()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("demo stopped")
	return nil
}
