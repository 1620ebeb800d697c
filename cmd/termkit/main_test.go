package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/termkit/internal/config"
	"github.com/jask/termkit/internal/history"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) (string, config.Config) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	cfg := config.Default()
	cfg.History.Path = filepath.Join(dir, "history.db")
	cfg.Log.Path = filepath.Join(dir, "termkit.log")
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, config.SaveFile(path, cfg))
	return path, cfg
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "termkit version dev")
}

func TestHistoryEmptyThenListed(t *testing.T) {
	path, cfg := writeConfig(t)
	out, err := execute(t, "history", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "No runs recorded.")

	store, err := history.Open(cfg.History.Path)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, store.Record(context.Background(), history.Run{ID: "run-123", StartedAt: now, FinishedAt: now.Add(time.Second), Lines: 7}))
	require.NoError(t, store.Close())

	out, err = execute(t, "history", "--config", path, "-n", "5")
	require.NoError(t, err)
	require.Contains(t, out, "run-123")
	require.Contains(t, out, "RESULT")
}
