package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TERMKIT_CONFIG", "")
	t.Setenv("XDG_STATE_HOME", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ".log", cfg.Console.LogExt)
	require.Equal(t, "02-01-2006, 15:04:05", cfg.Console.TimestampFormat)
	require.Equal(t, "WARNING", cfg.Console.WarningTag)
	require.Equal(t, "ERROR", cfg.Console.ErrorTag)
	require.True(t, cfg.History.Enabled)
	require.Empty(t, cfg.Metrics.Addr)
	require.Equal(t, 95000, cfg.Demo.Iterations)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TERMKIT_CONFIG", "")
	t.Setenv("TERMKIT_CONSOLE_WARNING_TAG", "WARN")
	t.Setenv("TERMKIT_METRICS_ADDR", "127.0.0.1:9100")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "WARN", cfg.Console.WarningTag)
	require.Equal(t, "127.0.0.1:9100", cfg.Metrics.Addr)
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "cfg", "config.toml")
	t.Setenv("TERMKIT_CONFIG", path)

	cfg := Default()
	cfg.Console.ErrorTag = "FAIL"
	cfg.Demo.Iterations = 10
	require.NoError(t, Save(cfg))

	_, err := os.Stat(path)
	require.NoError(t, err)

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, "FAIL", got.Console.ErrorTag)
	require.Equal(t, 10, got.Demo.Iterations)
}

func TestLoadFileBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("console = [broken"), 0o644))
	_, err := LoadFile(path)
	require.Error(t, err)
}
