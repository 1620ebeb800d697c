package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKeyRenamed(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf, slog.LevelInfo).Error("boom", "error", errors.New("bad"))
	require.Contains(t, buf.String(), "err=bad")
	require.NotContains(t, buf.String(), "error=bad")
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, ParseLevel("warn"))
	l.Info("hidden")
	l.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestNewCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "termkit.log")
	l, c, err := New(path, slog.LevelDebug)
	require.NoError(t, err)
	l.Debug("hello")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
	require.NotNil(t, OrNop(nil))
}
