package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/termkit/console"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, Run{ID: "a", StartedAt: base, FinishedAt: base.Add(time.Second), Result: true, Lines: 3}))
	require.NoError(t, s.Record(ctx, Run{ID: "b", StartedAt: base.Add(time.Minute), FinishedAt: base.Add(2 * time.Minute), Failed: true}))

	runs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "b", runs[0].ID)
	require.True(t, runs[0].Failed)
	require.False(t, runs[0].Result)
	require.Equal(t, "a", runs[1].ID)
	require.True(t, runs[1].Result)
	require.Equal(t, 3, runs[1].Lines)
	require.Equal(t, time.Second, runs[1].Duration())
}

func TestRecentLimit(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	now := time.Now()
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, s.Record(ctx, Run{ID: id, StartedAt: now, FinishedAt: now}))
	}
	runs, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
}

func TestDuplicateIDFails(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, s.Record(ctx, Run{ID: "dup", StartedAt: now, FinishedAt: now}))
	require.Error(t, s.Record(ctx, Run{ID: "dup", StartedAt: now, FinishedAt: now}))
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, s.RecordRun(context.Background(), console.RunResult{RunID: "r1", Started: now, Finished: now, Result: true}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "r1", runs[0].ID)
}
