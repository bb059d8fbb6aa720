package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, now time.Time) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	s.now = func() time.Time { return now }
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDirectoryAndIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	var n int
	require.NoError(t, s2.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestRecordAndStats(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	s := openTestStore(t, now)
	ctx := context.Background()

	require.NoError(t, s.RecordLoad(ctx, LoadEvent{Handle: "h", Source: "live", ProjectCount: 6, Status: "Showing top 6 repositories for @h.", CreatedAt: now.Add(-48 * time.Hour)}))
	require.NoError(t, s.RecordLoad(ctx, LoadEvent{Handle: "h", Source: "fallback-error", ProjectCount: 3, Status: "Using curated highlights", Error: "GitHub API responded with 403", CreatedAt: now.Add(-time.Hour)}))
	require.NoError(t, s.RecordLoad(ctx, LoadEvent{Handle: "h", Source: "live", ProjectCount: 4, Status: "Showing top 4 repositories for @h."}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalLoads)
	assert.Equal(t, map[string]int64{"live": 2, "fallback-error": 1}, stats.BySource)
	assert.Equal(t, int64(2), stats.LoadsToday)
	assert.Equal(t, "GitHub API responded with 403", stats.LastError)
	require.NotNil(t, stats.LastErrorAt)
	assert.True(t, stats.LastErrorAt.Equal(now.Add(-time.Hour)))

	require.Len(t, stats.RecentEvents, 3)
	assert.Equal(t, 4, stats.RecentEvents[0].ProjectCount)
	assert.True(t, stats.RecentEvents[0].CreatedAt.Equal(now))
	assert.Equal(t, 6, stats.RecentEvents[2].ProjectCount)
}

func TestStatsEmpty(t *testing.T) {
	s := openTestStore(t, time.Now())

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalLoads)
	assert.Empty(t, stats.LastError)
	assert.Nil(t, stats.LastErrorAt)
	assert.Empty(t, stats.RecentEvents)
}

func TestPrune(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	s := openTestStore(t, now)
	ctx := context.Background()

	require.NoError(t, s.RecordLoad(ctx, LoadEvent{Handle: "h", Source: "live", Status: "old", CreatedAt: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.RecordLoad(ctx, LoadEvent{Handle: "h", Source: "live", Status: "new", CreatedAt: now.AddDate(0, -1, 0)}))

	n, err := s.Prune(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	events, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "new", events[0].Status)
}
