// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "ledger", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, title := range []string{"first", "second", "third"} {
		err := s.Record(ctx, Entry{
			Source:      "in/" + title + ".pdf",
			Target:      "out/" + title + ".pdf",
			PublishDate: "20250210",
			Publisher:   "WIRED",
			Title:       title,
			RenamedAt:   time.Date(2026, 8, 26, 10, 0, i, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	entries, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "third", entries[0].Title)
	assert.Equal(t, "second", entries[1].Title)

	assert.Equal(t, "in/third.pdf", entries[0].Source)
	assert.Equal(t, "out/third.pdf", entries[0].Target)
	assert.Equal(t, "20250210", entries[0].PublishDate)
	assert.Equal(t, "WIRED", entries[0].Publisher)
	assert.Equal(t, time.Date(2026, 8, 26, 10, 0, 2, 0, time.UTC), entries[0].RenamedAt)
}

func TestRecentEmptyLedger(t *testing.T) {
	s := openTestStore(t)

	entries, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordDefaultsTimestamp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	require.NoError(t, s.Record(ctx, Entry{Source: "a.pdf", Target: "b.pdf"}))

	entries, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].RenamedAt.Before(before), "timestamp should default to now")
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Record(context.Background(), Entry{Source: "a.pdf", Target: "b.pdf"}))
	require.NoError(t, s1.Close())

	// Reopening an existing ledger keeps its rows.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	entries, err := s2.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
