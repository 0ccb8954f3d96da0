package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/diffreport/internal/domain"
)

func newTestLedger(t *testing.T) *SQLiteLedger {
	t.Helper()
	ledger, err := NewSQLiteLedger(filepath.Join(t.TempDir(), "nested", "exports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })
	return ledger
}

func TestSQLiteLedger_RecordAndList(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, ledger.Record(ctx, domain.ExportRecord{
		BaseRef:      "main",
		CurrentRef:   "--staged",
		ExportedAt:   base,
		Path:         "/repo/diff-report-2024-05-01.html",
		RepoRoot:     "/repo",
		TotalAdded:   3,
		TotalDeleted: 6,
	}))
	require.NoError(t, ledger.Record(ctx, domain.ExportRecord{
		BaseRef:    "v1.0.0",
		CurrentRef: "HEAD",
		ExportedAt: base.Add(time.Hour),
		Path:       "/repo/later.html",
		RepoRoot:   "/repo",
	}))

	records, err := ledger.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first
	assert.Equal(t, "/repo/later.html", records[0].Path)
	assert.Equal(t, "main", records[1].BaseRef)
	assert.Equal(t, "--staged", records[1].CurrentRef)
	assert.Equal(t, 3, records[1].TotalAdded)
	assert.Equal(t, 6, records[1].TotalDeleted)
	assert.True(t, base.Equal(records[1].ExportedAt))
	assert.NotEmpty(t, records[0].ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestSQLiteLedger_ListLimit(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, ledger.Record(ctx, domain.ExportRecord{
			ExportedAt: time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC),
			Path:       filepath.Join("/tmp", string(rune('a'+i))+".html"),
		}))
	}

	records, err := ledger.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "/tmp/e.html", records[0].Path)
	assert.Equal(t, "/tmp/d.html", records[1].Path)
}

func TestSQLiteLedger_FillsDefaults(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Record(ctx, domain.ExportRecord{Path: "/x.html"}))

	records, err := ledger.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].ID)
	assert.False(t, records[0].ExportedAt.IsZero())
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		err := withRetry(func() error {
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 2 retries")
	})

	t.Run("other errors are returned immediately", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return assert.AnError
		}, 3)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, calls)
	})
}
