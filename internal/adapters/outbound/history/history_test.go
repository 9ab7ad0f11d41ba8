package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testforge/testforge/internal/adapters/outbound/history"
	"github.com/testforge/testforge/internal/domain"
)

func TestFileHistory_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Append(dir, domain.HistoryEntry{
		Timestamp: "2026-08-24T10:00:00Z", OverallScore: 61.5, Grade: "D", TestFilesAnalyzed: 4,
	}))
	require.NoError(t, h.Append(dir, domain.HistoryEntry{
		Timestamp: "2026-08-25T10:00:00Z", OverallScore: 74.0, Grade: "C", TestFilesAnalyzed: 5,
	}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 61.5, entries[0].OverallScore)
	assert.Equal(t, "C", entries[1].Grade)
}

func TestFileHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}
