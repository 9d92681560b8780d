package localstore

import (
	"fmt"
	"testing"

	"codeleap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHistoryNewestFirst(t *testing.T) {
	history := NewRunHistory(newTestStore(t))

	_, err := history.Append("go", &models.RunHistoryEntry{Code: "first", Result: "ok"})
	require.NoError(t, err)
	second, err := history.Append("go", &models.RunHistoryEntry{Code: "second", Result: "ok"})
	require.NoError(t, err)

	entries := history.Get("go")
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
}

func TestRunHistoryBounded(t *testing.T) {
	history := NewRunHistory(newTestStore(t))

	for i := 0; i < maxRunHistory+10; i++ {
		_, err := history.Append("python", &models.RunHistoryEntry{Code: fmt.Sprintf("run %d", i)})
		require.NoError(t, err)
	}

	entries := history.Get("python")
	require.Len(t, entries, maxRunHistory)
	assert.Equal(t, fmt.Sprintf("run %d", maxRunHistory+9), entries[0].Code)
}

func TestRunHistoryPerLanguage(t *testing.T) {
	history := NewRunHistory(newTestStore(t))

	_, err := history.Append("go", &models.RunHistoryEntry{Code: "go run"})
	require.NoError(t, err)
	_, err = history.Append("rust", &models.RunHistoryEntry{Code: "rust run"})
	require.NoError(t, err)

	assert.Len(t, history.Get("go"), 1)
	assert.Len(t, history.Get("rust"), 1)
	assert.Empty(t, history.Get("javascript"))
}
