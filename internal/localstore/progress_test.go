package localstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressMarkCompletedIsIdempotent(t *testing.T) {
	progress := NewProgress(newTestStore(t))

	require.NoError(t, progress.MarkCompleted("ch1"))
	require.NoError(t, progress.MarkCompleted("ch1"))

	assert.Equal(t, []string{"ch1"}, progress.GetCompleted())
}

func TestProgressAccumulates(t *testing.T) {
	progress := NewProgress(newTestStore(t))

	require.NoError(t, progress.MarkCompleted("ch1"))
	require.NoError(t, progress.MarkCompleted("ch2"))

	assert.ElementsMatch(t, []string{"ch1", "ch2"}, progress.GetCompleted())
}

func TestProgressEmptyByDefault(t *testing.T) {
	progress := NewProgress(newTestStore(t))
	assert.Empty(t, progress.GetCompleted())
}

func TestProgressCorruptValueTreatedAsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(ProgressKey, "{{nope"))

	progress := NewProgress(store)
	assert.Empty(t, progress.GetCompleted())

	require.NoError(t, progress.MarkCompleted("ch1"))
	assert.Equal(t, []string{"ch1"}, progress.GetCompleted())
}
