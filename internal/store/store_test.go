package store

import (
	"context"
	"path/filepath"
	"testing"

	"codeleap/internal/localstore"
	"codeleap/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackends(t *testing.T) *Backends {
	t.Helper()
	local := localstore.Open(filepath.Join(t.TempDir(), "local.json"))
	return NewBackends(nil, local)
}

func TestSnippetsForSelectsByIdentity(t *testing.T) {
	backends := newTestBackends(t)

	remote := backends.SnippetsFor(uuid.New(), true)
	assert.IsType(t, &RemoteSnippets{}, remote)

	local := backends.SnippetsFor(uuid.Nil, false)
	assert.IsType(t, &LocalSnippets{}, local)
}

func TestProgressForSelectsByIdentity(t *testing.T) {
	backends := newTestBackends(t)

	// Authenticated callers get the fallback-wrapped remote store
	wrapped := backends.ProgressFor(uuid.New(), true)
	assert.IsType(t, &FallbackProgress{}, wrapped)

	local := backends.ProgressFor(uuid.Nil, false)
	assert.IsType(t, &LocalProgress{}, local)
}

func TestLocalSnippetsThroughCapability(t *testing.T) {
	backends := newTestBackends(t)
	ctx := context.Background()

	snippets := backends.SnippetsFor(uuid.Nil, false)

	a, err := snippets.Save(ctx, &models.Snippet{Name: "a", Language: "javascript", Code: "1"})
	require.NoError(t, err)
	b, err := snippets.Save(ctx, &models.Snippet{Name: "b", Language: "javascript", Code: "2"})
	require.NoError(t, err)

	all, err := snippets.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, a.ID, all[1].ID)

	require.NoError(t, snippets.Delete(ctx, a.ID))
	require.NoError(t, snippets.Delete(ctx, a.ID))

	all, err = snippets.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)
}

func TestLocalProgressThroughCapability(t *testing.T) {
	backends := newTestBackends(t)
	ctx := context.Background()

	progress := backends.ProgressFor(uuid.Nil, false)

	require.NoError(t, progress.MarkCompleted(ctx, "ch1"))
	require.NoError(t, progress.MarkCompleted(ctx, "ch1"))

	completed, err := progress.GetCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ch1"}, completed)
}
