package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "local.json"))
}

func TestStoreSetGetRemove(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.Get("missing")
	assert.False(t, ok)

	require.NoError(t, store.Set("key", `{"a":1}`))

	value, ok := store.Get("key")
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, value)

	require.NoError(t, store.Remove("key"))
	_, ok = store.Get("key")
	assert.False(t, ok)

	// Removing an absent key is a no-op
	require.NoError(t, store.Remove("key"))
}

func TestStoreKeysAreIndependent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("one", "1"))
	require.NoError(t, store.Set("two", "2"))
	require.NoError(t, store.Remove("one"))

	value, ok := store.Get("two")
	assert.True(t, ok)
	assert.Equal(t, "2", value)
}

func TestStoreCorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all {"), 0644))

	store := Open(path)

	_, ok := store.Get("anything")
	assert.False(t, ok)

	// Writes still work after corruption was discarded
	require.NoError(t, store.Set("key", "value"))
	value, ok := store.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", value)
}

func TestStoreUpdateReadsAndWritesUnderLock(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("counter", "a"))

	err := store.Update("counter", func(current string, ok bool) (string, error) {
		assert.True(t, ok)
		return current + "b", nil
	})
	require.NoError(t, err)

	value, _ := store.Get("counter")
	assert.Equal(t, "ab", value)
}
