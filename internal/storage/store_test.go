package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("tagClipboard")
	assert.False(t, ok)

	require.NoError(t, store.Set("tagClipboard", []byte(`{"copiedTags":["a"]}`)))

	data, ok := store.Get("tagClipboard")
	require.True(t, ok)
	assert.Equal(t, `{"copiedTags":["a"]}`, string(data))
}

func TestFileStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("k", []byte("v")))
	require.NoError(t, store.Delete("k"))

	_, ok := store.Get("k")
	assert.False(t, ok)
	_, err = os.Stat(filepath.Join(dir, "k.json"))
	assert.True(t, os.IsNotExist(err), "delete removes the key file, not just its contents")

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete("k"))
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "session")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("k")
	assert.False(t, ok)

	require.NoError(t, store.Set("k", []byte("v")))
	data, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", string(data))

	// Mutating the returned slice must not affect the stored value
	data[0] = 'x'
	data2, _ := store.Get("k")
	assert.Equal(t, "v", string(data2))

	require.NoError(t, store.Delete("k"))
	_, ok = store.Get("k")
	assert.False(t, ok)
}
