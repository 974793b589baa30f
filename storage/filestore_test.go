package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSetGetDelete(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	ctx := context.Background()

	val, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, "", val, "missing keys read as empty, not as errors")

	require.NoError(t, store.Set(ctx, "k", "v"))
	val, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	require.NoError(t, store.Delete(ctx, "k"))
	val, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "", val)

	require.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", "v"))

	second, err := NewFileStore(path)
	require.NoError(t, err)
	val, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestFileStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "store.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "k", "v"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
