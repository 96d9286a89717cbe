package blobstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "schedule.json"), []byte(`{"venue.1": {}}`), 0o600))

	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	t.Run("ReadAll", func(t *testing.T) {
		blob, err := store.Open(ctx, "schedule.json")
		require.NoError(t, err)
		defer blob.Close()

		assert.Equal(t, int64(15), blob.Size())

		data, err := ReadAll(ctx, blob)
		require.NoError(t, err)
		assert.Equal(t, `{"venue.1": {}}`, string(data))
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := store.Open(ctx, "absent.json")
		assert.True(t, errors.Is(err, ErrNotFound) || os.IsNotExist(err))
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	store.Put("schedule.json", []byte("hello"))
	ctx := context.Background()

	blob, err := store.Open(ctx, "schedule.json")
	require.NoError(t, err)
	defer blob.Close()

	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = store.Open(ctx, "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCachingStore(t *testing.T) {
	inner := NewMemoryStore()
	payload := make([]byte, 10_000)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	inner.Put("blob", payload)

	store := NewCachingStore(inner, 4096, 16)
	ctx := context.Background()

	blob, err := store.Open(ctx, "blob")
	require.NoError(t, err)
	defer blob.Close()

	// First full read populates the cache.
	data, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	// Second read is served from cache.
	data, err = ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	hits, misses := store.Stats()
	assert.Equal(t, int64(3), misses) // 10000 bytes / 4096 block size
	assert.Positive(t, hits)

	t.Run("RandomOffsets", func(t *testing.T) {
		buf := make([]byte, 100)
		n, err := blob.ReadAt(ctx, buf, 4090) // spans two blocks
		require.NoError(t, err)
		require.Equal(t, 100, n)
		assert.Equal(t, payload[4090:4190], buf)
	})
}
