package blobstore

import (
	"context"
	"io"

	"github.com/schedgo/schedgo/cache"
)

// BlockKey identifies a cached block within a named blob.
type BlockKey struct {
	Name   string
	Offset int64
}

// CachingStore wraps a BlobStore and adds block-level read caching.
//
// Blobs are immutable, so cached blocks are never invalidated.
type CachingStore struct {
	inner     BlobStore
	blocks    *cache.LRU[BlockKey, []byte]
	blockSize int64
}

// NewCachingStore creates a new CachingStore.
// blockSize defaults to 4KB if <= 0; maxBlocks bounds the LRU.
func NewCachingStore(inner BlobStore, blockSize int64, maxBlocks int) *CachingStore {
	if blockSize <= 0 {
		blockSize = 4096
	}
	return &CachingStore{
		inner:     inner,
		blocks:    cache.NewLRU[BlockKey, []byte](maxBlocks),
		blockSize: blockSize,
	}
}

// Stats returns the block cache hit/miss counters.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.blocks.Stats()
}

// Open opens a blob whose reads go through the block cache.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	return &cachingBlob{
		inner:     b,
		store:     s,
		name:      name,
		blockSize: s.blockSize,
	}, nil
}

type cachingBlob struct {
	inner     Blob
	store     *CachingStore
	name      string
	blockSize int64
}

func (b *cachingBlob) Size() int64 {
	return b.inner.Size()
}

func (b *cachingBlob) Close() error {
	return b.inner.Close()
}

func (b *cachingBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off >= b.inner.Size() {
		return 0, io.EOF
	}

	total := 0
	for total < len(p) {
		pos := off + int64(total)
		if pos >= b.inner.Size() {
			return total, io.EOF
		}

		block, err := b.block(ctx, pos/b.blockSize)
		if err != nil {
			return total, err
		}

		within := int(pos % b.blockSize)
		if within >= len(block) {
			return total, io.EOF
		}
		total += copy(p[total:], block[within:])
	}

	return total, nil
}

// block returns the idx-th block, reading through the cache.
func (b *cachingBlob) block(ctx context.Context, idx int64) ([]byte, error) {
	key := BlockKey{Name: b.name, Offset: idx * b.blockSize}
	if cached, ok := b.store.blocks.Get(key); ok {
		return cached, nil
	}

	size := b.blockSize
	if remaining := b.inner.Size() - key.Offset; remaining < size {
		size = remaining
	}

	block := make([]byte, size)
	n, err := b.inner.ReadAt(ctx, block, key.Offset)
	if err != nil && err != io.EOF {
		return nil, err
	}
	block = block[:n]

	b.store.blocks.Set(key, block)
	return block, nil
}
