// Package blobstore provides storage abstraction for schedgo datasets.
//
// A BlobStore hands out read-only Blob handles; the dataset loader reads
// a blob in one shot and decodes it. Implementations must be safe for
// concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem
//   - MemoryStore: in-memory, for tests
//   - CachingStore: block-level LRU cache over any inner store
//   - s3.Store: Amazon S3 with ranged reads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom backends:
//
//	type BlobStore interface {
//	    Open(ctx context.Context, name string) (Blob, error)
//	}
package blobstore
