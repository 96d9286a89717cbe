package dataset

import (
	"context"
	"fmt"

	"github.com/schedgo/schedgo/blobstore"
)

// wholeDownloader is the optional fast path for stores that can fetch an
// entire object in one call (e.g. the S3 transfer manager).
type wholeDownloader interface {
	Download(ctx context.Context, name string) ([]byte, error)
}

// Blob returns a Loader reading a dataset document from a blob store.
func Blob(store blobstore.BlobStore, name string, optFns ...func(*Options)) Loader {
	return &blobLoader{store: store, name: name, opts: applyOptions(optFns)}
}

type blobLoader struct {
	store blobstore.BlobStore
	name  string
	opts  Options
}

func (l *blobLoader) Load(ctx context.Context) (Raw, error) {
	data, err := l.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", l.name, err)
	}
	return Decode(data, l.opts.Codec)
}

func (l *blobLoader) read(ctx context.Context) ([]byte, error) {
	if d, ok := l.store.(wholeDownloader); ok {
		return d.Download(ctx, l.name)
	}

	blob, err := l.store.Open(ctx, l.name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	return blobstore.ReadAll(ctx, blob)
}
