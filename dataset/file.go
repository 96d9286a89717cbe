package dataset

import (
	"context"
	"fmt"
	"os"
)

// File returns a Loader reading a dataset document from the local
// filesystem.
func File(path string, optFns ...func(*Options)) Loader {
	return &fileLoader{path: path, opts: applyOptions(optFns)}
}

type fileLoader struct {
	path string
	opts Options
}

func (l *fileLoader) Load(_ context.Context) (Raw, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", l.path, err)
	}
	return Decode(data, l.opts.Codec)
}
