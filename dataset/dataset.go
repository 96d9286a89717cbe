// Package dataset loads schedule datasets into their raw in-memory form.
//
// A dataset is a JSON document in one of two shapes:
//
//   - flat: a top-level mapping from composite key to field mapping,
//     {"venue.1469": {"serial": 1469, ...}, ...}
//   - nested: the upstream feed shape, {"Schedule": {"venues": [...],
//     "events": [...], ...}}, where plural collection names carry the
//     category and each entry carries its own serial.
//
// Documents may be gzip-, zstd- or lz4-compressed; compression is
// detected by magic bytes, not file extension.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/schedgo/schedgo/codec"
	"github.com/schedgo/schedgo/record"
)

// ErrMalformed is returned when a dataset document cannot be decoded.
// Loading never recovers partially: the first malformed entry fails the
// whole load.
var ErrMalformed = errors.New("malformed dataset")

// Raw is the decoded dataset: every record's verbatim fields, keyed by
// composite key.
type Raw map[record.Key]record.Fields

// Loader loads a dataset from some source.
type Loader interface {
	Load(ctx context.Context) (Raw, error)
}

// Options configures a loader.
type Options struct {
	// Codec decodes the (decompressed) document. Defaults to codec.Default.
	Codec codec.Codec
}

// WithCodec sets the codec used to decode the document.
func WithCodec(c codec.Codec) func(*Options) {
	return func(o *Options) {
		if c == nil {
			c = codec.Default
		}
		o.Codec = c
	}
}

func applyOptions(optFns []func(*Options)) Options {
	opts := Options{Codec: codec.Default}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// Decode decodes a dataset document, accepting both the flat and the
// nested shape and decompressing first when needed.
func Decode(data []byte, c codec.Codec) (Raw, error) {
	if c == nil {
		c = codec.Default
	}

	data, err := decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	var doc map[string]any
	if err := c.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if len(doc) == 1 {
		if nested, ok := doc["Schedule"].(map[string]any); ok {
			return decodeNested(nested)
		}
	}
	return decodeFlat(doc)
}

func decodeFlat(doc map[string]any) (Raw, error) {
	raw := make(Raw, len(doc))
	for keyStr, v := range doc {
		key, err := record.ParseKey(keyStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		fields, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry %q is not an object", ErrMalformed, keyStr)
		}

		raw[key] = record.Fields(fields)
	}
	return raw, nil
}

func decodeNested(doc map[string]any) (Raw, error) {
	raw := make(Raw)
	for collection, v := range doc {
		entries, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: collection %q is not an array", ErrMalformed, collection)
		}

		category := strings.TrimSuffix(collection, "s")
		for i, e := range entries {
			fields, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] is not an object", ErrMalformed, collection, i)
			}

			serial, err := record.Fields(fields).Int("serial")
			if err != nil {
				return nil, fmt.Errorf("%w: %s[%d]: %w", ErrMalformed, collection, i, err)
			}

			key := record.NewKey(category, serial)
			if _, dup := raw[key]; dup {
				return nil, fmt.Errorf("%w: duplicate key %s", ErrMalformed, key)
			}
			raw[key] = record.Fields(fields)
		}
	}
	return raw, nil
}
