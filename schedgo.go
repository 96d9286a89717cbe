package schedgo

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/schedgo/schedgo/cache"
	"github.com/schedgo/schedgo/dataset"
	"github.com/schedgo/schedgo/record"
	"golang.org/x/sync/singleflight"
)

// Store is a read-only record store over a loaded schedule dataset.
//
// Records are constructed lazily on first fetch and memoized, so every
// fetch of the same key returns the identical instance. The dataset is
// immutable for the lifetime of the store; there is no write path and
// no invalidation.
type Store struct {
	raw  dataset.Raw
	memo *cache.Memo[record.Key, record.Record]

	// group collapses concurrent first fetches of the same key into a
	// single construction.
	group singleflight.Group

	// ord assigns each key a dense ordinal; byCategory holds a posting
	// bitmap of ordinals per category.
	ord        []record.Key
	byCategory map[string]*roaring.Bitmap

	logger  *Logger
	metrics MetricsCollector
}

var _ record.Resolver = (*Store)(nil)

// Open loads the dataset through the loader and indexes it.
//
// Load failures (I/O, decompression, parse) are fatal; there is no
// partial load.
func Open(ctx context.Context, loader dataset.Loader, optFns ...Option) (*Store, error) {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()
	raw, err := loader.Load(ctx)
	opts.metrics.RecordLoad(len(raw), time.Since(start), err)
	opts.logger.LogLoad(ctx, len(raw), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	s := &Store{
		raw:        raw,
		memo:       cache.NewMemo[record.Key, record.Record](),
		byCategory: make(map[string]*roaring.Bitmap),
		logger:     opts.logger,
		metrics:    opts.metrics,
	}
	s.buildIndex()

	return s, nil
}

// buildIndex assigns dense ordinals in deterministic key order and
// builds the per-category posting bitmaps.
func (s *Store) buildIndex() {
	s.ord = make([]record.Key, 0, len(s.raw))
	for key := range s.raw {
		s.ord = append(s.ord, key)
	}
	slices.SortFunc(s.ord, func(a, b record.Key) int {
		if c := cmp.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return cmp.Compare(a.Serial, b.Serial)
	})

	for i, key := range s.ord {
		bm, ok := s.byCategory[key.Category]
		if !ok {
			bm = roaring.New()
			s.byCategory[key.Category] = bm
		}
		bm.Add(uint32(i))
	}
}

// Fetch returns the record for the composite key.
//
// The first fetch of a key constructs the category-appropriate variant
// and memoizes it; subsequent fetches return the identical instance.
// Missing keys fail with an error satisfying errors.Is(err, ErrNotFound).
func (s *Store) Fetch(key record.Key) (record.Record, error) {
	start := time.Now()

	if rec, ok := s.memo.Get(key); ok {
		s.metrics.RecordFetch(time.Since(start), true, nil)
		return rec, nil
	}

	v, err, _ := s.group.Do(key.String(), func() (any, error) {
		// Re-check under the flight: a concurrent caller may have won.
		if rec, ok := s.memo.Get(key); ok {
			return rec, nil
		}

		fields, ok := s.raw[key]
		if !ok {
			return nil, &ErrUnknownKey{Key: key}
		}

		rec := record.New(key, fields, s)
		return s.memo.Set(key, rec), nil
	})

	s.metrics.RecordFetch(time.Since(start), false, err)
	s.logger.LogFetch(context.Background(), key, false, err)
	if err != nil {
		return nil, err
	}

	return v.(record.Record), nil
}

// FetchString parses a composite key string and fetches the record.
func (s *Store) FetchString(key string) (record.Record, error) {
	k, err := record.ParseKey(key)
	if err != nil {
		return nil, err
	}
	return s.Fetch(k)
}

// Count returns the total number of records in the dataset.
func (s *Store) Count() int {
	return len(s.ord)
}

// CountCategory returns the number of records in a category.
func (s *Store) CountCategory(category string) int {
	bm, ok := s.byCategory[category]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// Categories returns all categories present in the dataset, sorted.
func (s *Store) Categories() []string {
	out := make([]string, 0, len(s.byCategory))
	for category := range s.byCategory {
		out = append(out, category)
	}
	slices.Sort(out)
	return out
}

// Keys returns the keys of a category in deterministic order.
// An empty category returns every key in the dataset.
func (s *Store) Keys(category string) []record.Key {
	if category == "" {
		return slices.Clone(s.ord)
	}

	bm, ok := s.byCategory[category]
	if !ok {
		return nil
	}

	out := make([]record.Key, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, s.ord[it.Next()])
	}
	return out
}
