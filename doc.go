// Package schedgo provides an embedded, read-only record store for
// conference-schedule-style datasets.
//
// A dataset is a JSON document of records identified by composite keys
// ("<category>.<serial>", e.g. "venue.1469"). The store loads and
// indexes the document once, then serves records by key, constructing
// the category-appropriate variant lazily and memoizing it: fetching
// the same key twice returns the identical instance.
//
// # Quick Start
//
// Local file:
//
//	ctx := context.Background()
//	s, _ := schedgo.Open(ctx, dataset.File("testdata/schedule.json"))
//
//	rec, _ := s.FetchString("event.33950")
//	fmt.Println(rec) // <Event 'There *Will* Be Bugs'>
//
//	venue, _ := rec.(*record.Event).Venue()
//	name, _ := venue.Fields().String("name") // "Portland 251"
//
// Cloud datasets:
//
//	store, _ := s3.New(ctx, "my-bucket")
//	s, _ := schedgo.Open(ctx, dataset.Blob(store, "schedule.json"))
//
//	loader := dynamo.NewLoader(client, "schedule")
//	s, _ := schedgo.Open(ctx, loader)
//
// Datasets may be gzip-, zstd- or lz4-compressed; compression is
// detected automatically.
package schedgo
