// Package s3 implements blobstore.BlobStore for Amazon S3.
//
// Open verifies existence with HeadObject and serves ReadAt through
// ranged GetObject requests; Download fetches whole objects with the
// parallel transfer manager.
//
// Usage:
//
//	store, _ := s3.New(ctx, "my-bucket", func(o *s3.Options) {
//	    o.Prefix = "datasets/"
//	})
//	s, _ := schedgo.Open(ctx, dataset.Blob(store, "schedule.json"))
package s3
