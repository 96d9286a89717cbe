// Package minio implements blobstore.BlobStore for MinIO and other
// S3-compatible object stores.
//
// Usage:
//
//	client, _ := minio.New("play.min.io", &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := miniostore.NewStore(client, "datasets", "conf/")
//	s, _ := schedgo.Open(ctx, dataset.Blob(store, "schedule.json"))
package minio
