// Package storage reads import job documents from S3-compatible object storage.
//
// Client is the subset of the MinIO client the importer uses: BucketExists,
// ListObjects for batch previews under a prefix, and GetObject. The mocks
// subpackage provides a testify mock of it.
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := client.GetObject(ctx, cfg.Storage.Bucket, "jobs/chair.yaml", minio.GetObjectOptions{})
package storage
