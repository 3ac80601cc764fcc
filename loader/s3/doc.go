// Package s3 provides dataset loading from S3-compatible object storage.
//
// # Usage
//
//	client, err := s3.NewClient(ctx)
//	if err != nil { ... }
//
//	l, err := s3.Open(ctx, client, "benchmarks", "datasets/orders.csv.zst")
//	if err != nil { ... }
//
//	err = tbl.Load(ctx, l)
//
// The object key's extensions choose the dataset format and compression the
// same way loader.Open does for file paths.
package s3
