// Package loader provides dataset sources for table loads.
//
// A Loader hands a table its width and its rows; row order defines the row
// ids of the loaded table. Loaders are repeatable: Rows returns the same
// dataset on every call, so one Loader can feed several table layouts that
// are being compared against each other.
//
// # Sources
//
//   - FromRows: rows already in memory
//   - NewRandom: deterministic pseudo-random dataset from a seed
//   - ReadCSV / ReadBinary: parse a dataset from an io.Reader
//   - Open: read a dataset file, picking format and compression by extension
//
// Open understands .csv and .tab datasets, optionally wrapped in .gz, .zst
// or .lz4 compression:
//
//	l, err := loader.Open("testdata/orders.csv.zst")
//
// # Object Storage
//
// Package loader/s3 fetches datasets from S3-compatible object storage using
// the same extension rules.
package loader
