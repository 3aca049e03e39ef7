// Package rawio reads the raw source CSVs into in-memory tables.
//
// Files are decoded as UTF-8 with a Latin-1 fallback, mirroring how the
// dataset ships in the wild. A missing or headerless file is a structural
// failure; ragged rows are tolerated, skipped, and counted so the profiling
// and quality reports can surface them.
package rawio
