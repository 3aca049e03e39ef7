// Package transform normalizes the raw movie tables into the processed layer:
// dimension tables (movie, person, genre, company, keyword), bridge tables
// (genre, company, keyword, cast, crew, director), and the aggregated rating
// fact table.
//
// This is where the two incompatible identifier spaces meet: community rating
// rows are reconciled onto catalog movie IDs through the links bridge, with
// unmapped identifiers counted rather than treated as errors. Per-row
// anomalies (unparseable IDs, malformed nested fields) are absorbed the same
// way and surface only in the quality report.
package transform
