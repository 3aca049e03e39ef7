// Package curated builds the denormalized, dashboard-ready tables from the
// processed layer: the movie overview, genre statistics, year trends, the
// co-actor insight table, and the insights JSON document.
package curated
