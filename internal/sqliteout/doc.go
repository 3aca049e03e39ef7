// Package sqliteout loads the processed and curated CSV layers into a single
// SQLite database for ad-hoc querying, with indexes on the join columns and
// movie_id coverage checks surfaced in a summary document.
package sqliteout
