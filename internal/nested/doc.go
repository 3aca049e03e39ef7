// Package nested parses the semi-structured list-of-record fields embedded in
// the raw movie dataset (genres, keywords, production companies, cast, crew).
//
// The raw cells are Python repr strings most of the time and JSON some of the
// time. ParseList is deliberately tolerant: it tries JSON, then a
// Python-literal coercion, and yields an empty list for anything it cannot
// make sense of. Shape mismatches never become errors; callers extract known
// keys from untyped records and default the rest.
package nested
