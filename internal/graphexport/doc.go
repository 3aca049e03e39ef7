// Package graphexport writes the processed tables as Neo4j bulk-loader CSVs:
// node files for movies, persons, genres, keywords, and companies, plus
// relationship files for cast, direction, genre, keyword, and production
// membership. Column names follow the loader's ID-space header syntax and
// must not change without updating the import templates.
package graphexport
