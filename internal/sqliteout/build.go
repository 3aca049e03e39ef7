package sqliteout

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"marquee/internal/tablecsv"
)

// Result reports what the database build produced.
type Result struct {
	DBPath    string
	RowCounts map[string]int
	Indexes   []string
	Warnings  []string
}

// indexTargets are the join columns worth indexing when present.
var indexTargets = []struct {
	table  string
	column string
}{
	{"dim_movie", "movie_id"},
	{"dim_person", "person_id"},
	{"fact_movie_ratings_agg", "movie_id"},
	{"bridge_movie_cast", "movie_id"},
	{"bridge_movie_cast", "person_id"},
	{"bridge_movie_director", "movie_id"},
	{"bridge_movie_director", "person_id"},
	{"bridge_movie_genre", "movie_id"},
	{"bridge_movie_keyword", "movie_id"},
	{"bridge_movie_company", "movie_id"},
	{"curated_movie_overview", "movie_id"},
	{"curated_movie_overview", "release_year"},
}

// coverageTables are checked for movie_id values missing from dim_movie.
var coverageTables = []string{
	"fact_movie_ratings_agg",
	"bridge_movie_cast",
	"bridge_movie_director",
	"bridge_movie_genre",
	"bridge_movie_keyword",
	"bridge_movie_company",
}

// BuildDatabase recreates movies_etl.sqlite under sqlDir from every CSV
// found in the processed and curated directories. The database is rebuilt
// from scratch on every run.
func BuildDatabase(processedDir, curatedDir, sqlDir string) (*Result, error) {
	if err := os.MkdirAll(sqlDir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %q: %w", sqlDir, err)
	}
	dbPath := filepath.Join(sqlDir, "movies_etl.sqlite")
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("remove previous database: %w", err)
	}

	paths, err := collectTables(processedDir, curatedDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no tables found under %s or %s", processedDir, curatedDir)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	result := &Result{DBPath: dbPath, RowCounts: make(map[string]int, len(paths))}
	columns := make(map[string][]string, len(paths))

	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		header, rows, err := tablecsv.ReadRaw(paths[name])
		if err != nil {
			return nil, err
		}
		if err := loadTable(db, name, header, rows); err != nil {
			return nil, err
		}
		result.RowCounts[name] = len(rows)
		columns[name] = header
	}

	for _, target := range indexTargets {
		if !hasColumn(columns, target.table, target.column) {
			continue
		}
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s(%s)",
			target.table, target.column, target.table, target.column)
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("create index on %s(%s): %w", target.table, target.column, err)
		}
		result.Indexes = append(result.Indexes, fmt.Sprintf("%s(%s)", target.table, target.column))
	}

	if hasColumn(columns, "dim_movie", "movie_id") {
		for _, table := range coverageTables {
			if !hasColumn(columns, table, "movie_id") {
				continue
			}
			missing, err := missingMovieIDs(db, table)
			if err != nil {
				return nil, err
			}
			if missing > 0 {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: %d rows with movie_id not in dim_movie", table, missing))
			}
		}
	}

	return result, nil
}

// collectTables maps table names to CSV paths; curated tables shadow
// processed ones on name collision.
func collectTables(dirs ...string) (map[string]string, error) {
	tables := make(map[string]string)
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", dir, err)
		}
		for _, path := range matches {
			name := strings.TrimSuffix(filepath.Base(path), ".csv")
			tables[name] = path
		}
	}
	return tables, nil
}

func loadTable(db *sql.DB, name string, header []string, rows [][]string) error {
	kinds := inferColumnKinds(header, rows)

	defs := make([]string, len(header))
	for i, col := range header {
		defs[i] = fmt.Sprintf("%q %s", col, kinds[i])
	}
	ddl := fmt.Sprintf("CREATE TABLE %q (%s)", name, strings.Join(defs, ", "))
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create table %s: %w", name, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert transaction for %s: %w", name, err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(header)), ",")
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %q VALUES (%s)", name, placeholders))
	if err != nil {
		return fmt.Errorf("prepare insert for %s: %w", name, err)
	}
	defer stmt.Close()

	args := make([]any, len(header))
	for _, row := range rows {
		for i := range header {
			args[i] = cellValue(row, i, kinds[i])
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert into %s: %w", name, err)
		}
	}
	return tx.Commit()
}

// inferColumnKinds picks INTEGER, REAL, or TEXT per column by scanning
// non-empty cells. A column with no values at all stays TEXT.
func inferColumnKinds(header []string, rows [][]string) []string {
	kinds := make([]string, len(header))
	for i := range header {
		kind := ""
		for _, row := range rows {
			if i >= len(row) || row[i] == "" {
				continue
			}
			cell := row[i]
			if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
				if kind == "" {
					kind = "INTEGER"
				}
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err == nil {
				if kind == "" || kind == "INTEGER" {
					kind = "REAL"
				}
				continue
			}
			kind = "TEXT"
			break
		}
		if kind == "" {
			kind = "TEXT"
		}
		kinds[i] = kind
	}
	return kinds
}

// cellValue converts a CSV cell for insertion. Empty cells become NULL.
func cellValue(row []string, i int, kind string) any {
	if i >= len(row) || row[i] == "" {
		return nil
	}
	cell := row[i]
	switch kind {
	case "INTEGER":
		if v, err := strconv.ParseInt(cell, 10, 64); err == nil {
			return v
		}
	case "REAL":
		if v, err := strconv.ParseFloat(cell, 64); err == nil {
			return v
		}
	}
	return cell
}

func hasColumn(columns map[string][]string, table, column string) bool {
	for _, col := range columns[table] {
		if col == column {
			return true
		}
	}
	return false
}

func missingMovieIDs(db *sql.DB, table string) (int, error) {
	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %q t LEFT JOIN dim_movie d ON t.movie_id = d.movie_id WHERE d.movie_id IS NULL",
		table)
	var count int
	if err := db.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("coverage check for %s: %w", table, err)
	}
	return count, nil
}

// Summary renders the build report for the docs directory.
func (r *Result) Summary() string {
	var b strings.Builder
	b.WriteString("# SQLite Export Summary\n\n")

	b.WriteString("## Row counts\n")
	names := make([]string, 0, len(r.RowCounts))
	for name := range r.RowCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %d\n", name, r.RowCounts[name])
	}

	b.WriteString("\n## Indexes\n")
	if len(r.Indexes) == 0 {
		b.WriteString("- (none)\n")
	}
	for _, index := range r.Indexes {
		fmt.Fprintf(&b, "- %s\n", index)
	}

	b.WriteString("\n## Data quality checks\n")
	if len(r.Warnings) == 0 {
		b.WriteString("- No issues detected.\n")
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(&b, "- %s\n", warning)
	}
	return b.String()
}
