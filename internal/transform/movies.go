package transform

import (
	"strconv"
	"time"

	"marquee/internal/model"
	"marquee/internal/nested"
	"marquee/internal/rawio"
)

// buildMovies fills dim_movie, dim_genre, dim_company, and the genre/company
// bridges. Rows without a parseable catalog ID are dropped; duplicate IDs
// keep their first occurrence.
func buildMovies(table *rawio.Table, result *Result) {
	seen := make(map[int64]struct{}, len(table.Rows))
	genreDim := newNameDim()
	companyDim := newNameDim()

	for _, row := range table.Rows {
		id, ok := table.Int64Cell(row, "id")
		if !ok {
			result.Anomalies.MovieRowsDropped++
			continue
		}
		if _, dup := seen[id]; dup {
			result.Anomalies.DuplicateMovieIDs++
			continue
		}
		seen[id] = struct{}{}

		movie := model.Movie{
			ID:               id,
			Title:            table.Cell(row, "title"),
			OriginalLanguage: table.Cell(row, "original_language"),
			Status:           table.Cell(row, "status"),
		}
		if year, ok := parseReleaseYear(table.Cell(row, "release_date")); ok {
			movie.ReleaseYear = i64ptr(year)
		}
		if v, ok := table.Float64Cell(row, "budget"); ok {
			movie.Budget = f64ptr(v)
		}
		if v, ok := table.Float64Cell(row, "revenue"); ok {
			movie.Revenue = f64ptr(v)
		}
		if v, ok := table.Float64Cell(row, "runtime"); ok {
			movie.Runtime = f64ptr(v)
		}
		if v, ok := table.Float64Cell(row, "popularity"); ok {
			movie.Popularity = f64ptr(v)
		}
		if v, ok := table.Float64Cell(row, "vote_average"); ok {
			movie.VoteAverage = f64ptr(v)
		}
		if v, ok := table.Float64Cell(row, "vote_count"); ok {
			movie.VoteCount = f64ptr(v)
		}
		if movie.Budget != nil && movie.Revenue != nil {
			movie.Profit = f64ptr(*movie.Revenue - *movie.Budget)
		}
		movie.ROI = computeROI(movie.Budget, movie.Revenue)

		result.Movies = append(result.Movies, movie)

		for _, name := range parseNames(table.Cell(row, "genres")) {
			canonical := genreDim.add(name)
			result.GenreBridges = append(result.GenreBridges, model.GenreBridge{MovieID: id, GenreName: canonical})
		}
		for _, name := range parseNames(table.Cell(row, "production_companies")) {
			canonical := companyDim.add(name)
			result.CompanyBridges = append(result.CompanyBridges, model.CompanyBridge{MovieID: id, CompanyName: canonical})
		}
	}

	result.Genres = genreDim.names
	result.Companies = companyDim.names
}

// computeROI returns (revenue - budget) / budget, or nil when budget is
// absent or not positive.
func computeROI(budget, revenue *float64) *float64 {
	if budget == nil || revenue == nil || *budget <= 0 {
		return nil
	}
	return f64ptr((*revenue - *budget) / *budget)
}

// parseReleaseYear accepts full dates ("1995-10-30") and bare years.
func parseReleaseYear(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return int64(t.Year()), true
	}
	if len(raw) >= 4 {
		if year, err := strconv.ParseInt(raw[:4], 10, 64); err == nil && year > 0 {
			return year, true
		}
	}
	return 0, false
}

// parseNames extracts the deduplicated name values of a list-of-record cell,
// preserving first-seen order within the movie.
func parseNames(raw string) []string {
	records := nested.ParseList(raw)
	if len(records) == 0 {
		return nil
	}
	var names []string
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		name := record.String("name")
		if name == "" {
			continue
		}
		key := normalizeName(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names
}

// nameDim accumulates a name-keyed dimension with case/whitespace-insensitive
// dedupe and first-seen ordering.
type nameDim struct {
	names []string
	seen  map[string]string
}

func newNameDim() *nameDim {
	return &nameDim{seen: make(map[string]string)}
}

// add registers name and returns the dimension's canonical spelling, the
// first-seen form of the normalized key. Bridge rows must carry the
// canonical spelling so they join back to the dimension.
func (d *nameDim) add(name string) string {
	key := normalizeName(name)
	if canonical, dup := d.seen[key]; dup {
		return canonical
	}
	d.seen[key] = name
	d.names = append(d.names, name)
	return name
}
