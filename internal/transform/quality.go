package transform

import (
	"fmt"
	"sort"
	"strings"
)

// Quality is the transform quality report written alongside the processed
// layer. Everything here is informational; nothing in it aborts a run.
type Quality struct {
	RowCounts             map[string]int `json:"row_counts"`
	MoviesWithoutGenre    int            `json:"movies_without_genre"`
	MoviesWithoutCast     int            `json:"movies_without_cast"`
	MoviesWithoutKeywords int            `json:"movies_without_keywords"`
	BudgetZero            int            `json:"budget_zero"`
	RevenueZero           int            `json:"revenue_zero"`
	Anomalies             Anomalies      `json:"anomalies"`
	RatingsMapping        MappingLog     `json:"ratings_mapping"`
}

// BuildQuality derives the quality report from a transform result.
func BuildQuality(result *Result) Quality {
	quality := Quality{
		RowCounts: map[string]int{
			"dim_movie":              len(result.Movies),
			"dim_person":             len(result.Persons),
			"dim_genre":              len(result.Genres),
			"dim_company":            len(result.Companies),
			"dim_keyword":            len(result.Keywords),
			"bridge_movie_genre":     len(result.GenreBridges),
			"bridge_movie_company":   len(result.CompanyBridges),
			"bridge_movie_keyword":   len(result.KeywordBridges),
			"bridge_movie_cast":      len(result.Cast),
			"bridge_movie_crew":      len(result.Crew),
			"bridge_movie_director":  len(result.Directors),
			"fact_movie_ratings_agg": len(result.RatingFacts),
		},
		Anomalies:      result.Anomalies,
		RatingsMapping: result.Mapping,
	}

	withGenre := make(map[int64]struct{}, len(result.GenreBridges))
	for _, bridge := range result.GenreBridges {
		withGenre[bridge.MovieID] = struct{}{}
	}
	withCast := make(map[int64]struct{}, len(result.Cast))
	for _, relation := range result.Cast {
		withCast[relation.MovieID] = struct{}{}
	}
	withKeywords := make(map[int64]struct{}, len(result.KeywordBridges))
	for _, bridge := range result.KeywordBridges {
		withKeywords[bridge.MovieID] = struct{}{}
	}

	for _, movie := range result.Movies {
		if _, ok := withGenre[movie.ID]; !ok {
			quality.MoviesWithoutGenre++
		}
		if _, ok := withCast[movie.ID]; !ok {
			quality.MoviesWithoutCast++
		}
		if _, ok := withKeywords[movie.ID]; !ok {
			quality.MoviesWithoutKeywords++
		}
		if movie.Budget != nil && *movie.Budget == 0 {
			quality.BudgetZero++
		}
		if movie.Revenue != nil && *movie.Revenue == 0 {
			quality.RevenueZero++
		}
	}

	return quality
}

// Markdown renders the report for the docs directory. Table names are sorted
// so the output is stable across runs.
func (q Quality) Markdown() string {
	var b strings.Builder
	b.WriteString("# Transform Quality\n\n")

	b.WriteString("## Row Counts\n")
	names := make([]string, 0, len(q.RowCounts))
	for name := range q.RowCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %d\n", name, q.RowCounts[name])
	}

	b.WriteString("\n## Coverage\n")
	fmt.Fprintf(&b, "- Movies without genre: %d\n", q.MoviesWithoutGenre)
	fmt.Fprintf(&b, "- Movies without cast: %d\n", q.MoviesWithoutCast)
	fmt.Fprintf(&b, "- Movies without keywords: %d\n", q.MoviesWithoutKeywords)

	b.WriteString("\n## Budget/Revenue\n")
	fmt.Fprintf(&b, "- budget == 0: %d\n", q.BudgetZero)
	fmt.Fprintf(&b, "- revenue == 0: %d\n", q.RevenueZero)

	b.WriteString("\n## Ratings Mapping\n")
	fmt.Fprintf(&b, "- Key: %s\n", q.RatingsMapping.KeyColumn)
	fmt.Fprintf(&b, "- Rated movies matching the catalog: %d\n", q.RatingsMapping.MatchesCatalog)
	fmt.Fprintf(&b, "- Movies without ratings after mapping: %d\n", q.RatingsMapping.MissingInRatings)
	fmt.Fprintf(&b, "- Ratings without movie metadata: %d\n", q.RatingsMapping.MissingInMovies)
	fmt.Fprintf(&b, "- Rating rows with unmapped community IDs: %d\n", q.RatingsMapping.UnmappedRatingRows)
	b.WriteString("\n")

	return b.String()
}
