package profile

import (
	"fmt"
	"strings"
)

// Markdown renders the profile report for the docs directory. Tables appear
// in pipeline order.
func (r Report) Markdown() string {
	var b strings.Builder
	b.WriteString("# Raw Data Profile\n\n")

	for _, name := range tableOrder {
		table, ok := r.Files[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", name)
		fmt.Fprintf(&b, "- Rows: %d\n", table.Rows)
		fmt.Fprintf(&b, "- Columns: %d\n", table.Columns)
		fmt.Fprintf(&b, "- Column names: %s\n", strings.Join(table.ColumnNames, ", "))
		b.WriteString("- Missing values:\n")
		for _, stat := range table.Missing {
			fmt.Fprintf(&b, "  - %s: %d (%v%%)\n", stat.Name, stat.Missing, stat.Pct)
		}
		fmt.Fprintf(&b, "- Duplicate rows: %d\n", table.DuplicateRows)
		fmt.Fprintf(&b, "- Skipped malformed rows: %d\n", table.SkippedRows)
		b.WriteString("\n")
	}

	b.WriteString("## Join Checks\n")
	fmt.Fprintf(&b, "- Movies vs Credits: matches=%d, missing_in_credits=%d, missing_in_movies=%d\n",
		r.MoviesVsCredits.Matches, r.MoviesVsCredits.MissingInRight, r.MoviesVsCredits.MissingInLeft)
	fmt.Fprintf(&b, "- Movies vs Keywords: matches=%d, missing_in_keywords=%d, missing_in_movies=%d\n",
		r.MoviesVsKeyword.Matches, r.MoviesVsKeyword.MissingInRight, r.MoviesVsKeyword.MissingInLeft)
	fmt.Fprintf(&b, "- Ratings vs Movies (different ID spaces): ratings=%s, movies=%s\n",
		r.RatingsKeys.KeyColumnRatings, r.RatingsKeys.KeyColumnMovies)
	fmt.Fprintf(&b, "- Direct overlap (should be low): %d\n", r.RatingsKeys.DirectOverlap)
	fmt.Fprintf(&b, "- Mapping via links required: %v\n", r.RatingsKeys.RequiresMapping)
	fmt.Fprintf(&b, "- Mapped matches (movieId -> tmdbId): %d\n", r.RatingsKeys.MappedMatches)
	fmt.Fprintf(&b, "- Movies without ratings after mapping: %d\n", r.RatingsKeys.MoviesWithoutRatings)
	fmt.Fprintf(&b, "- Ratings without movies after mapping: %d\n", r.RatingsKeys.RatingsWithoutMovies)
	b.WriteString("\n")
	return b.String()
}
