package profile

import (
	"strings"
	"testing"

	"marquee/internal/rawio"
)

func fixtureTables() map[string]*rawio.Table {
	return map[string]*rawio.Table{
		"movies_metadata": {
			Name:   "movies_metadata",
			Header: []string{"id", "title", "budget"},
			Rows: [][]string{
				{"862", "Toy Story", "100000"},
				{"8844", "Jumanji", ""},
				{"8844", "Jumanji", ""},
				{"949", "Heat", "60000000"},
			},
		},
		"credits": {
			Name:   "credits",
			Header: []string{"id", "cast", "crew"},
			Rows: [][]string{
				{"862", "[]", "[]"},
				{"8844", "[]", "[]"},
			},
		},
		"keywords": {
			Name:   "keywords",
			Header: []string{"id", "keywords"},
			Rows: [][]string{
				{"862", "[]"},
				{"77", "[]"},
			},
		},
		"ratings": {
			Name:   "ratings",
			Header: []string{"userId", "movieId", "rating", "timestamp"},
			Rows: [][]string{
				{"1", "1", "4.0", "964982703"},
				{"1", "862", "3.5", "964982800"},
			},
		},
		"links": {
			Name:   "links",
			Header: []string{"movieId", "imdbId", "tmdbId"},
			Rows: [][]string{
				{"1", "0114709", "862"},
				{"2", "0113497", "8844"},
				{"3", "0113228", ""},
			},
		},
	}
}

func TestProfileTable(t *testing.T) {
	report := BuildReport(fixtureTables())

	movies := report.Files["movies_metadata"]
	if movies.Rows != 4 || movies.Columns != 3 {
		t.Fatalf("shape: %+v", movies)
	}
	if movies.DuplicateRows != 1 {
		t.Fatalf("duplicate rows: %d", movies.DuplicateRows)
	}

	budget := movies.Missing[2]
	if budget.Name != "budget" || budget.Missing != 2 || budget.Pct != 50 {
		t.Fatalf("budget missing stat: %+v", budget)
	}
}

func TestJoinChecks(t *testing.T) {
	report := BuildReport(fixtureTables())

	// Movies {862, 8844, 949} vs credits {862, 8844}.
	credits := report.MoviesVsCredits
	if credits.Matches != 2 || credits.MissingInRight != 1 || credits.MissingInLeft != 0 {
		t.Fatalf("movies vs credits: %+v", credits)
	}

	// Movies {862, 8844, 949} vs keywords {862, 77}.
	keywords := report.MoviesVsKeyword
	if keywords.Matches != 1 || keywords.MissingInRight != 2 || keywords.MissingInLeft != 1 {
		t.Fatalf("movies vs keywords: %+v", keywords)
	}
}

func TestRatingsKeyCheck(t *testing.T) {
	report := BuildReport(fixtureTables())
	keys := report.RatingsKeys

	// Community ID 862 collides with a catalog ID by coincidence.
	if keys.DirectOverlap != 1 {
		t.Fatalf("direct overlap: %d", keys.DirectOverlap)
	}
	if !keys.RequiresMapping {
		t.Fatal("mapping must be required")
	}
	// Bridge maps onto {862, 8844}; both are catalog movies.
	if keys.MappedMatches != 2 {
		t.Fatalf("mapped matches: %d", keys.MappedMatches)
	}
	// 949 has no bridge entry.
	if keys.MoviesWithoutRatings != 1 {
		t.Fatalf("movies without ratings: %d", keys.MoviesWithoutRatings)
	}
	if keys.RatingsWithoutMovies != 0 {
		t.Fatalf("ratings without movies: %d", keys.RatingsWithoutMovies)
	}
}

func TestMarkdownReport(t *testing.T) {
	report := BuildReport(fixtureTables())
	markdown := report.Markdown()

	if !strings.Contains(markdown, "## movies_metadata") {
		t.Fatalf("missing file section:\n%s", markdown)
	}
	// Table sections come out in pipeline order.
	if strings.Index(markdown, "## movies_metadata") > strings.Index(markdown, "## credits") {
		t.Fatalf("sections out of order:\n%s", markdown)
	}
	if !strings.Contains(markdown, "## Join Checks") {
		t.Fatalf("missing join checks:\n%s", markdown)
	}
	if !strings.Contains(markdown, "Direct overlap (should be low): 1") {
		t.Fatalf("missing ratings key check:\n%s", markdown)
	}
}
