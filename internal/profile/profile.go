// Package profile inspects the raw input tables before any transformation:
// per-table shape and missing-value statistics, join feasibility between the
// catalog tables, and the identifier-space check between ratings and movies.
package profile

import (
	"strings"

	"marquee/internal/rawio"
)

// ColumnStat is one column's missing-value summary.
type ColumnStat struct {
	Name    string  `json:"name"`
	Missing int     `json:"missing"`
	Pct     float64 `json:"pct"`
}

// TableProfile summarizes one raw table.
type TableProfile struct {
	Rows          int          `json:"rows"`
	Columns       int          `json:"columns"`
	ColumnNames   []string     `json:"column_names"`
	Missing       []ColumnStat `json:"missing"`
	DuplicateRows int          `json:"duplicate_rows"`
	SkippedRows   int          `json:"skipped_rows"`
}

// JoinCheck compares the key sets of two tables.
type JoinCheck struct {
	Matches        int `json:"matches"`
	MissingInRight int `json:"missing_in_right"`
	MissingInLeft  int `json:"missing_in_left"`
}

// RatingsKeyCheck documents the identifier-space gap between the ratings and
// movies tables and how far the links bridge closes it.
type RatingsKeyCheck struct {
	KeyColumnRatings     string `json:"key_column_ratings"`
	KeyColumnMovies      string `json:"key_column_movies"`
	DirectOverlap        int    `json:"direct_overlap"`
	RequiresMapping      bool   `json:"requires_mapping_via_links"`
	MappedMatches        int    `json:"mapped_matches"`
	MoviesWithoutRatings int    `json:"movies_without_ratings_after_mapping"`
	RatingsWithoutMovies int    `json:"ratings_without_movies_after_mapping"`
}

// Report is the raw-data profile written to the docs directory.
type Report struct {
	Files           map[string]TableProfile `json:"files"`
	MoviesVsCredits JoinCheck               `json:"movies_vs_credits"`
	MoviesVsKeyword JoinCheck               `json:"movies_vs_keywords"`
	RatingsKeys     RatingsKeyCheck         `json:"ratings_key_check"`
}

// tableOrder fixes the rendering order of the per-file sections.
var tableOrder = []string{"movies_metadata", "credits", "keywords", "ratings", "links"}

// BuildReport profiles the five raw tables.
func BuildReport(tables map[string]*rawio.Table) Report {
	report := Report{Files: make(map[string]TableProfile, len(tables))}
	for name, table := range tables {
		report.Files[name] = profileTable(table)
	}

	movieIDs := idSet(tables["movies_metadata"], "id")
	creditIDs := idSet(tables["credits"], "id")
	keywordIDs := idSet(tables["keywords"], "id")
	report.MoviesVsCredits = compareSets(movieIDs, creditIDs)
	report.MoviesVsKeyword = compareSets(movieIDs, keywordIDs)
	report.RatingsKeys = ratingsKeyCheck(tables, movieIDs)
	return report
}

func profileTable(table *rawio.Table) TableProfile {
	profile := TableProfile{
		Rows:        len(table.Rows),
		Columns:     len(table.Header),
		ColumnNames: table.Header,
		SkippedRows: table.Skipped,
	}

	for i, col := range table.Header {
		missing := 0
		for _, row := range table.Rows {
			if i >= len(row) || strings.TrimSpace(row[i]) == "" {
				missing++
			}
		}
		stat := ColumnStat{Name: col, Missing: missing}
		if len(table.Rows) > 0 {
			stat.Pct = roundPct(float64(missing) / float64(len(table.Rows)) * 100)
		}
		profile.Missing = append(profile.Missing, stat)
	}

	seen := make(map[string]struct{}, len(table.Rows))
	for _, row := range table.Rows {
		key := strings.Join(row, "\x00")
		if _, dup := seen[key]; dup {
			profile.DuplicateRows++
			continue
		}
		seen[key] = struct{}{}
	}
	return profile
}

func idSet(table *rawio.Table, column string) map[int64]struct{} {
	set := make(map[int64]struct{})
	if table == nil {
		return set
	}
	for _, row := range table.Rows {
		if id, ok := table.Int64Cell(row, column); ok {
			set[id] = struct{}{}
		}
	}
	return set
}

func compareSets(left, right map[int64]struct{}) JoinCheck {
	var check JoinCheck
	for id := range left {
		if _, ok := right[id]; ok {
			check.Matches++
		} else {
			check.MissingInRight++
		}
	}
	for id := range right {
		if _, ok := left[id]; !ok {
			check.MissingInLeft++
		}
	}
	return check
}

func ratingsKeyCheck(tables map[string]*rawio.Table, movieIDs map[int64]struct{}) RatingsKeyCheck {
	check := RatingsKeyCheck{
		KeyColumnRatings: "movieId (community)",
		KeyColumnMovies:  "id (catalog)",
		RequiresMapping:  true,
	}

	ratingIDs := idSet(tables["ratings"], "movieId")
	for id := range movieIDs {
		if _, ok := ratingIDs[id]; ok {
			check.DirectOverlap++
		}
	}

	mapped := make(map[int64]struct{})
	if links := tables["links"]; links != nil {
		for _, row := range links.Rows {
			if _, ok := links.Int64Cell(row, "movieId"); !ok {
				continue
			}
			if tmdbID, ok := links.Int64Cell(row, "tmdbId"); ok {
				mapped[tmdbID] = struct{}{}
			}
		}
	}

	for id := range movieIDs {
		if _, ok := mapped[id]; ok {
			check.MappedMatches++
		} else {
			check.MoviesWithoutRatings++
		}
	}
	for id := range mapped {
		if _, ok := movieIDs[id]; !ok {
			check.RatingsWithoutMovies++
		}
	}
	return check
}

func roundPct(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
