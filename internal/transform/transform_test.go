package transform

import (
	"errors"
	"strings"
	"testing"

	"marquee/internal/pipeline"
	"marquee/internal/rawio"
)

func testTable(name string, header []string, rows ...[]string) *rawio.Table {
	return &rawio.Table{Name: name, Header: header, Rows: rows}
}

func testTables() map[string]*rawio.Table {
	movies := testTable("movies_metadata",
		[]string{"id", "title", "release_date", "original_language", "status", "budget", "revenue", "runtime", "popularity", "vote_average", "vote_count", "genres", "production_companies"},
		[]string{"862", "Toy Story", "1995-10-30", "en", "Released", "100000", "300000", "81.0", "21.9", "7.7", "5415", `[{'id': 16, 'name': 'Animation'}, {'id': 35, 'name': 'Comedy'}]`, `[{'name': 'Pixar Animation Studios', 'id': 3}]`},
		[]string{"8844", "Jumanji", "1995-12-15", "en", "Released", "0", "262797249", "104.0", "17.0", "6.9", "2413", `[{'id': 12, 'name': 'Adventure'}]`, `[]`},
		[]string{"862", "Toy Story (dup)", "1995-10-30", "en", "Released", "", "", "", "", "", "", "[]", "[]"},
		[]string{"not-a-number", "Broken", "", "", "", "", "", "", "", "", "", "", ""},
		[]string{"949", "Heat", "1995", "en", "Released", "60000000", "", "170.0", "17.9", "7.7", "1886", `[{'id': 35, 'name': 'COMEDY'}]`, `[]`},
	)

	credits := testTable("credits",
		[]string{"id", "cast", "crew"},
		[]string{"862",
			`[{'cast_id': 14, 'character': 'Woody (voice)', 'id': 31, 'name': 'Tom Hanks', 'order': 0}, {'cast_id': 15, 'character': 'Buzz (voice)', 'id': 12898, 'name': 'Tim Allen', 'order': 1}, {'cast_id': 16, 'character': 'Mr. Potato Head (voice)', 'id': 7167, 'name': 'Don Rickles', 'order': 2}]`,
			`[{'department': 'Directing', 'id': 7879, 'job': 'Director', 'name': 'John Lasseter'}, {'department': 'Writing', 'id': 12891, 'job': 'Screenplay', 'name': 'Joss Whedon'}]`},
		[]string{"8844",
			`[{'cast_id': 1, 'character': 'Alan Parrish', 'id': 2157, 'name': 'Robin Williams', 'order': 0}, {'cast_id': 2, 'character': 'Judy Shepherd', 'id': None, 'name': 'Kirsten Dunst', 'order': 1}]`,
			`[{'department': 'Directing', 'id': 4945, 'job': 'director', 'name': 'Joe Johnston'}]`},
	)

	keywords := testTable("keywords",
		[]string{"id", "keywords"},
		[]string{"862", `[{'id': 931, 'name': 'jealousy'}, {'id': 4290, 'name': 'toy'}]`},
		[]string{"8844", `[{'id': 10090, 'name': 'board game'}]`},
	)

	ratings := testTable("ratings",
		[]string{"userId", "movieId", "rating", "timestamp"},
		[]string{"1", "1", "4.0", "964982703"},
		[]string{"2", "1", "5.0", "964982931"},
		[]string{"3", "2", "3.0", "964983000"},
		[]string{"4", "999999", "2.5", "964983100"},
	)

	links := testTable("links",
		[]string{"movieId", "imdbId", "tmdbId"},
		[]string{"1", "0114709", "862.0"},
		[]string{"2", "0113497", "8844"},
		[]string{"3", "0113228", ""},
	)

	return map[string]*rawio.Table{
		"movies_metadata": movies,
		"credits":         credits,
		"keywords":        keywords,
		"ratings":         ratings,
		"links":           links,
	}
}

func buildFixture(t *testing.T) *Result {
	t.Helper()
	result, err := Build(testTables(), Options{MaxCastPerMovie: 2, DirectorJob: "Director"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return result
}

func TestBuildMoviesDedupAndDrop(t *testing.T) {
	result := buildFixture(t)

	if len(result.Movies) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(result.Movies))
	}
	if result.Movies[0].ID != 862 || result.Movies[0].Title != "Toy Story" {
		t.Fatalf("first movie wrong: %+v", result.Movies[0])
	}
	if result.Anomalies.DuplicateMovieIDs != 1 {
		t.Fatalf("expected 1 duplicate movie ID, got %d", result.Anomalies.DuplicateMovieIDs)
	}
	if result.Anomalies.MovieRowsDropped != 1 {
		t.Fatalf("expected 1 dropped movie row, got %d", result.Anomalies.MovieRowsDropped)
	}
}

func TestBuildMoviesDerivedColumns(t *testing.T) {
	result := buildFixture(t)

	toyStory := result.Movies[0]
	if toyStory.ReleaseYear == nil || *toyStory.ReleaseYear != 1995 {
		t.Fatalf("release year: %v", toyStory.ReleaseYear)
	}
	if toyStory.Profit == nil || *toyStory.Profit != 200000 {
		t.Fatalf("profit: %v", toyStory.Profit)
	}
	if toyStory.ROI == nil || *toyStory.ROI != 2.0 {
		t.Fatalf("roi: %v", toyStory.ROI)
	}

	jumanji := result.Movies[1]
	if jumanji.ROI != nil {
		t.Fatalf("zero budget must yield nil roi, got %v", *jumanji.ROI)
	}
	if jumanji.Profit == nil {
		t.Fatal("profit should still be computed with zero budget")
	}

	heat := result.Movies[2]
	if heat.ReleaseYear == nil || *heat.ReleaseYear != 1995 {
		t.Fatalf("bare year should parse: %v", heat.ReleaseYear)
	}
	if heat.ROI != nil {
		t.Fatalf("missing revenue must yield nil roi, got %v", *heat.ROI)
	}
}

func TestBuildMoviesDimensions(t *testing.T) {
	result := buildFixture(t)

	wantGenres := []string{"Animation", "Comedy", "Adventure"}
	if len(result.Genres) != len(wantGenres) {
		t.Fatalf("genres: %v", result.Genres)
	}
	for i, name := range wantGenres {
		if result.Genres[i] != name {
			t.Fatalf("genre %d: got %q, want %q", i, result.Genres[i], name)
		}
	}

	// "COMEDY" on a later movie dedupes against "Comedy" case-insensitively;
	// its bridge row carries the dimension's canonical spelling so the join
	// key matches dim_genre.
	bridges := 0
	for _, bridge := range result.GenreBridges {
		if bridge.MovieID == 949 {
			bridges++
			if bridge.GenreName != "Comedy" {
				t.Fatalf("bridge carries the canonical spelling, got %q", bridge.GenreName)
			}
		}
	}
	if bridges != 1 {
		t.Fatalf("expected 1 genre bridge for 949, got %d", bridges)
	}

	dimNames := make(map[string]struct{}, len(result.Genres))
	for _, name := range result.Genres {
		dimNames[name] = struct{}{}
	}
	for _, bridge := range result.GenreBridges {
		if _, ok := dimNames[bridge.GenreName]; !ok {
			t.Fatalf("bridge genre %q missing from dim_genre %v", bridge.GenreName, result.Genres)
		}
	}

	if len(result.Companies) != 1 || result.Companies[0] != "Pixar Animation Studios" {
		t.Fatalf("companies: %v", result.Companies)
	}
}

func TestBuildCreditsCastCapAndOrder(t *testing.T) {
	result := buildFixture(t)

	var toyStoryCast []string
	for _, relation := range result.Cast {
		if relation.MovieID == 862 {
			toyStoryCast = append(toyStoryCast, relation.PersonName)
		}
	}
	if len(toyStoryCast) != 2 {
		t.Fatalf("cast cap not applied: %v", toyStoryCast)
	}
	if toyStoryCast[0] != "Tom Hanks" || toyStoryCast[1] != "Tim Allen" {
		t.Fatalf("cast not in billing order: %v", toyStoryCast)
	}

	if result.Anomalies.CastWithoutPersonID != 1 {
		t.Fatalf("expected 1 cast member without person ID, got %d", result.Anomalies.CastWithoutPersonID)
	}
}

func TestBuildCreditsDirectors(t *testing.T) {
	result := buildFixture(t)

	if len(result.Directors) != 2 {
		t.Fatalf("expected 2 directors, got %d: %+v", len(result.Directors), result.Directors)
	}
	if result.Directors[0].PersonName != "John Lasseter" {
		t.Fatalf("director 0: %+v", result.Directors[0])
	}
	// Job matching is case-insensitive: "director" on Jumanji still counts.
	if result.Directors[1].PersonName != "Joe Johnston" {
		t.Fatalf("director 1: %+v", result.Directors[1])
	}
}

func TestBuildPersonsFirstSeen(t *testing.T) {
	result := buildFixture(t)

	seen := make(map[int64]int)
	for _, person := range result.Persons {
		seen[person.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("person %d appears %d times", id, n)
		}
	}
	if result.Persons[0].Name != "Tom Hanks" {
		t.Fatalf("first person: %+v", result.Persons[0])
	}
}

func TestBuildKeywords(t *testing.T) {
	result := buildFixture(t)

	if len(result.Keywords) != 3 {
		t.Fatalf("keywords: %v", result.Keywords)
	}
	if len(result.KeywordBridges) != 3 {
		t.Fatalf("keyword bridges: %+v", result.KeywordBridges)
	}
}

func TestAggregateRatings(t *testing.T) {
	result := buildFixture(t)

	if len(result.RatingFacts) != 2 {
		t.Fatalf("expected 2 rating facts, got %+v", result.RatingFacts)
	}

	// Facts come out in catalog ID order.
	first := result.RatingFacts[0]
	if first.MovieID != 862 {
		t.Fatalf("first fact: %+v", first)
	}
	if first.AvgRating == nil || *first.AvgRating != 4.5 {
		t.Fatalf("avg rating: %v", first.AvgRating)
	}
	if first.RatingCount != 2 {
		t.Fatalf("rating count: %d", first.RatingCount)
	}

	second := result.RatingFacts[1]
	if second.MovieID != 8844 || second.RatingCount != 1 {
		t.Fatalf("second fact: %+v", second)
	}
}

func TestMappingLog(t *testing.T) {
	result := buildFixture(t)

	mapping := result.Mapping
	if mapping.MatchesCatalog != 2 {
		t.Fatalf("matches catalog: %d", mapping.MatchesCatalog)
	}
	// Movie 949 has no ratings.
	if mapping.MissingInRatings != 1 {
		t.Fatalf("missing in ratings: %d", mapping.MissingInRatings)
	}
	// Community ID 999999 has no bridge entry.
	if mapping.UnmappedRatingRows != 1 {
		t.Fatalf("unmapped rating rows: %d", mapping.UnmappedRatingRows)
	}
	if mapping.MissingInMovies != 0 {
		t.Fatalf("missing in movies: %d", mapping.MissingInMovies)
	}
}

func TestBuildBridgeDrops(t *testing.T) {
	result := buildFixture(t)

	// Link row with empty tmdbId never enters the bridge.
	if result.Anomalies.BridgeRowsDropped != 1 {
		t.Fatalf("bridge rows dropped: %d", result.Anomalies.BridgeRowsDropped)
	}
}

func TestRoundToTenth(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{4.5, 4.5},
		{3.4166666, 3.4},
		{3.45, 3.5},
		{2.0, 2.0},
	}
	for _, tc := range cases {
		if got := roundToTenth(tc.in); got != tc.want {
			t.Fatalf("roundToTenth(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBuildRejectsMissingTables(t *testing.T) {
	tables := testTables()
	delete(tables, "ratings")
	_, err := Build(tables, Options{MaxCastPerMovie: 20})
	if !errors.Is(err, pipeline.ErrMissingInput) {
		t.Fatalf("expected missing input error, got %v", err)
	}

	tables = testTables()
	tables["links"].Rows = nil
	_, err = Build(tables, Options{MaxCastPerMovie: 20})
	if !errors.Is(err, pipeline.ErrMissingInput) {
		t.Fatalf("expected missing input error for empty table, got %v", err)
	}
}

func TestBuildRejectsBadOptions(t *testing.T) {
	_, err := Build(testTables(), Options{MaxCastPerMovie: 0})
	if !errors.Is(err, pipeline.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQualityReport(t *testing.T) {
	result := buildFixture(t)
	quality := BuildQuality(result)

	if quality.RowCounts["dim_movie"] != 3 {
		t.Fatalf("dim_movie count: %d", quality.RowCounts["dim_movie"])
	}
	// Heat has a genre but no cast and no keywords.
	if quality.MoviesWithoutCast != 1 {
		t.Fatalf("movies without cast: %d", quality.MoviesWithoutCast)
	}
	if quality.MoviesWithoutKeywords != 1 {
		t.Fatalf("movies without keywords: %d", quality.MoviesWithoutKeywords)
	}
	if quality.MoviesWithoutGenre != 0 {
		t.Fatalf("movies without genre: %d", quality.MoviesWithoutGenre)
	}
	if quality.BudgetZero != 1 {
		t.Fatalf("budget zero: %d", quality.BudgetZero)
	}

	markdown := quality.Markdown()
	if !strings.Contains(markdown, "dim_movie: 3") {
		t.Fatalf("markdown missing row counts:\n%s", markdown)
	}
	if !strings.Contains(markdown, "Ratings Mapping") {
		t.Fatalf("markdown missing mapping section:\n%s", markdown)
	}
}
