package tablecsv

import (
	"os"
	"strings"
	"testing"

	"marquee/internal/model"
)

func f64(v float64) *float64 { return &v }

func i64(v int64) *int64 { return &v }

func TestWriteReadMoviesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	movies := []model.Movie{
		{ID: 862, Title: "Toy Story", ReleaseYear: i64(1995), OriginalLanguage: "en",
			Status: "Released", Budget: f64(30000000), Revenue: f64(373554033),
			Profit: f64(343554033), ROI: f64(11.451801)},
		{ID: 8844, Title: "Jumanji"},
	}

	if _, err := Write(dir, Movies, movies); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(dir, Movies)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].ID != 862 || got[0].Title != "Toy Story" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[0].ReleaseYear == nil || *got[0].ReleaseYear != 1995 {
		t.Fatalf("release year lost: %+v", got[0].ReleaseYear)
	}
	if got[1].Budget != nil || got[1].ROI != nil {
		t.Fatalf("nil columns must stay nil: %+v", got[1])
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	facts := []model.RatingFact{
		{MovieID: 862, AvgRating: f64(4.5), RatingCount: 2},
		{MovieID: 8844, RatingCount: 0},
	}

	path1, err := Write(dir1, RatingFacts, facts)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	path2, err := Write(dir2, RatingFacts, facts)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	data1, err := os.ReadFile(path1)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	data2, err := os.ReadFile(path2)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data1) != string(data2) {
		t.Fatal("identical input must yield byte-identical files")
	}
	if !strings.HasPrefix(string(data1), "movie_id,avg_rating,rating_count\n") {
		t.Fatalf("unexpected header: %q", string(data1))
	}
	if !strings.Contains(string(data1), "\n8844,,0\n") {
		t.Fatalf("nil average must serialize empty: %q", string(data1))
	}
}

func TestReadRejectsHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Movies.Path(dir), []byte("wrong,header\n1,2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Read(dir, Movies); err == nil {
		t.Fatal("expected header mismatch error")
	}
}

func TestReadRawReturnsStrings(t *testing.T) {
	dir := t.TempDir()
	if _, err := Write(dir, Genres, []string{"Animation", "Comedy"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	header, rows, err := ReadRaw(Genres.Path(dir))
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if len(header) != 1 || header[0] != "genre_name" {
		t.Fatalf("unexpected header: %v", header)
	}
	if len(rows) != 2 || rows[1][0] != "Comedy" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestCoActorPairsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pairs := []model.CoActorPair{{Actor1ID: 3, Actor1: "A", Actor2ID: 7, Actor2: "B", SharedMovies: 2}}
	if _, err := Write(dir, CoActorPairs, pairs); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(dir, CoActorPairs)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 1 || got[0] != pairs[0] {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
