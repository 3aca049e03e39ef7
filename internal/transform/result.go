package transform

import (
	"strings"

	"marquee/internal/model"
	"marquee/internal/pipeline"
	"marquee/internal/rawio"
)

// Options carries the tunable transform thresholds.
type Options struct {
	MaxCastPerMovie int
	DirectorJob     string
}

// Anomalies counts per-row problems absorbed during the transform.
type Anomalies struct {
	MovieRowsDropped    int `json:"movie_rows_dropped"`
	DuplicateMovieIDs   int `json:"duplicate_movie_ids"`
	CreditRowsDropped   int `json:"credit_rows_dropped"`
	CastWithoutPersonID int `json:"cast_without_person_id"`
	CrewWithoutPersonID int `json:"crew_without_person_id"`
	KeywordRowsDropped  int `json:"keyword_rows_dropped"`
	BridgeRowsDropped   int `json:"bridge_rows_dropped"`
	DuplicateBridgeIDs  int `json:"duplicate_bridge_ids"`
}

// Result holds every processed table produced by one transform run.
type Result struct {
	Movies    []model.Movie
	Persons   []model.Person
	Genres    []string
	Companies []string
	Keywords  []string

	GenreBridges   []model.GenreBridge
	CompanyBridges []model.CompanyBridge
	KeywordBridges []model.KeywordBridge
	Cast           []model.CastRelation
	Crew           []model.CrewRelation
	Directors      []model.DirectorRelation

	RatingFacts []model.RatingFact

	Mapping   MappingLog
	Anomalies Anomalies
}

// Build runs the full transform over the five raw tables.
func Build(tables map[string]*rawio.Table, opts Options) (*Result, error) {
	for _, name := range []string{"movies_metadata", "credits", "keywords", "ratings", "links"} {
		table, ok := tables[name]
		if !ok || table == nil {
			return nil, pipeline.Wrap(pipeline.ErrMissingInput, "transform", "load raw", name+" table not loaded", nil)
		}
		if len(table.Rows) == 0 {
			return nil, pipeline.Wrap(pipeline.ErrMissingInput, "transform", "load raw", name+" table is empty", nil)
		}
	}
	if opts.MaxCastPerMovie <= 0 {
		return nil, pipeline.Wrap(pipeline.ErrValidation, "transform", "options", "max cast per movie must be positive", nil)
	}
	if strings.TrimSpace(opts.DirectorJob) == "" {
		opts.DirectorJob = "Director"
	}

	result := &Result{}
	buildMovies(tables["movies_metadata"], result)
	buildCredits(tables["credits"], opts, result)
	buildKeywords(tables["keywords"], result)

	bridge := buildBridge(tables["links"], result)
	aggregateRatings(tables["ratings"], bridge, result)

	return result, nil
}

// normalizeName canonicalizes a dimension name for dedupe: lower-cased with
// collapsed whitespace. The first-seen spelling is what gets persisted.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func f64ptr(v float64) *float64 { return &v }

func i64ptr(v int64) *int64 { return &v }
