package tablecsv

import (
	"fmt"

	"marquee/internal/model"
)

// Movies is the codec for dim_movie.
var Movies = Codec[model.Movie]{
	Name: "dim_movie",
	Header: []string{
		"movie_id", "title", "release_year", "original_language", "status",
		"budget", "revenue", "runtime", "popularity", "vote_average",
		"vote_count", "profit", "roi",
	},
	Encode: func(m model.Movie) []string {
		return []string{
			fmt.Sprintf("%d", m.ID),
			m.Title,
			formatInt64Ptr(m.ReleaseYear),
			m.OriginalLanguage,
			m.Status,
			formatFloatPtr(m.Budget),
			formatFloatPtr(m.Revenue),
			formatFloatPtr(m.Runtime),
			formatFloatPtr(m.Popularity),
			formatFloatPtr(m.VoteAverage),
			formatFloatPtr(m.VoteCount),
			formatFloatPtr(m.Profit),
			formatFloatPtr(m.ROI),
		}
	},
	Decode: func(record []string) (model.Movie, error) {
		var m model.Movie
		id, err := parseInt64(record[0])
		if err != nil {
			return m, fmt.Errorf("movie_id: %w", err)
		}
		m.ID = id
		m.Title = record[1]
		if m.ReleaseYear, err = parseInt64Ptr(record[2]); err != nil {
			return m, fmt.Errorf("release_year: %w", err)
		}
		m.OriginalLanguage = record[3]
		m.Status = record[4]
		if m.Budget, err = parseFloatPtr(record[5]); err != nil {
			return m, fmt.Errorf("budget: %w", err)
		}
		if m.Revenue, err = parseFloatPtr(record[6]); err != nil {
			return m, fmt.Errorf("revenue: %w", err)
		}
		if m.Runtime, err = parseFloatPtr(record[7]); err != nil {
			return m, fmt.Errorf("runtime: %w", err)
		}
		if m.Popularity, err = parseFloatPtr(record[8]); err != nil {
			return m, fmt.Errorf("popularity: %w", err)
		}
		if m.VoteAverage, err = parseFloatPtr(record[9]); err != nil {
			return m, fmt.Errorf("vote_average: %w", err)
		}
		if m.VoteCount, err = parseFloatPtr(record[10]); err != nil {
			return m, fmt.Errorf("vote_count: %w", err)
		}
		if m.Profit, err = parseFloatPtr(record[11]); err != nil {
			return m, fmt.Errorf("profit: %w", err)
		}
		if m.ROI, err = parseFloatPtr(record[12]); err != nil {
			return m, fmt.Errorf("roi: %w", err)
		}
		return m, nil
	},
}

// Persons is the codec for dim_person.
var Persons = Codec[model.Person]{
	Name:   "dim_person",
	Header: []string{"person_id", "name"},
	Encode: func(p model.Person) []string {
		return []string{fmt.Sprintf("%d", p.ID), p.Name}
	},
	Decode: func(record []string) (model.Person, error) {
		id, err := parseInt64(record[0])
		if err != nil {
			return model.Person{}, fmt.Errorf("person_id: %w", err)
		}
		return model.Person{ID: id, Name: record[1]}, nil
	},
}

// Genres is the codec for dim_genre.
var Genres = nameDimCodec("dim_genre", "genre_name")

// Companies is the codec for dim_company.
var Companies = nameDimCodec("dim_company", "company_name")

// Keywords is the codec for dim_keyword.
var Keywords = nameDimCodec("dim_keyword", "keyword_name")

func nameDimCodec(table, column string) Codec[string] {
	return Codec[string]{
		Name:   table,
		Header: []string{column},
		Encode: func(name string) []string { return []string{name} },
		Decode: func(record []string) (string, error) { return record[0], nil },
	}
}

// GenreBridges is the codec for bridge_movie_genre.
var GenreBridges = Codec[model.GenreBridge]{
	Name:   "bridge_movie_genre",
	Header: []string{"movie_id", "genre_name"},
	Encode: func(b model.GenreBridge) []string {
		return []string{fmt.Sprintf("%d", b.MovieID), b.GenreName}
	},
	Decode: func(record []string) (model.GenreBridge, error) {
		id, err := parseInt64(record[0])
		if err != nil {
			return model.GenreBridge{}, fmt.Errorf("movie_id: %w", err)
		}
		return model.GenreBridge{MovieID: id, GenreName: record[1]}, nil
	},
}

// CompanyBridges is the codec for bridge_movie_company.
var CompanyBridges = Codec[model.CompanyBridge]{
	Name:   "bridge_movie_company",
	Header: []string{"movie_id", "company_name"},
	Encode: func(b model.CompanyBridge) []string {
		return []string{fmt.Sprintf("%d", b.MovieID), b.CompanyName}
	},
	Decode: func(record []string) (model.CompanyBridge, error) {
		id, err := parseInt64(record[0])
		if err != nil {
			return model.CompanyBridge{}, fmt.Errorf("movie_id: %w", err)
		}
		return model.CompanyBridge{MovieID: id, CompanyName: record[1]}, nil
	},
}

// KeywordBridges is the codec for bridge_movie_keyword.
var KeywordBridges = Codec[model.KeywordBridge]{
	Name:   "bridge_movie_keyword",
	Header: []string{"movie_id", "keyword_name"},
	Encode: func(b model.KeywordBridge) []string {
		return []string{fmt.Sprintf("%d", b.MovieID), b.KeywordName}
	},
	Decode: func(record []string) (model.KeywordBridge, error) {
		id, err := parseInt64(record[0])
		if err != nil {
			return model.KeywordBridge{}, fmt.Errorf("movie_id: %w", err)
		}
		return model.KeywordBridge{MovieID: id, KeywordName: record[1]}, nil
	},
}

// CastRelations is the codec for bridge_movie_cast.
var CastRelations = Codec[model.CastRelation]{
	Name:   "bridge_movie_cast",
	Header: []string{"movie_id", "person_id", "person_name", "character", "cast_order"},
	Encode: func(c model.CastRelation) []string {
		return []string{
			fmt.Sprintf("%d", c.MovieID),
			fmt.Sprintf("%d", c.PersonID),
			c.PersonName,
			c.Character,
			formatInt64Ptr(c.CastOrder),
		}
	},
	Decode: func(record []string) (model.CastRelation, error) {
		var c model.CastRelation
		var err error
		if c.MovieID, err = parseInt64(record[0]); err != nil {
			return c, fmt.Errorf("movie_id: %w", err)
		}
		if c.PersonID, err = parseInt64(record[1]); err != nil {
			return c, fmt.Errorf("person_id: %w", err)
		}
		c.PersonName = record[2]
		c.Character = record[3]
		if c.CastOrder, err = parseInt64Ptr(record[4]); err != nil {
			return c, fmt.Errorf("cast_order: %w", err)
		}
		return c, nil
	},
}

// CrewRelations is the codec for bridge_movie_crew.
var CrewRelations = Codec[model.CrewRelation]{
	Name:   "bridge_movie_crew",
	Header: []string{"movie_id", "person_id", "person_name", "job", "department"},
	Encode: func(c model.CrewRelation) []string {
		return []string{
			fmt.Sprintf("%d", c.MovieID),
			fmt.Sprintf("%d", c.PersonID),
			c.PersonName,
			c.Job,
			c.Department,
		}
	},
	Decode: func(record []string) (model.CrewRelation, error) {
		var c model.CrewRelation
		var err error
		if c.MovieID, err = parseInt64(record[0]); err != nil {
			return c, fmt.Errorf("movie_id: %w", err)
		}
		if c.PersonID, err = parseInt64(record[1]); err != nil {
			return c, fmt.Errorf("person_id: %w", err)
		}
		c.PersonName = record[2]
		c.Job = record[3]
		c.Department = record[4]
		return c, nil
	},
}

// DirectorRelations is the codec for bridge_movie_director.
var DirectorRelations = Codec[model.DirectorRelation]{
	Name:   "bridge_movie_director",
	Header: []string{"movie_id", "person_id", "person_name"},
	Encode: func(d model.DirectorRelation) []string {
		return []string{
			fmt.Sprintf("%d", d.MovieID),
			fmt.Sprintf("%d", d.PersonID),
			d.PersonName,
		}
	},
	Decode: func(record []string) (model.DirectorRelation, error) {
		var d model.DirectorRelation
		var err error
		if d.MovieID, err = parseInt64(record[0]); err != nil {
			return d, fmt.Errorf("movie_id: %w", err)
		}
		if d.PersonID, err = parseInt64(record[1]); err != nil {
			return d, fmt.Errorf("person_id: %w", err)
		}
		d.PersonName = record[2]
		return d, nil
	},
}

// RatingFacts is the codec for fact_movie_ratings_agg.
var RatingFacts = Codec[model.RatingFact]{
	Name:   "fact_movie_ratings_agg",
	Header: []string{"movie_id", "avg_rating", "rating_count"},
	Encode: func(f model.RatingFact) []string {
		return []string{
			fmt.Sprintf("%d", f.MovieID),
			formatFloatPtr(f.AvgRating),
			fmt.Sprintf("%d", f.RatingCount),
		}
	},
	Decode: func(record []string) (model.RatingFact, error) {
		var f model.RatingFact
		var err error
		if f.MovieID, err = parseInt64(record[0]); err != nil {
			return f, fmt.Errorf("movie_id: %w", err)
		}
		if f.AvgRating, err = parseFloatPtr(record[1]); err != nil {
			return f, fmt.Errorf("avg_rating: %w", err)
		}
		if f.RatingCount, err = parseInt64(record[2]); err != nil {
			return f, fmt.Errorf("rating_count: %w", err)
		}
		return f, nil
	},
}

// Overviews is the codec for curated_movie_overview.
var Overviews = Codec[model.MovieOverview]{
	Name: "curated_movie_overview",
	Header: []string{
		"movie_id", "title", "release_year", "original_language", "status",
		"budget", "revenue", "runtime", "popularity", "vote_average",
		"vote_count", "profit", "roi", "avg_rating", "rating_count",
		"avg_rating_curated", "genre_list", "top_companies", "keyword_list",
	},
	Encode: func(o model.MovieOverview) []string {
		return []string{
			fmt.Sprintf("%d", o.MovieID),
			o.Title,
			formatInt64Ptr(o.ReleaseYear),
			o.OriginalLanguage,
			o.Status,
			formatFloatPtr(o.Budget),
			formatFloatPtr(o.Revenue),
			formatFloatPtr(o.Runtime),
			formatFloatPtr(o.Popularity),
			formatFloatPtr(o.VoteAverage),
			formatFloatPtr(o.VoteCount),
			formatFloatPtr(o.Profit),
			formatFloatPtr(o.ROI),
			formatFloatPtr(o.AvgRating),
			fmt.Sprintf("%d", o.RatingCount),
			formatFloatPtr(o.CuratedRating),
			o.GenreList,
			o.TopCompanies,
			o.KeywordList,
		}
	},
	Decode: func(record []string) (model.MovieOverview, error) {
		var o model.MovieOverview
		var err error
		if o.MovieID, err = parseInt64(record[0]); err != nil {
			return o, fmt.Errorf("movie_id: %w", err)
		}
		o.Title = record[1]
		if o.ReleaseYear, err = parseInt64Ptr(record[2]); err != nil {
			return o, fmt.Errorf("release_year: %w", err)
		}
		o.OriginalLanguage = record[3]
		o.Status = record[4]
		if o.Budget, err = parseFloatPtr(record[5]); err != nil {
			return o, fmt.Errorf("budget: %w", err)
		}
		if o.Revenue, err = parseFloatPtr(record[6]); err != nil {
			return o, fmt.Errorf("revenue: %w", err)
		}
		if o.Runtime, err = parseFloatPtr(record[7]); err != nil {
			return o, fmt.Errorf("runtime: %w", err)
		}
		if o.Popularity, err = parseFloatPtr(record[8]); err != nil {
			return o, fmt.Errorf("popularity: %w", err)
		}
		if o.VoteAverage, err = parseFloatPtr(record[9]); err != nil {
			return o, fmt.Errorf("vote_average: %w", err)
		}
		if o.VoteCount, err = parseFloatPtr(record[10]); err != nil {
			return o, fmt.Errorf("vote_count: %w", err)
		}
		if o.Profit, err = parseFloatPtr(record[11]); err != nil {
			return o, fmt.Errorf("profit: %w", err)
		}
		if o.ROI, err = parseFloatPtr(record[12]); err != nil {
			return o, fmt.Errorf("roi: %w", err)
		}
		if o.AvgRating, err = parseFloatPtr(record[13]); err != nil {
			return o, fmt.Errorf("avg_rating: %w", err)
		}
		if o.RatingCount, err = parseInt64(record[14]); err != nil {
			return o, fmt.Errorf("rating_count: %w", err)
		}
		if o.CuratedRating, err = parseFloatPtr(record[15]); err != nil {
			return o, fmt.Errorf("avg_rating_curated: %w", err)
		}
		o.GenreList = record[16]
		o.TopCompanies = record[17]
		o.KeywordList = record[18]
		return o, nil
	},
}

// GenreStats is the codec for curated_genre_stats.
var GenreStats = Codec[model.GenreStats]{
	Name:   "curated_genre_stats",
	Header: []string{"genre_name", "movie_count", "avg_roi", "avg_rating"},
	Encode: func(g model.GenreStats) []string {
		return []string{
			g.GenreName,
			fmt.Sprintf("%d", g.MovieCount),
			formatFloatPtr(g.AvgROI),
			formatFloatPtr(g.AvgRating),
		}
	},
	Decode: func(record []string) (model.GenreStats, error) {
		var g model.GenreStats
		var err error
		g.GenreName = record[0]
		if g.MovieCount, err = parseInt64(record[1]); err != nil {
			return g, fmt.Errorf("movie_count: %w", err)
		}
		if g.AvgROI, err = parseFloatPtr(record[2]); err != nil {
			return g, fmt.Errorf("avg_roi: %w", err)
		}
		if g.AvgRating, err = parseFloatPtr(record[3]); err != nil {
			return g, fmt.Errorf("avg_rating: %w", err)
		}
		return g, nil
	},
}

// YearTrends is the codec for curated_year_trends.
var YearTrends = Codec[model.YearTrend]{
	Name:   "curated_year_trends",
	Header: []string{"release_year", "movie_count", "total_revenue", "median_budget", "avg_rating"},
	Encode: func(y model.YearTrend) []string {
		return []string{
			fmt.Sprintf("%d", y.ReleaseYear),
			fmt.Sprintf("%d", y.MovieCount),
			formatFloat(y.TotalRevenue),
			formatFloatPtr(y.MedianBudget),
			formatFloatPtr(y.AvgRating),
		}
	},
	Decode: func(record []string) (model.YearTrend, error) {
		var y model.YearTrend
		var err error
		if y.ReleaseYear, err = parseInt64(record[0]); err != nil {
			return y, fmt.Errorf("release_year: %w", err)
		}
		if y.MovieCount, err = parseInt64(record[1]); err != nil {
			return y, fmt.Errorf("movie_count: %w", err)
		}
		if y.TotalRevenue, err = parseFloat(record[2]); err != nil {
			return y, fmt.Errorf("total_revenue: %w", err)
		}
		if y.MedianBudget, err = parseFloatPtr(record[3]); err != nil {
			return y, fmt.Errorf("median_budget: %w", err)
		}
		if y.AvgRating, err = parseFloatPtr(record[4]); err != nil {
			return y, fmt.Errorf("avg_rating: %w", err)
		}
		return y, nil
	},
}

// CoActorPairs is the codec for graph_insights_top_coactors.
var CoActorPairs = Codec[model.CoActorPair]{
	Name:   "graph_insights_top_coactors",
	Header: []string{"actor_1_id", "actor_1", "actor_2_id", "actor_2", "shared_movies_count"},
	Encode: func(p model.CoActorPair) []string {
		return []string{
			fmt.Sprintf("%d", p.Actor1ID),
			p.Actor1,
			fmt.Sprintf("%d", p.Actor2ID),
			p.Actor2,
			fmt.Sprintf("%d", p.SharedMovies),
		}
	},
	Decode: func(record []string) (model.CoActorPair, error) {
		var p model.CoActorPair
		var err error
		if p.Actor1ID, err = parseInt64(record[0]); err != nil {
			return p, fmt.Errorf("actor_1_id: %w", err)
		}
		p.Actor1 = record[1]
		if p.Actor2ID, err = parseInt64(record[2]); err != nil {
			return p, fmt.Errorf("actor_2_id: %w", err)
		}
		p.Actor2 = record[3]
		if p.SharedMovies, err = parseInt64(record[4]); err != nil {
			return p, fmt.Errorf("shared_movies_count: %w", err)
		}
		return p, nil
	},
}
