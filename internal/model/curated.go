package model

// MovieOverview is one row of curated_movie_overview: the fully denormalized,
// dashboard-ready view of a movie.
//
// CuratedRating is the community average when the movie clears the rating
// floor and the catalog vote average otherwise.
type MovieOverview struct {
	MovieID          int64
	Title            string
	ReleaseYear      *int64
	OriginalLanguage string
	Status           string
	Budget           *float64
	Revenue          *float64
	Runtime          *float64
	Popularity       *float64
	VoteAverage      *float64
	VoteCount        *float64
	Profit           *float64
	ROI              *float64
	AvgRating        *float64
	RatingCount      int64
	CuratedRating    *float64
	GenreList        string
	TopCompanies     string
	KeywordList      string
}

// GenreStats is one row of curated_genre_stats.
type GenreStats struct {
	GenreName  string
	MovieCount int64
	AvgROI     *float64
	AvgRating  *float64
}

// YearTrend is one row of curated_year_trends.
type YearTrend struct {
	ReleaseYear  int64
	MovieCount   int64
	TotalRevenue float64
	MedianBudget *float64
	AvgRating    *float64
}

// CoActorPair is one row of graph_insights_top_coactors. Pairs are unordered:
// Actor1ID is always the smaller identifier.
type CoActorPair struct {
	Actor1ID     int64
	Actor1       string
	Actor2ID     int64
	Actor2       string
	SharedMovies int64
}
