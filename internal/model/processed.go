package model

// Movie is one row of dim_movie, keyed by the catalog (TMDB-style) ID.
type Movie struct {
	ID               int64
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
}

// Person is one row of dim_person, keyed by the catalog person ID.
type Person struct {
	ID   int64
	Name string
}

// GenreBridge links a movie to a genre by name.
type GenreBridge struct {
	MovieID   int64
	GenreName string
}

// CompanyBridge links a movie to a production company by name.
type CompanyBridge struct {
	MovieID     int64
	CompanyName string
}

// KeywordBridge links a movie to a keyword by name.
type KeywordBridge struct {
	MovieID     int64
	KeywordName string
}

// CastRelation is one billing entry of bridge_movie_cast. CastOrder carries
// the source billing position and is nil when the source omitted it.
type CastRelation struct {
	MovieID    int64
	PersonID   int64
	PersonName string
	Character  string
	CastOrder  *int64
}

// CrewRelation is one row of bridge_movie_crew.
type CrewRelation struct {
	MovieID    int64
	PersonID   int64
	PersonName string
	Job        string
	Department string
}

// DirectorRelation is the crew subset whose job matches the configured
// director job.
type DirectorRelation struct {
	MovieID    int64
	PersonID   int64
	PersonName string
}

// RatingFact is one row of fact_movie_ratings_agg: community ratings
// aggregated per catalog movie. AvgRating is nil when RatingCount is zero.
type RatingFact struct {
	MovieID     int64
	AvgRating   *float64
	RatingCount int64
}
