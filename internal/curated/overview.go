package curated

import (
	"strings"

	"marquee/internal/model"
)

// Options carries the curated-layer thresholds.
type Options struct {
	MinRatingCount    int
	TopCompanies      int
	TopKeywords       int
	CoActorMinRatings int
	CoActorMaxOrder   int
	CoActorTopPairs   int
}

// Tables is the processed-layer input of the curated builder.
type Tables struct {
	Movies         []model.Movie
	GenreBridges   []model.GenreBridge
	CompanyBridges []model.CompanyBridge
	KeywordBridges []model.KeywordBridge
	Cast           []model.CastRelation
	RatingFacts    []model.RatingFact
}

// BuildOverview joins the movie dimension against rating facts and the
// bridge-derived lists into one row per movie, in dimension order.
//
// CuratedRating falls back to the catalog vote average for movies below the
// rating floor, so sparsely rated titles still carry a usable score.
func BuildOverview(tables Tables, opts Options) []model.MovieOverview {
	facts := factsByMovie(tables.RatingFacts)
	genreLists := joinLists(genrePairs(tables.GenreBridges), 0)
	companyLists := joinLists(companyPairs(tables.CompanyBridges), opts.TopCompanies)
	keywordLists := joinLists(keywordPairs(tables.KeywordBridges), opts.TopKeywords)

	overviews := make([]model.MovieOverview, 0, len(tables.Movies))
	for _, movie := range tables.Movies {
		overview := model.MovieOverview{
			MovieID:          movie.ID,
			Title:            movie.Title,
			ReleaseYear:      movie.ReleaseYear,
			OriginalLanguage: movie.OriginalLanguage,
			Status:           movie.Status,
			Budget:           movie.Budget,
			Revenue:          movie.Revenue,
			Runtime:          movie.Runtime,
			Popularity:       movie.Popularity,
			VoteAverage:      movie.VoteAverage,
			VoteCount:        movie.VoteCount,
			Profit:           movie.Profit,
			ROI:              movie.ROI,
			GenreList:        genreLists[movie.ID],
			TopCompanies:     companyLists[movie.ID],
			KeywordList:      keywordLists[movie.ID],
		}
		if fact, ok := facts[movie.ID]; ok {
			overview.AvgRating = fact.AvgRating
			overview.RatingCount = fact.RatingCount
		}
		if overview.RatingCount >= int64(opts.MinRatingCount) {
			overview.CuratedRating = overview.AvgRating
		} else {
			overview.CuratedRating = movie.VoteAverage
		}
		overviews = append(overviews, overview)
	}
	return overviews
}

func factsByMovie(facts []model.RatingFact) map[int64]model.RatingFact {
	byMovie := make(map[int64]model.RatingFact, len(facts))
	for _, fact := range facts {
		if _, dup := byMovie[fact.MovieID]; dup {
			continue
		}
		byMovie[fact.MovieID] = fact
	}
	return byMovie
}

// restrictedFacts keeps only facts clearing the rating floor, the subset the
// genre and year aggregates average over.
func restrictedFacts(facts []model.RatingFact, minCount int) map[int64]model.RatingFact {
	restricted := make(map[int64]model.RatingFact)
	for _, fact := range facts {
		if fact.RatingCount < int64(minCount) {
			continue
		}
		if _, dup := restricted[fact.MovieID]; dup {
			continue
		}
		restricted[fact.MovieID] = fact
	}
	return restricted
}

type listPair struct {
	movieID int64
	value   string
}

func genrePairs(bridges []model.GenreBridge) []listPair {
	pairs := make([]listPair, len(bridges))
	for i, bridge := range bridges {
		pairs[i] = listPair{bridge.MovieID, bridge.GenreName}
	}
	return pairs
}

func companyPairs(bridges []model.CompanyBridge) []listPair {
	pairs := make([]listPair, len(bridges))
	for i, bridge := range bridges {
		pairs[i] = listPair{bridge.MovieID, bridge.CompanyName}
	}
	return pairs
}

func keywordPairs(bridges []model.KeywordBridge) []listPair {
	pairs := make([]listPair, len(bridges))
	for i, bridge := range bridges {
		pairs[i] = listPair{bridge.MovieID, bridge.KeywordName}
	}
	return pairs
}

// joinLists collapses bridge pairs into a comma-joined list per movie,
// deduplicated in first-seen order and truncated at topN when positive.
func joinLists(pairs []listPair, topN int) map[int64]string {
	values := make(map[int64][]string)
	seen := make(map[int64]map[string]struct{})
	for _, pair := range pairs {
		if pair.value == "" {
			continue
		}
		if topN > 0 && len(values[pair.movieID]) >= topN {
			continue
		}
		if seen[pair.movieID] == nil {
			seen[pair.movieID] = make(map[string]struct{})
		}
		if _, dup := seen[pair.movieID][pair.value]; dup {
			continue
		}
		seen[pair.movieID][pair.value] = struct{}{}
		values[pair.movieID] = append(values[pair.movieID], pair.value)
	}

	joined := make(map[int64]string, len(values))
	for movieID, list := range values {
		joined[movieID] = strings.Join(list, ", ")
	}
	return joined
}
