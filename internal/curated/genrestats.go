package curated

import (
	"sort"

	"marquee/internal/model"
)

// BuildGenreStats aggregates the genre bridge against the movie dimension and
// the floor-restricted rating facts. A movie with N genres contributes to N
// groups. Rows come out sorted by genre name.
func BuildGenreStats(tables Tables, opts Options) []model.GenreStats {
	movies := make(map[int64]model.Movie, len(tables.Movies))
	for _, movie := range tables.Movies {
		movies[movie.ID] = movie
	}
	restricted := restrictedFacts(tables.RatingFacts, opts.MinRatingCount)

	type accumulator struct {
		movieIDs    map[int64]struct{}
		roiSum      float64
		roiCount    int64
		ratingSum   float64
		ratingCount int64
	}
	groups := make(map[string]*accumulator)

	for _, bridge := range tables.GenreBridges {
		acc := groups[bridge.GenreName]
		if acc == nil {
			acc = &accumulator{movieIDs: make(map[int64]struct{})}
			groups[bridge.GenreName] = acc
		}
		acc.movieIDs[bridge.MovieID] = struct{}{}

		if movie, ok := movies[bridge.MovieID]; ok && movie.ROI != nil {
			acc.roiSum += *movie.ROI
			acc.roiCount++
		}
		if fact, ok := restricted[bridge.MovieID]; ok && fact.AvgRating != nil {
			acc.ratingSum += *fact.AvgRating
			acc.ratingCount++
		}
	}

	stats := make([]model.GenreStats, 0, len(groups))
	for name, acc := range groups {
		row := model.GenreStats{
			GenreName:  name,
			MovieCount: int64(len(acc.movieIDs)),
		}
		if acc.roiCount > 0 {
			avg := acc.roiSum / float64(acc.roiCount)
			row.AvgROI = &avg
		}
		if acc.ratingCount > 0 {
			avg := acc.ratingSum / float64(acc.ratingCount)
			row.AvgRating = &avg
		}
		stats = append(stats, row)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].GenreName < stats[j].GenreName })
	return stats
}
