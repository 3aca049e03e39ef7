package curated

import (
	"sort"

	"marquee/internal/model"
)

// BuildYearTrends groups movies by release year: movie count, total revenue,
// median budget, and the average community rating over floor-restricted
// facts. Movies without a release year are excluded. Rows come out in year
// order.
func BuildYearTrends(tables Tables, opts Options) []model.YearTrend {
	restricted := restrictedFacts(tables.RatingFacts, opts.MinRatingCount)

	type accumulator struct {
		movieIDs    map[int64]struct{}
		revenue     float64
		budgets     []float64
		ratingSum   float64
		ratingCount int64
	}
	groups := make(map[int64]*accumulator)

	for _, movie := range tables.Movies {
		if movie.ReleaseYear == nil {
			continue
		}
		year := *movie.ReleaseYear
		acc := groups[year]
		if acc == nil {
			acc = &accumulator{movieIDs: make(map[int64]struct{})}
			groups[year] = acc
		}
		acc.movieIDs[movie.ID] = struct{}{}
		if movie.Revenue != nil {
			acc.revenue += *movie.Revenue
		}
		if movie.Budget != nil {
			acc.budgets = append(acc.budgets, *movie.Budget)
		}
		if fact, ok := restricted[movie.ID]; ok && fact.AvgRating != nil {
			acc.ratingSum += *fact.AvgRating
			acc.ratingCount++
		}
	}

	trends := make([]model.YearTrend, 0, len(groups))
	for year, acc := range groups {
		trend := model.YearTrend{
			ReleaseYear:  year,
			MovieCount:   int64(len(acc.movieIDs)),
			TotalRevenue: acc.revenue,
			MedianBudget: median(acc.budgets),
		}
		if acc.ratingCount > 0 {
			avg := acc.ratingSum / float64(acc.ratingCount)
			trend.AvgRating = &avg
		}
		trends = append(trends, trend)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].ReleaseYear < trends[j].ReleaseYear })
	return trends
}

// median returns the middle value of the sample, averaging the two middle
// values for even-sized samples, or nil for an empty one.
func median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	var m float64
	if len(sorted)%2 == 1 {
		m = sorted[mid]
	} else {
		m = (sorted[mid-1] + sorted[mid]) / 2
	}
	return &m
}
