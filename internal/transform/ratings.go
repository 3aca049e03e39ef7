package transform

import (
	"math"
	"sort"

	"marquee/internal/model"
	"marquee/internal/rawio"
)

// MappingLog reports how the community and catalog identifier spaces lined
// up. A large unmapped share is expected for this dataset, not an error.
type MappingLog struct {
	KeyColumn          string `json:"key_column"`
	MatchesCatalog     int    `json:"matches_catalog"`
	MissingInRatings   int    `json:"missing_in_ratings"`
	MissingInMovies    int    `json:"missing_in_movies"`
	UnmappedRatingRows int    `json:"unmapped_rating_rows"`
}

// identifierBridge maps community movie IDs onto catalog IDs.
type identifierBridge map[int64]int64

// buildBridge reads the links table into an identifier bridge. Rows without
// a catalog ID are dropped; duplicate community IDs keep the first entry.
func buildBridge(table *rawio.Table, result *Result) identifierBridge {
	bridge := make(identifierBridge, len(table.Rows))
	for _, row := range table.Rows {
		communityID, ok := table.Int64Cell(row, "movieId")
		if !ok {
			result.Anomalies.BridgeRowsDropped++
			continue
		}
		catalogID, ok := table.Int64Cell(row, "tmdbId")
		if !ok {
			result.Anomalies.BridgeRowsDropped++
			continue
		}
		if _, dup := bridge[communityID]; dup {
			result.Anomalies.DuplicateBridgeIDs++
			continue
		}
		bridge[communityID] = catalogID
	}
	return bridge
}

// aggregateRatings reconciles rating rows onto catalog IDs and aggregates
// mean (one decimal place) and count per movie. Facts are emitted in catalog
// ID order so runs are reproducible.
func aggregateRatings(table *rawio.Table, bridge identifierBridge, result *Result) {
	type accumulator struct {
		sum   float64
		count int64
	}
	totals := make(map[int64]*accumulator)

	unmapped := 0
	for _, row := range table.Rows {
		communityID, ok := table.Int64Cell(row, "movieId")
		if !ok {
			unmapped++
			continue
		}
		catalogID, ok := bridge[communityID]
		if !ok {
			unmapped++
			continue
		}
		rating, ok := table.Float64Cell(row, "rating")
		if !ok {
			continue
		}
		acc := totals[catalogID]
		if acc == nil {
			acc = &accumulator{}
			totals[catalogID] = acc
		}
		acc.sum += rating
		acc.count++
	}

	facts := make([]model.RatingFact, 0, len(totals))
	for catalogID, acc := range totals {
		avg := roundToTenth(acc.sum / float64(acc.count))
		facts = append(facts, model.RatingFact{
			MovieID:     catalogID,
			AvgRating:   f64ptr(avg),
			RatingCount: acc.count,
		})
	}
	sort.Slice(facts, func(i, j int) bool { return facts[i].MovieID < facts[j].MovieID })
	result.RatingFacts = facts

	result.Mapping = buildMappingLog(result.Movies, facts, unmapped)
}

func buildMappingLog(movies []model.Movie, facts []model.RatingFact, unmapped int) MappingLog {
	movieIDs := make(map[int64]struct{}, len(movies))
	for _, movie := range movies {
		movieIDs[movie.ID] = struct{}{}
	}
	factIDs := make(map[int64]struct{}, len(facts))
	for _, fact := range facts {
		factIDs[fact.MovieID] = struct{}{}
	}

	log := MappingLog{
		KeyColumn:          "movie_id (tmdbId via links)",
		UnmappedRatingRows: unmapped,
	}
	for id := range factIDs {
		if _, ok := movieIDs[id]; ok {
			log.MatchesCatalog++
		} else {
			log.MissingInMovies++
		}
	}
	for id := range movieIDs {
		if _, ok := factIDs[id]; !ok {
			log.MissingInRatings++
		}
	}
	return log
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
