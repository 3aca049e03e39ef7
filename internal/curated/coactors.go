package curated

import (
	"sort"

	"marquee/internal/model"
)

type pairKey struct {
	a, b int64
}

// BuildCoActorPairs counts unordered pairs of persons sharing a cast credit
// on well-rated movies. Eligible credits sit on a movie whose rating count
// clears the floor and carry a billing order within the prominence cutoff;
// credits without a billing order are excluded. Pairs are canonical (smaller
// person ID first) and the top-K come back sorted by shared count descending,
// ties by IDs ascending.
func BuildCoActorPairs(tables Tables, opts Options) []model.CoActorPair {
	eligible := make(map[int64]struct{})
	for _, fact := range tables.RatingFacts {
		if fact.RatingCount >= int64(opts.CoActorMinRatings) {
			eligible[fact.MovieID] = struct{}{}
		}
	}

	casts := make(map[int64][]model.CastRelation)
	seen := make(map[int64]map[int64]struct{})
	names := make(map[int64]string)
	for _, relation := range tables.Cast {
		if _, ok := eligible[relation.MovieID]; !ok {
			continue
		}
		if relation.CastOrder == nil || *relation.CastOrder > int64(opts.CoActorMaxOrder) {
			continue
		}
		if seen[relation.MovieID] == nil {
			seen[relation.MovieID] = make(map[int64]struct{})
		}
		if _, dup := seen[relation.MovieID][relation.PersonID]; dup {
			continue
		}
		seen[relation.MovieID][relation.PersonID] = struct{}{}
		casts[relation.MovieID] = append(casts[relation.MovieID], relation)
		if _, ok := names[relation.PersonID]; !ok {
			names[relation.PersonID] = relation.PersonName
		}
	}

	counts := make(map[pairKey]int64)
	for _, cast := range casts {
		for i := 0; i < len(cast); i++ {
			for j := i + 1; j < len(cast); j++ {
				a, b := cast[i].PersonID, cast[j].PersonID
				if a > b {
					a, b = b, a
				}
				counts[pairKey{a, b}]++
			}
		}
	}

	pairs := make([]model.CoActorPair, 0, len(counts))
	for key, count := range counts {
		pairs = append(pairs, model.CoActorPair{
			Actor1ID:     key.a,
			Actor1:       names[key.a],
			Actor2ID:     key.b,
			Actor2:       names[key.b],
			SharedMovies: count,
		})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].SharedMovies != pairs[j].SharedMovies {
			return pairs[i].SharedMovies > pairs[j].SharedMovies
		}
		if pairs[i].Actor1ID != pairs[j].Actor1ID {
			return pairs[i].Actor1ID < pairs[j].Actor1ID
		}
		return pairs[i].Actor2ID < pairs[j].Actor2ID
	})

	if opts.CoActorTopPairs > 0 && len(pairs) > opts.CoActorTopPairs {
		pairs = pairs[:opts.CoActorTopPairs]
	}
	return pairs
}
