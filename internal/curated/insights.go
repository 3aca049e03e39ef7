package curated

import (
	"fmt"
	"math"
	"sort"

	"marquee/internal/model"
)

// Insights is the deterministic dashboard summary written to insights.json.
type Insights struct {
	Overview    OverviewBlock    `json:"overview"`
	Trends      TrendsBlock      `json:"trends"`
	ROI         ROIBlock         `json:"roi"`
	Collab      CollabBlock      `json:"collab"`
	DataQuality DataQualityBlock `json:"data_quality"`
}

type OverviewBlock struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	KPIs     OverviewKPIs `json:"kpis"`
}

type OverviewKPIs struct {
	MoviesTotal      int      `json:"movies_total"`
	YearMin          *int64   `json:"year_min,omitempty"`
	YearMax          *int64   `json:"year_max,omitempty"`
	AvgRatingOverall *float64 `json:"avg_rating_overall,omitempty"`
}

type TrendsBlock struct {
	Intro string     `json:"intro"`
	KPIs  TrendsKPIs `json:"kpis"`
}

type TrendsKPIs struct {
	YearsCount      int    `json:"years_count"`
	TopYearByMovies *int64 `json:"top_year_by_movies,omitempty"`
}

type ROIBlock struct {
	Intro            string   `json:"intro"`
	DataQualityNotes []string `json:"data_quality_notes"`
	KPIs             ROIKPIs  `json:"kpis"`
}

type ROIKPIs struct {
	GenresCount   int    `json:"genres_count"`
	TopGenreByROI string `json:"top_genre_by_roi,omitempty"`
}

type CollabBlock struct {
	Intro           string        `json:"intro"`
	KPIs            CollabKPIs    `json:"kpis"`
	TopPairsPreview []PairPreview `json:"top_pairs_preview"`
}

type CollabKPIs struct {
	CoActorPairs int          `json:"coactor_pairs"`
	TopPair      *PairPreview `json:"top_pair,omitempty"`
}

type PairPreview struct {
	Actor1       string `json:"actor_1"`
	Actor2       string `json:"actor_2"`
	SharedMovies int64  `json:"shared_movies_count"`
}

type DataQualityBlock struct {
	Tables map[string]TableQuality `json:"tables"`
}

// TableQuality summarizes one curated table: shape, the worst missing-value
// columns, and the column types.
type TableQuality struct {
	Rows       int                `json:"rows"`
	Cols       int                `json:"cols"`
	MissingPct map[string]float64 `json:"missing_pct"`
	DTypes     map[string]string  `json:"dtypes"`
}

// BuildInsights derives the dashboard summary from the curated tables.
func BuildInsights(overviews []model.MovieOverview, trends []model.YearTrend, stats []model.GenreStats, pairs []model.CoActorPair) Insights {
	return Insights{
		Overview:    buildOverviewBlock(overviews),
		Trends:      buildTrendsBlock(trends),
		ROI:         buildROIBlock(overviews, stats),
		Collab:      buildCollabBlock(pairs),
		DataQuality: buildDataQualityBlock(overviews, trends, stats, pairs),
	}
}

func buildOverviewBlock(overviews []model.MovieOverview) OverviewBlock {
	block := OverviewBlock{Title: "Movie & Collaboration Insights"}
	subtitle := "Data source: Kaggle The Movies Dataset."

	block.KPIs.MoviesTotal = len(overviews)
	if len(overviews) > 0 {
		subtitle += fmt.Sprintf(" Curated movies: %d.", len(overviews))
	}

	var yearMin, yearMax *int64
	var ratingSum float64
	var ratingCount int64
	for _, overview := range overviews {
		if overview.ReleaseYear != nil {
			year := *overview.ReleaseYear
			if yearMin == nil || year < *yearMin {
				yearMin = ptrInt64(year)
			}
			if yearMax == nil || year > *yearMax {
				yearMax = ptrInt64(year)
			}
		}
		if overview.AvgRating != nil {
			ratingSum += *overview.AvgRating
			ratingCount++
		}
	}
	if yearMin != nil {
		block.KPIs.YearMin = yearMin
		block.KPIs.YearMax = yearMax
		subtitle += fmt.Sprintf(" Period: %d-%d.", *yearMin, *yearMax)
	}
	if ratingCount > 0 {
		avg := roundTo(ratingSum/float64(ratingCount), 3)
		block.KPIs.AvgRatingOverall = &avg
	}

	block.Subtitle = subtitle
	return block
}

func buildTrendsBlock(trends []model.YearTrend) TrendsBlock {
	block := TrendsBlock{Intro: "Time series of movies and key metrics by release year."}
	block.KPIs.YearsCount = len(trends)

	var topYear *int64
	var topCount int64
	for _, trend := range trends {
		if topYear == nil || trend.MovieCount > topCount {
			topYear = ptrInt64(trend.ReleaseYear)
			topCount = trend.MovieCount
		}
	}
	block.KPIs.TopYearByMovies = topYear
	return block
}

func buildROIBlock(overviews []model.MovieOverview, stats []model.GenreStats) ROIBlock {
	block := ROIBlock{
		Intro:            "ROI & Success: compare budget, revenue, and ROI across genres.",
		DataQualityNotes: []string{},
	}

	block.KPIs.GenresCount = len(stats)
	var topGenre string
	var topROI float64
	for _, row := range stats {
		if row.AvgROI == nil {
			continue
		}
		if topGenre == "" || *row.AvgROI > topROI {
			topGenre = row.GenreName
			topROI = *row.AvgROI
		}
	}
	block.KPIs.TopGenreByROI = topGenre

	if len(overviews) > 0 {
		missingOrZero := 0
		validBudgets := 0
		smallBudgets := 0
		for _, overview := range overviews {
			if overview.Budget == nil || *overview.Budget <= 0 {
				missingOrZero++
			}
			if overview.Budget != nil {
				validBudgets++
				if *overview.Budget < 100000 {
					smallBudgets++
				}
			}
		}
		if float64(missingOrZero)/float64(len(overviews)) > 0.05 {
			block.DataQualityNotes = append(block.DataQualityNotes,
				"Note: many budgets are missing/<=0, ROI can be distorted.")
		}
		if validBudgets > 0 && float64(smallBudgets)/float64(validBudgets) > 0.05 {
			block.DataQualityNotes = append(block.DataQualityNotes,
				"Note: very small budgets (<100k) can create extreme ROI outliers.")
		}
	}
	return block
}

func buildCollabBlock(pairs []model.CoActorPair) CollabBlock {
	block := CollabBlock{TopPairsPreview: []PairPreview{}}
	block.KPIs.CoActorPairs = len(pairs)

	if len(pairs) == 0 {
		block.Intro = "No co-actor pairs cleared the rating and billing thresholds."
		return block
	}

	block.Intro = fmt.Sprintf("Top %d co-actor pairs based on shared movies (shared_movies_count).", len(pairs))
	top := previewOf(pairs[0])
	block.KPIs.TopPair = &top
	for i, pair := range pairs {
		if i >= 10 {
			break
		}
		block.TopPairsPreview = append(block.TopPairsPreview, previewOf(pair))
	}
	return block
}

func previewOf(pair model.CoActorPair) PairPreview {
	return PairPreview{Actor1: pair.Actor1, Actor2: pair.Actor2, SharedMovies: pair.SharedMovies}
}

func buildDataQualityBlock(overviews []model.MovieOverview, trends []model.YearTrend, stats []model.GenreStats, pairs []model.CoActorPair) DataQualityBlock {
	block := DataQualityBlock{Tables: map[string]TableQuality{
		"curated_movie_overview": overviewQuality(overviews),
		"curated_year_trends":    trendsQuality(trends),
		"curated_genre_stats":    genreStatsQuality(stats),
	}}
	if len(pairs) > 0 {
		block.Tables["graph_insights_top_coactors"] = TableQuality{
			Rows:       len(pairs),
			Cols:       5,
			MissingPct: map[string]float64{},
			DTypes: map[string]string{
				"actor_1_id": "int64", "actor_1": "string",
				"actor_2_id": "int64", "actor_2": "string",
				"shared_movies_count": "int64",
			},
		}
	}
	return block
}

// columnProbe reports one column: its type and whether the cell of a given
// row is missing.
type columnProbe struct {
	name    string
	dtype   string
	missing func(i int) bool
}

func tableQuality(rows int, probes []columnProbe) TableQuality {
	quality := TableQuality{
		Rows:       rows,
		Cols:       len(probes),
		MissingPct: make(map[string]float64),
		DTypes:     make(map[string]string, len(probes)),
	}

	type missingCol struct {
		name string
		pct  float64
	}
	var missing []missingCol
	for _, probe := range probes {
		quality.DTypes[probe.name] = probe.dtype
		if rows == 0 || probe.missing == nil {
			continue
		}
		count := 0
		for i := 0; i < rows; i++ {
			if probe.missing(i) {
				count++
			}
		}
		if count > 0 {
			missing = append(missing, missingCol{probe.name, roundTo(float64(count)/float64(rows)*100, 2)})
		}
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].pct != missing[j].pct {
			return missing[i].pct > missing[j].pct
		}
		return missing[i].name < missing[j].name
	})
	if len(missing) > 10 {
		missing = missing[:10]
	}
	for _, col := range missing {
		quality.MissingPct[col.name] = col.pct
	}
	return quality
}

func overviewQuality(overviews []model.MovieOverview) TableQuality {
	probes := []columnProbe{
		{"movie_id", "int64", nil},
		{"title", "string", func(i int) bool { return overviews[i].Title == "" }},
		{"release_year", "int64", func(i int) bool { return overviews[i].ReleaseYear == nil }},
		{"original_language", "string", func(i int) bool { return overviews[i].OriginalLanguage == "" }},
		{"status", "string", func(i int) bool { return overviews[i].Status == "" }},
		{"budget", "float64", func(i int) bool { return overviews[i].Budget == nil }},
		{"revenue", "float64", func(i int) bool { return overviews[i].Revenue == nil }},
		{"runtime", "float64", func(i int) bool { return overviews[i].Runtime == nil }},
		{"popularity", "float64", func(i int) bool { return overviews[i].Popularity == nil }},
		{"vote_average", "float64", func(i int) bool { return overviews[i].VoteAverage == nil }},
		{"vote_count", "float64", func(i int) bool { return overviews[i].VoteCount == nil }},
		{"profit", "float64", func(i int) bool { return overviews[i].Profit == nil }},
		{"roi", "float64", func(i int) bool { return overviews[i].ROI == nil }},
		{"avg_rating", "float64", func(i int) bool { return overviews[i].AvgRating == nil }},
		{"rating_count", "int64", nil},
		{"avg_rating_curated", "float64", func(i int) bool { return overviews[i].CuratedRating == nil }},
		{"genre_list", "string", func(i int) bool { return overviews[i].GenreList == "" }},
		{"top_companies", "string", func(i int) bool { return overviews[i].TopCompanies == "" }},
		{"keyword_list", "string", func(i int) bool { return overviews[i].KeywordList == "" }},
	}
	return tableQuality(len(overviews), probes)
}

func trendsQuality(trends []model.YearTrend) TableQuality {
	probes := []columnProbe{
		{"release_year", "int64", nil},
		{"movie_count", "int64", nil},
		{"total_revenue", "float64", nil},
		{"median_budget", "float64", func(i int) bool { return trends[i].MedianBudget == nil }},
		{"avg_rating", "float64", func(i int) bool { return trends[i].AvgRating == nil }},
	}
	return tableQuality(len(trends), probes)
}

func genreStatsQuality(stats []model.GenreStats) TableQuality {
	probes := []columnProbe{
		{"genre_name", "string", nil},
		{"movie_count", "int64", nil},
		{"avg_roi", "float64", func(i int) bool { return stats[i].AvgROI == nil }},
		{"avg_rating", "float64", func(i int) bool { return stats[i].AvgRating == nil }},
	}
	return tableQuality(len(stats), probes)
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}

func ptrInt64(v int64) *int64 { return &v }
