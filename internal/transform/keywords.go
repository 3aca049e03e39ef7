package transform

import (
	"marquee/internal/model"
	"marquee/internal/rawio"
)

// buildKeywords fills dim_keyword and bridge_movie_keyword.
func buildKeywords(table *rawio.Table, result *Result) {
	keywordDim := newNameDim()

	for _, row := range table.Rows {
		movieID, ok := table.Int64Cell(row, "id")
		if !ok {
			result.Anomalies.KeywordRowsDropped++
			continue
		}
		for _, name := range parseNames(table.Cell(row, "keywords")) {
			canonical := keywordDim.add(name)
			result.KeywordBridges = append(result.KeywordBridges, model.KeywordBridge{MovieID: movieID, KeywordName: canonical})
		}
	}

	result.Keywords = keywordDim.names
}
