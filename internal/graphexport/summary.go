package graphexport

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Summary renders the export summary markdown: node and relationship counts
// plus the five movies with the largest exported cast.
func (e Export) Summary() string {
	var b strings.Builder
	b.WriteString("# Neo4j Export Summary\n\n")

	b.WriteString("## Nodes\n")
	for _, entry := range []struct {
		label string
		file  File
	}{
		{"Movie", e.NodesMovie},
		{"Person", e.NodesPerson},
		{"Genre", e.NodesGenre},
		{"Keyword", e.NodesKeyword},
		{"Company", e.NodesCompany},
	} {
		fmt.Fprintf(&b, "- %s: %d\n", entry.label, len(entry.file.Rows))
	}

	b.WriteString("\n## Relationships\n")
	for _, entry := range []struct {
		label string
		file  File
	}{
		{"ACTED_IN", e.RelActedIn},
		{"DIRECTED", e.RelDirected},
		{"IN_GENRE", e.RelInGenre},
		{"HAS_KEYWORD", e.RelHasKeyword},
		{"PRODUCED", e.RelProduced},
	} {
		fmt.Fprintf(&b, "- %s: %d\n", entry.label, len(entry.file.Rows))
	}

	b.WriteString("\n## Top 5 Movies by Cast Count\n")
	for _, entry := range e.topCastMovies(5) {
		fmt.Fprintf(&b, "- movie_id %d: %d cast entries\n", entry.movieID, entry.count)
	}
	b.WriteString("\n")
	return b.String()
}

type castCount struct {
	movieID int64
	count   int
}

func (e Export) topCastMovies(n int) []castCount {
	counts := make(map[int64]int)
	for _, row := range e.RelActedIn.Rows {
		movieID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			continue
		}
		counts[movieID]++
	}
	entries := make([]castCount, 0, len(counts))
	for movieID, count := range counts {
		entries = append(entries, castCount{movieID, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].movieID < entries[j].movieID
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
