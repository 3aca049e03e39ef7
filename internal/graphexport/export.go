package graphexport

import (
	"strconv"

	"marquee/internal/model"
)

// Tables is the processed-layer input of the graph exporter.
type Tables struct {
	Movies         []model.Movie
	Persons        []model.Person
	Genres         []string
	Companies      []string
	Keywords       []string
	GenreBridges   []model.GenreBridge
	CompanyBridges []model.CompanyBridge
	KeywordBridges []model.KeywordBridge
	Cast           []model.CastRelation
	Directors      []model.DirectorRelation
	RatingFacts    []model.RatingFact
}

// File is one loader CSV: a header and pre-rendered string rows.
type File struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Export renders every node and relationship file. Relationship rows whose
// endpoints are absent from the node sets are dropped, and endpoint-only
// relationships are deduplicated, so the loader never sees a dangling or
// doubled edge.
type Export struct {
	NodesMovie   File
	NodesPerson  File
	NodesGenre   File
	NodesKeyword File
	NodesCompany File

	RelActedIn    File
	RelDirected   File
	RelInGenre    File
	RelHasKeyword File
	RelProduced   File
}

// Build renders the export from the processed tables.
func Build(tables Tables) Export {
	facts := make(map[int64]model.RatingFact, len(tables.RatingFacts))
	for _, fact := range tables.RatingFacts {
		facts[fact.MovieID] = fact
	}

	movieIDs := make(map[int64]struct{}, len(tables.Movies))
	nodesMovie := File{
		Name:   "nodes_movie",
		Header: []string{"movie_id:ID(Movie)", "title", "release_year", "budget", "revenue", "avg_rating", "rating_count"},
	}
	for _, movie := range tables.Movies {
		if _, dup := movieIDs[movie.ID]; dup {
			continue
		}
		movieIDs[movie.ID] = struct{}{}
		row := []string{
			strconv.FormatInt(movie.ID, 10),
			movie.Title,
			int64Cell(movie.ReleaseYear),
			floatCell(movie.Budget),
			floatCell(movie.Revenue),
			"",
			"",
		}
		if fact, ok := facts[movie.ID]; ok {
			row[5] = floatCell(fact.AvgRating)
			row[6] = strconv.FormatInt(fact.RatingCount, 10)
		}
		nodesMovie.Rows = append(nodesMovie.Rows, row)
	}

	personIDs := make(map[int64]struct{}, len(tables.Persons))
	nodesPerson := File{Name: "nodes_person", Header: []string{"person_id:ID(Person)", "name"}}
	for _, person := range tables.Persons {
		if _, dup := personIDs[person.ID]; dup {
			continue
		}
		personIDs[person.ID] = struct{}{}
		nodesPerson.Rows = append(nodesPerson.Rows, []string{strconv.FormatInt(person.ID, 10), person.Name})
	}

	genreNames := nameSet(tables.Genres)
	keywordNames := nameSet(tables.Keywords)
	companyNames := nameSet(tables.Companies)

	relActedIn := File{
		Name:   "rel_ACTED_IN",
		Header: []string{":START_ID(Person)", ":END_ID(Movie)", "character", "cast_order:int"},
	}
	for _, relation := range tables.Cast {
		if !hasID(personIDs, relation.PersonID) || !hasID(movieIDs, relation.MovieID) {
			continue
		}
		relActedIn.Rows = append(relActedIn.Rows, []string{
			strconv.FormatInt(relation.PersonID, 10),
			strconv.FormatInt(relation.MovieID, 10),
			relation.Character,
			int64Cell(relation.CastOrder),
		})
	}

	relDirected := File{Name: "rel_DIRECTED", Header: []string{":START_ID(Person)", ":END_ID(Movie)"}}
	seenDirected := make(map[[2]int64]struct{})
	for _, relation := range tables.Directors {
		if !hasID(personIDs, relation.PersonID) || !hasID(movieIDs, relation.MovieID) {
			continue
		}
		key := [2]int64{relation.PersonID, relation.MovieID}
		if _, dup := seenDirected[key]; dup {
			continue
		}
		seenDirected[key] = struct{}{}
		relDirected.Rows = append(relDirected.Rows, []string{
			strconv.FormatInt(relation.PersonID, 10),
			strconv.FormatInt(relation.MovieID, 10),
		})
	}

	relInGenre := File{Name: "rel_IN_GENRE", Header: []string{":START_ID(Movie)", ":END_ID(Genre)"}}
	seenGenre := make(map[string]struct{})
	for _, bridge := range tables.GenreBridges {
		if !hasID(movieIDs, bridge.MovieID) || !hasName(genreNames, bridge.GenreName) {
			continue
		}
		key := strconv.FormatInt(bridge.MovieID, 10) + "\x00" + bridge.GenreName
		if _, dup := seenGenre[key]; dup {
			continue
		}
		seenGenre[key] = struct{}{}
		relInGenre.Rows = append(relInGenre.Rows, []string{strconv.FormatInt(bridge.MovieID, 10), bridge.GenreName})
	}

	relHasKeyword := File{Name: "rel_HAS_KEYWORD", Header: []string{":START_ID(Movie)", ":END_ID(Keyword)"}}
	seenKeyword := make(map[string]struct{})
	for _, bridge := range tables.KeywordBridges {
		if !hasID(movieIDs, bridge.MovieID) || !hasName(keywordNames, bridge.KeywordName) {
			continue
		}
		key := strconv.FormatInt(bridge.MovieID, 10) + "\x00" + bridge.KeywordName
		if _, dup := seenKeyword[key]; dup {
			continue
		}
		seenKeyword[key] = struct{}{}
		relHasKeyword.Rows = append(relHasKeyword.Rows, []string{strconv.FormatInt(bridge.MovieID, 10), bridge.KeywordName})
	}

	relProduced := File{Name: "rel_PRODUCED", Header: []string{":START_ID(Company)", ":END_ID(Movie)"}}
	seenProduced := make(map[string]struct{})
	for _, bridge := range tables.CompanyBridges {
		if !hasID(movieIDs, bridge.MovieID) || !hasName(companyNames, bridge.CompanyName) {
			continue
		}
		key := bridge.CompanyName + "\x00" + strconv.FormatInt(bridge.MovieID, 10)
		if _, dup := seenProduced[key]; dup {
			continue
		}
		seenProduced[key] = struct{}{}
		relProduced.Rows = append(relProduced.Rows, []string{bridge.CompanyName, strconv.FormatInt(bridge.MovieID, 10)})
	}

	return Export{
		NodesMovie:    nodesMovie,
		NodesPerson:   nodesPerson,
		NodesGenre:    nameFile("nodes_genre", "name:ID(Genre)", tables.Genres),
		NodesKeyword:  nameFile("nodes_keyword", "name:ID(Keyword)", tables.Keywords),
		NodesCompany:  nameFile("nodes_company", "name:ID(Company)", tables.Companies),
		RelActedIn:    relActedIn,
		RelDirected:   relDirected,
		RelInGenre:    relInGenre,
		RelHasKeyword: relHasKeyword,
		RelProduced:   relProduced,
	}
}

// Files lists every CSV of the export in a fixed write order.
func (e Export) Files() []File {
	return []File{
		e.NodesMovie, e.NodesPerson, e.NodesGenre, e.NodesKeyword, e.NodesCompany,
		e.RelActedIn, e.RelDirected, e.RelInGenre, e.RelHasKeyword, e.RelProduced,
	}
}

func nameFile(name, header string, values []string) File {
	file := File{Name: name, Header: []string{header}}
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		file.Rows = append(file.Rows, []string{value})
	}
	return file
}

func nameSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

func hasID(set map[int64]struct{}, id int64) bool {
	_, ok := set[id]
	return ok
}

func hasName(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}

func int64Cell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
