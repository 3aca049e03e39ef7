package transform

import (
	"sort"
	"strings"

	"marquee/internal/model"
	"marquee/internal/nested"
	"marquee/internal/rawio"
)

// buildCredits fills the cast, crew, and director bridges plus dim_person.
// Cast lists are sorted by billing order and capped; records without a
// numeric person ID cannot join anything downstream and are dropped.
func buildCredits(table *rawio.Table, opts Options, result *Result) {
	personDim := newPersonDim()

	for _, row := range table.Rows {
		movieID, ok := table.Int64Cell(row, "id")
		if !ok {
			result.Anomalies.CreditRowsDropped++
			continue
		}

		cast := nested.ParseList(table.Cell(row, "cast"))
		sort.SliceStable(cast, func(i, j int) bool {
			return castOrderOf(cast[i]) < castOrderOf(cast[j])
		})
		if len(cast) > opts.MaxCastPerMovie {
			cast = cast[:opts.MaxCastPerMovie]
		}
		for _, member := range cast {
			personID, ok := member.Int64("id")
			if !ok {
				result.Anomalies.CastWithoutPersonID++
				continue
			}
			relation := model.CastRelation{
				MovieID:    movieID,
				PersonID:   personID,
				PersonName: member.String("name"),
				Character:  member.String("character"),
			}
			if order, ok := member.Int64("order"); ok {
				relation.CastOrder = i64ptr(order)
			}
			result.Cast = append(result.Cast, relation)
			personDim.add(personID, relation.PersonName)
		}

		for _, member := range nested.ParseList(table.Cell(row, "crew")) {
			personID, ok := member.Int64("id")
			if !ok {
				result.Anomalies.CrewWithoutPersonID++
				continue
			}
			relation := model.CrewRelation{
				MovieID:    movieID,
				PersonID:   personID,
				PersonName: member.String("name"),
				Job:        member.String("job"),
				Department: member.String("department"),
			}
			result.Crew = append(result.Crew, relation)
			personDim.add(personID, relation.PersonName)

			if strings.EqualFold(relation.Job, opts.DirectorJob) {
				result.Directors = append(result.Directors, model.DirectorRelation{
					MovieID:    movieID,
					PersonID:   personID,
					PersonName: relation.PersonName,
				})
			}
		}
	}

	result.Persons = personDim.persons
}

// castOrderOf mirrors the source behavior of treating a missing billing order
// as zero for sorting purposes.
func castOrderOf(record nested.Record) int64 {
	if order, ok := record.Int64("order"); ok {
		return order
	}
	return 0
}

type personDim struct {
	persons []model.Person
	seen    map[int64]struct{}
}

func newPersonDim() *personDim {
	return &personDim{seen: make(map[int64]struct{})}
}

func (d *personDim) add(id int64, name string) {
	if _, dup := d.seen[id]; dup {
		return
	}
	d.seen[id] = struct{}{}
	d.persons = append(d.persons, model.Person{ID: id, Name: name})
}
