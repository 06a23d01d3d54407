package store

import "github.com/cinegraph/cinegraph/internal/models"

// link resolves crew and principal identifiers into person lists on each
// title. It runs exactly once, after all five sources have loaded, and is
// the only mutation of titles after construction.
//
// Titles without a crew row keep nil director/writer lists; titles with a
// crew row get non-nil lists even when no identifier resolves. Likewise
// titles without principal rows keep a nil actor list while titles with
// any principal row get a non-nil one. Query predicates observe that
// distinction.
func (d *Dataset) link() {
	for tconst, title := range d.titles {
		if crew, ok := d.crews[tconst]; ok {
			title.Directors = d.resolvePeople(crew.Directors)
			title.Writers = d.resolvePeople(crew.Writers)
		}

		if principals, ok := d.principalsByTitle[tconst]; ok {
			actors := make([]*models.Person, 0, len(principals))

			for _, pr := range principals {
				if !pr.IsActingCredit() {
					continue
				}

				if p, ok := d.people[pr.Nconst]; ok {
					actors = append(actors, p)
				}
			}

			title.Actors = actors
		}
	}
}

// resolvePeople maps identifiers to loaded people, dropping unresolved
// identifiers silently.
func (d *Dataset) resolvePeople(nconsts []string) []*models.Person {
	people := make([]*models.Person, 0, len(nconsts))

	for _, nconst := range nconsts {
		if p, ok := d.people[nconst]; ok {
			people = append(people, p)
		}
	}

	return people
}
