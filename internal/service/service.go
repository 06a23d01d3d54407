// Package service implements the read-only query operations over the
// linked in-memory dataset.
//
// Every operation validates its arguments first, then checks dataset
// readiness, then runs a bounded synchronous computation over the maps.
// Nothing here mutates state, so all operations are safe to call
// concurrently once loading has completed.
package service

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/models"
	"github.com/cinegraph/cinegraph/internal/store"
)

// Query serves read-only operations against a loaded Dataset.
type Query struct {
	data *store.Dataset
	log  *logrus.Logger
}

// NewQuery creates a Query over the given dataset.
func NewQuery(data *store.Dataset, log *logrus.Logger) *Query {
	return &Query{data: data, log: log}
}

// validatePage checks pagination arguments. It runs before any data
// access, so a bad page fails the same way whether or not the dataset
// has loaded.
func validatePage(page, size int) error {
	if page < 0 || size <= 0 {
		return models.NewInvalidParameter("page must be >= 0 and size must be > 0")
	}

	return nil
}

// validateKey checks that a caller-supplied lookup key is not blank.
func validateKey(key, name string) error {
	if strings.TrimSpace(key) == "" {
		return models.NewInvalidParameter(name + " parameter cannot be empty")
	}

	return nil
}

// paginate applies skip page*size, take size.
func paginate[T any](items []T, page, size int) []T {
	skip := page * size
	if skip >= len(items) {
		return []T{}
	}

	end := skip + size
	if end > len(items) {
		end = len(items)
	}

	return items[skip:end]
}

// sortByPrimaryTitle orders titles ascending by primary title, falling
// back to tconst so the order is deterministic among duplicates.
func sortByPrimaryTitle(titles []*models.Title) {
	sort.Slice(titles, func(i, j int) bool {
		if titles[i].PrimaryTitle != titles[j].PrimaryTitle {
			return titles[i].PrimaryTitle < titles[j].PrimaryTitle
		}

		return titles[i].Tconst < titles[j].Tconst
	})
}

// resolveActor resolves a caller-supplied key to a person: exact id match
// first, then case-insensitive exact primary-name match. Among duplicate
// names the first map hit wins, which is not deterministic.
func (q *Query) resolveActor(key string) (*models.Person, bool) {
	if p, ok := q.data.Person(key); ok {
		return p, true
	}

	return q.data.PersonByName(key)
}

// actorTitleSet is the union of a person's known-for titles and every
// title the raw principal index credits them on as actor or actress. It
// is computed from the raw indexes, independent of the linked actor
// lists on titles.
func (q *Query) actorTitleSet(p *models.Person) map[string]struct{} {
	set := make(map[string]struct{}, len(p.KnownForTitles))

	for _, tconst := range p.KnownForTitles {
		set[tconst] = struct{}{}
	}

	for _, pr := range q.data.PrincipalsByPerson(p.Nconst) {
		if pr.IsActingCredit() {
			set[pr.Tconst] = struct{}{}
		}
	}

	return set
}

// commonTitles maps the intersection of two actor title sets to loaded
// titles, dropping identifiers with no matching title.
func (q *Query) commonTitles(a, b map[string]struct{}) []*models.Title {
	var out []*models.Title

	for tconst := range a {
		if _, ok := b[tconst]; !ok {
			continue
		}

		if t, ok := q.data.Title(tconst); ok {
			out = append(out, t)
		}
	}

	return out
}
