package service

import (
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/models"
)

// sameDirectorWriter reports whether at least one living director of the
// title also appears in its writer list. Titles with missing or empty
// director/writer lists never qualify.
func sameDirectorWriter(t *models.Title) bool {
	if len(t.Directors) == 0 || len(t.Writers) == 0 {
		return false
	}

	for _, d := range t.Directors {
		if !d.IsAlive() {
			continue
		}

		for _, w := range t.Writers {
			if d == w {
				return true
			}
		}
	}

	return false
}

// TitlesWithSameDirectorAndWriter returns one page of titles where a
// living director is also credited as writer, ordered by primary title.
// An empty page is a valid result.
func (q *Query) TitlesWithSameDirectorAndWriter(page, size int) ([]*models.Title, error) {
	if err := validatePage(page, size); err != nil {
		return nil, err
	}

	if !q.data.Ready() {
		return nil, models.ErrNotReady
	}

	var matched []*models.Title

	q.data.EachTitle(func(t *models.Title) {
		if sameDirectorWriter(t) {
			matched = append(matched, t)
		}
	})

	sortByPrimaryTitle(matched)

	return paginate(matched, page, size), nil
}

// CountTitlesWithSameDirectorAndWriter returns the total number of titles
// matching the director-is-writer predicate.
func (q *Query) CountTitlesWithSameDirectorAndWriter() (int64, error) {
	if !q.data.Ready() {
		return 0, models.ErrNotReady
	}

	var n int64

	q.data.EachTitle(func(t *models.Title) {
		if sameDirectorWriter(t) {
			n++
		}
	})

	return n, nil
}

// TitlesWithBothActors returns every title both actors are credited on,
// ordered by primary title. Both keys are resolved strictly as person
// identifiers. An empty intersection is NotFound for this variant; the
// paginated and count variants below treat it as an empty result instead.
func (q *Query) TitlesWithBothActors(actor1ID, actor2ID string) ([]*models.Title, error) {
	if err := validateKey(actor1ID, "actor1"); err != nil {
		return nil, err
	}

	if err := validateKey(actor2ID, "actor2"); err != nil {
		return nil, err
	}

	if !q.data.Ready() {
		return nil, models.ErrNotReady
	}

	actor1, ok := q.data.Person(actor1ID)
	if !ok {
		return nil, models.NewNotFound("Actor", "id", actor1ID)
	}

	actor2, ok := q.data.Person(actor2ID)
	if !ok {
		return nil, models.NewNotFound("Actor", "id", actor2ID)
	}

	result := q.commonTitles(q.actorTitleSet(actor1), q.actorTitleSet(actor2))
	if len(result) == 0 {
		q.log.WithFields(logrus.Fields{"actor1": actor1.Nconst, "actor2": actor2.Nconst}).
			Debug("empty title intersection")

		return nil, models.NewNotFoundMessage(
			"no titles found where both actors " + actor1.PrimaryName +
				" and " + actor2.PrimaryName + " played together")
	}

	sortByPrimaryTitle(result)

	return result, nil
}

// TitlesWithBothActorsPaged returns one page of titles both actors are
// credited on. Keys resolve as ids first, then case-insensitive primary
// names. An empty page is a valid result.
func (q *Query) TitlesWithBothActorsPaged(actor1Key, actor2Key string, page, size int) ([]*models.Title, error) {
	if err := validateKey(actor1Key, "actor1"); err != nil {
		return nil, err
	}

	if err := validateKey(actor2Key, "actor2"); err != nil {
		return nil, err
	}

	if err := validatePage(page, size); err != nil {
		return nil, err
	}

	if !q.data.Ready() {
		return nil, models.ErrNotReady
	}

	actor1, ok := q.resolveActor(actor1Key)
	if !ok {
		return nil, models.NewNotFound("Actor", "id/name", actor1Key)
	}

	actor2, ok := q.resolveActor(actor2Key)
	if !ok {
		return nil, models.NewNotFound("Actor", "id/name", actor2Key)
	}

	result := q.commonTitles(q.actorTitleSet(actor1), q.actorTitleSet(actor2))
	sortByPrimaryTitle(result)

	return paginate(result, page, size), nil
}

// CountTitlesWithBothActors returns the size of the two actors' common
// title set. Resolution and validation match TitlesWithBothActorsPaged;
// an empty intersection counts as zero rather than NotFound.
func (q *Query) CountTitlesWithBothActors(actor1Key, actor2Key string) (int64, error) {
	if err := validateKey(actor1Key, "actor1"); err != nil {
		return 0, err
	}

	if err := validateKey(actor2Key, "actor2"); err != nil {
		return 0, err
	}

	if !q.data.Ready() {
		return 0, models.ErrNotReady
	}

	actor1, ok := q.resolveActor(actor1Key)
	if !ok {
		return 0, models.NewNotFound("Actor", "id/name", actor1Key)
	}

	actor2, ok := q.resolveActor(actor2Key)
	if !ok {
		return 0, models.NewNotFound("Actor", "id/name", actor2Key)
	}

	return int64(len(q.commonTitles(q.actorTitleSet(actor1), q.actorTitleSet(actor2)))), nil
}
