package service

import "github.com/cinegraph/cinegraph/internal/models"

// PersonByID returns the person with the given identifier.
func (q *Query) PersonByID(id string) (*models.Person, error) {
	if err := validateKey(id, "personId"); err != nil {
		return nil, err
	}

	if !q.data.Ready() {
		return nil, models.ErrNotReady
	}

	p, ok := q.data.Person(id)
	if !ok {
		return nil, models.NewNotFound("Person", "id", id)
	}

	return p, nil
}
