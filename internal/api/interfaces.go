package api

import (
	"github.com/cinegraph/cinegraph/internal/models"
	"github.com/cinegraph/cinegraph/internal/store"
)

// QueryService defines the dataset query operations used by the handlers.
type QueryService interface {
	PersonByID(id string) (*models.Person, error)

	TitlesWithSameDirectorAndWriter(page, size int) ([]*models.Title, error)
	CountTitlesWithSameDirectorAndWriter() (int64, error)

	TitlesWithBothActors(actor1ID, actor2ID string) ([]*models.Title, error)
	TitlesWithBothActorsPaged(actor1Key, actor2Key string, page, size int) ([]*models.Title, error)
	CountTitlesWithBothActors(actor1Key, actor2Key string) (int64, error)

	BestTitlesByYearForGenre(genre string, page, size int) ([]models.BestTitlesByYear, error)
	CountYearsForGenre(genre string) (int64, error)
}

// Counter counts served queries.
type Counter interface {
	Increment()
	Count() int64
}

// DatasetStatus exposes what the health endpoints need from the dataset.
type DatasetStatus interface {
	Ready() bool
	Counters() store.Counters
}
