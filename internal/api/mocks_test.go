package api_test

import (
	"github.com/cinegraph/cinegraph/internal/models"
	"github.com/cinegraph/cinegraph/internal/store"
)

// mockQueries implements api.QueryService for testing.
type mockQueries struct {
	personFn func(id string) (*models.Person, error)

	sameDirectorWriterFn      func(page, size int) ([]*models.Title, error)
	countSameDirectorWriterFn func() (int64, error)

	bothActorsFn      func(actor1ID, actor2ID string) ([]*models.Title, error)
	bothActorsPagedFn func(actor1Key, actor2Key string, page, size int) ([]*models.Title, error)
	countBothActorsFn func(actor1Key, actor2Key string) (int64, error)

	bestByGenreFn func(genre string, page, size int) ([]models.BestTitlesByYear, error)
	countYearsFn  func(genre string) (int64, error)
}

func (m *mockQueries) PersonByID(id string) (*models.Person, error) {
	return m.personFn(id)
}

func (m *mockQueries) TitlesWithSameDirectorAndWriter(page, size int) ([]*models.Title, error) {
	return m.sameDirectorWriterFn(page, size)
}

func (m *mockQueries) CountTitlesWithSameDirectorAndWriter() (int64, error) {
	return m.countSameDirectorWriterFn()
}

func (m *mockQueries) TitlesWithBothActors(actor1ID, actor2ID string) ([]*models.Title, error) {
	return m.bothActorsFn(actor1ID, actor2ID)
}

func (m *mockQueries) TitlesWithBothActorsPaged(actor1Key, actor2Key string, page, size int) ([]*models.Title, error) {
	return m.bothActorsPagedFn(actor1Key, actor2Key, page, size)
}

func (m *mockQueries) CountTitlesWithBothActors(actor1Key, actor2Key string) (int64, error) {
	return m.countBothActorsFn(actor1Key, actor2Key)
}

func (m *mockQueries) BestTitlesByYearForGenre(genre string, page, size int) ([]models.BestTitlesByYear, error) {
	return m.bestByGenreFn(genre, page, size)
}

func (m *mockQueries) CountYearsForGenre(genre string) (int64, error) {
	return m.countYearsFn(genre)
}

// mockCounter implements api.Counter for testing.
type mockCounter struct {
	n int64
}

func (m *mockCounter) Increment() { m.n++ }
func (m *mockCounter) Count() int64 {
	return m.n
}

// mockDataset implements api.DatasetStatus for testing.
type mockDataset struct {
	ready    bool
	counters store.Counters
}

func (m *mockDataset) Ready() bool              { return m.ready }
func (m *mockDataset) Counters() store.Counters { return m.counters }
