package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/store"
)

const (
	titlesHeader     = "tconst\ttitleType\tprimaryTitle\toriginalTitle\tisAdult\tstartYear\tendYear\truntimeMinutes\tgenres\n"
	peopleHeader     = "nconst\tprimaryName\tbirthYear\tdeathYear\tprimaryProfession\tknownForTitles\n"
	principalsHeader = "tconst\tordering\tnconst\tcategory\tjob\tcharacters\n"
	crewsHeader      = "tconst\tdirectors\twriters\n"
	ratingsHeader    = "tconst\taverageRating\tnumVotes\n"
)

func opener(s string) store.Opener {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(s)), nil
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newQuery loads a dataset from raw row text (headers added) and wraps it
// in a Query.
func newQuery(t *testing.T, titles, people, principals, crews, ratings string) *Query {
	t.Helper()
	d := store.NewDataset(store.DefaultCaps(), testLogger())
	err := d.LoadAndLink(context.Background(), store.Sources{
		Titles:     opener(titlesHeader + titles),
		People:     opener(peopleHeader + people),
		Principals: opener(principalsHeader + principals),
		Crews:      opener(crewsHeader + crews),
		Ratings:    opener(ratingsHeader + ratings),
	})
	if err != nil {
		t.Fatalf("LoadAndLink() error: %v", err)
	}
	return NewQuery(d, testLogger())
}

// emptyQuery wraps a dataset that never loaded, for readiness checks.
func emptyQuery() *Query {
	return NewQuery(store.NewDataset(store.DefaultCaps(), testLogger()), testLogger())
}
