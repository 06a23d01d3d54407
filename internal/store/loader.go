package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cinegraph/cinegraph/internal/models"
)

// nullSentinel marks an absent value in every source column.
const nullSentinel = `\N`

// Minimum column counts per source; shorter rows are silently skipped.
const (
	titleColumns     = 9
	personColumns    = 6
	principalColumns = 6
	crewColumns      = 3
	ratingColumns    = 3
)

// newRowScanner wraps a source stream in a line scanner and discards the
// header row. Principal character lists can run long, so the buffer is
// generous.
func newRowScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Scan() // header

	return sc
}

// optInt converts one nullable numeric column. A parse failure is an
// import failure: loading is all-or-nothing.
func optInt(source, field string) (*int, error) {
	if field == nullSentinel {
		return nil, nil
	}

	v, err := strconv.Atoi(field)
	if err != nil {
		return nil, models.NewImportError(fmt.Sprintf("%s: parsing %q as integer", source, field), err)
	}

	return &v, nil
}

// optString converts one nullable string column.
func optString(field string) *string {
	if field == nullSentinel {
		return nil
	}

	return &field
}

// splitList converts one comma-separated multi-value column; the null
// sentinel yields an empty list, never a list containing the sentinel.
func splitList(field string) []string {
	if field == nullSentinel {
		return []string{}
	}

	return strings.Split(field, ",")
}

// uniqueList is splitList with duplicates dropped, first occurrence wins.
func uniqueList(field string) []string {
	parts := splitList(field)
	out := parts[:0]
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

func (d *Dataset) loadTitles(r io.Reader) error {
	sc := newRowScanner(r)

	for sc.Scan() {
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) < titleColumns {
			continue
		}

		startYear, err := optInt("titles", fields[5])
		if err != nil {
			return err
		}

		endYear, err := optInt("titles", fields[6])
		if err != nil {
			return err
		}

		runtime, err := optInt("titles", fields[7])
		if err != nil {
			return err
		}

		d.titles[fields[0]] = &models.Title{
			Tconst:         fields[0],
			TitleType:      fields[1],
			PrimaryTitle:   fields[2],
			OriginalTitle:  fields[3],
			IsAdult:        fields[4] == "1",
			StartYear:      startYear,
			EndYear:        endYear,
			RuntimeMinutes: runtime,
			Genres:         uniqueList(fields[8]),
		}
		d.counters.Titles++

		if d.counters.Titles >= int64(d.caps.Titles) {
			break
		}
	}

	if err := sc.Err(); err != nil {
		return models.NewImportError("reading titles source", err)
	}

	return nil
}

func (d *Dataset) loadPeople(r io.Reader) error {
	sc := newRowScanner(r)

	for sc.Scan() {
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) < personColumns {
			continue
		}

		birthYear, err := optInt("people", fields[2])
		if err != nil {
			return err
		}

		deathYear, err := optInt("people", fields[3])
		if err != nil {
			return err
		}

		d.people[fields[0]] = &models.Person{
			Nconst:             fields[0],
			PrimaryName:        fields[1],
			BirthYear:          birthYear,
			DeathYear:          deathYear,
			PrimaryProfessions: splitList(fields[4]),
			KnownForTitles:     splitList(fields[5]),
		}
		d.counters.People++

		if d.counters.People >= int64(d.caps.People) {
			break
		}
	}

	if err := sc.Err(); err != nil {
		return models.NewImportError("reading people source", err)
	}

	return nil
}

func (d *Dataset) loadPrincipals(r io.Reader) error {
	sc := newRowScanner(r)

	for sc.Scan() {
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) < principalColumns {
			continue
		}

		ordering, err := strconv.Atoi(fields[1])
		if err != nil {
			return models.NewImportError(fmt.Sprintf("principals: parsing %q as ordering", fields[1]), err)
		}

		principal := &models.Principal{
			Tconst:     fields[0],
			Ordering:   ordering,
			Nconst:     fields[2],
			Category:   fields[3],
			Job:        optString(fields[4]),
			Characters: optString(fields[5]),
		}

		d.principalsByTitle[principal.Tconst] = append(d.principalsByTitle[principal.Tconst], principal)
		d.principalsByPerson[principal.Nconst] = append(d.principalsByPerson[principal.Nconst], principal)
		d.counters.Principals++

		// Rows for titles beyond the title cap stay in the raw indexes
		// but never count against the principal cap.
		if _, ok := d.titles[principal.Tconst]; !ok {
			continue
		}

		if d.counters.Principals >= int64(d.caps.Principals) {
			break
		}
	}

	if err := sc.Err(); err != nil {
		return models.NewImportError("reading principals source", err)
	}

	return nil
}

func (d *Dataset) loadCrews(r io.Reader) error {
	sc := newRowScanner(r)

	for sc.Scan() {
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) < crewColumns {
			continue
		}

		d.crews[fields[0]] = &models.Crew{
			Tconst:    fields[0],
			Directors: splitList(fields[1]),
			Writers:   splitList(fields[2]),
		}
		d.counters.Crews++

		if _, ok := d.titles[fields[0]]; !ok {
			continue
		}

		if d.counters.Crews >= int64(d.caps.Crews) {
			break
		}
	}

	if err := sc.Err(); err != nil {
		return models.NewImportError("reading crews source", err)
	}

	return nil
}

func (d *Dataset) loadRatings(r io.Reader) error {
	sc := newRowScanner(r)

	for sc.Scan() {
		fields := strings.Split(sc.Text(), "\t")
		if len(fields) < ratingColumns {
			continue
		}

		// Ratings for titles we never loaded are dropped before parsing.
		title, ok := d.titles[fields[0]]
		if !ok {
			continue
		}

		avg, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return models.NewImportError(fmt.Sprintf("ratings: parsing %q as rating", fields[1]), err)
		}

		votes, err := strconv.Atoi(fields[2])
		if err != nil {
			return models.NewImportError(fmt.Sprintf("ratings: parsing %q as vote count", fields[2]), err)
		}

		d.ratings[fields[0]] = &models.Rating{Tconst: fields[0], AverageRating: avg, NumVotes: votes}

		title.Rating = &avg
		title.NumVotes = &votes

		d.counters.Ratings++

		if d.counters.Ratings >= int64(d.caps.Ratings) {
			break
		}
	}

	if err := sc.Err(); err != nil {
		return models.NewImportError("reading ratings source", err)
	}

	return nil
}
