package service

import (
	"sort"

	"github.com/cinegraph/cinegraph/internal/models"
)

// Titles kept per year group in genre rankings.
const topTitlesPerYear = 5

// genreEligible reports whether the title participates in genre rankings:
// exact genre label plus present rating, vote count and start year.
func genreEligible(t *models.Title, genre string) bool {
	return t.HasGenre(genre) && t.Rating != nil && t.NumVotes != nil && t.StartYear != nil
}

// BestTitlesByYearForGenre returns one page of per-year top-5 rankings
// for the genre. Year groups are ordered ascending and pagination applies
// over year groups, not over individual titles. A genre with no eligible
// title is NotFound.
func (q *Query) BestTitlesByYearForGenre(genre string, page, size int) ([]models.BestTitlesByYear, error) {
	if err := validateKey(genre, "genre"); err != nil {
		return nil, err
	}

	if err := validatePage(page, size); err != nil {
		return nil, err
	}

	if !q.data.Ready() {
		return nil, models.ErrNotReady
	}

	byYear := make(map[int][]*models.Title)

	q.data.EachTitle(func(t *models.Title) {
		if genreEligible(t, genre) {
			byYear[*t.StartYear] = append(byYear[*t.StartYear], t)
		}
	})

	if len(byYear) == 0 {
		return nil, models.NewNotFoundMessage("no titles found for genre: " + genre)
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}

	sort.Ints(years)

	groups := make([]models.BestTitlesByYear, 0, len(years))
	for _, year := range years {
		groups = append(groups, models.BestTitlesByYear{
			Year:   year,
			Titles: rankTitles(byYear[year]),
		})
	}

	return paginate(groups, page, size), nil
}

// rankTitles orders one year's titles by rating descending, then vote
// count descending, and projects the top 5 into summaries. The sort is
// stable so fully tied titles keep their traversal order.
func rankTitles(titles []*models.Title) []models.TitleSummary {
	sort.SliceStable(titles, func(i, j int) bool {
		if *titles[i].Rating != *titles[j].Rating {
			return *titles[i].Rating > *titles[j].Rating
		}

		return *titles[i].NumVotes > *titles[j].NumVotes
	})

	n := len(titles)
	if n > topTitlesPerYear {
		n = topTitlesPerYear
	}

	best := make([]models.TitleSummary, 0, n)
	for _, t := range titles[:n] {
		best = append(best, models.TitleSummary{
			Tconst:       t.Tconst,
			PrimaryTitle: t.PrimaryTitle,
			StartYear:    *t.StartYear,
			Rating:       *t.Rating,
			NumVotes:     *t.NumVotes,
		})
	}

	return best
}

// CountYearsForGenre returns the number of distinct eligible start years
// for the genre, which equals the number of year groups available to
// BestTitlesByYearForGenre.
func (q *Query) CountYearsForGenre(genre string) (int64, error) {
	if err := validateKey(genre, "genre"); err != nil {
		return 0, err
	}

	if !q.data.Ready() {
		return 0, models.ErrNotReady
	}

	years := make(map[int]struct{})

	q.data.EachTitle(func(t *models.Title) {
		if genreEligible(t, genre) {
			years[*t.StartYear] = struct{}{}
		}
	})

	return int64(len(years)), nil
}
