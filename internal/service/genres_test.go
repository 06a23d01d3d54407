package service

import (
	"errors"
	"testing"

	"github.com/cinegraph/cinegraph/internal/models"
)

// genreQuery builds Drama titles across three years:
//
//	1990: six rated titles, so the year's ranking must cut to five
//	1991: two titles tied on rating, split by vote count
//	1992: one Comedy title only, invisible to Drama queries
//
// One Drama title carries no rating and one no start year; both are
// excluded from rankings.
func genreQuery(t *testing.T) *Query {
	t.Helper()
	titles := ""
	ratings := ""
	// tta..ttf: 1990 Drama, ratings 9.0 down to 4.0.
	names := []string{"tta", "ttb", "ttc", "ttd", "tte", "ttf"}
	marks := []string{"9.0", "8.0", "7.0", "6.0", "5.0", "4.0"}
	for i, id := range names {
		titles += id + "\tmovie\tTitle " + id + "\tTitle " + id + "\t0\t1990\t\\N\t\\N\tDrama\n"
		ratings += id + "\t" + marks[i] + "\t100\n"
	}
	titles += "ttg\tmovie\tTied Low Votes\tTied Low Votes\t0\t1991\t\\N\t\\N\tDrama\n" +
		"tth\tmovie\tTied High Votes\tTied High Votes\t0\t1991\t\\N\t\\N\tDrama\n" +
		"tti\tmovie\tUnrated Drama\tUnrated Drama\t0\t1991\t\\N\t\\N\tDrama\n" +
		"ttj\tmovie\tYearless Drama\tYearless Drama\t0\t\\N\t\\N\t\\N\tDrama\n" +
		"ttk\tmovie\tComedy Only\tComedy Only\t0\t1992\t\\N\t\\N\tComedy\n"
	ratings += "ttg\t8.5\t100\n" +
		"tth\t8.5\t900\n" +
		"ttj\t9.9\t100\n" +
		"ttk\t9.0\t100\n"
	return newQuery(t, titles, "", "", "", ratings)
}

func TestBestTitlesByYearForGenre(t *testing.T) {
	q := genreQuery(t)

	got, err := q.BestTitlesByYearForGenre("Drama", 0, 10)
	if err != nil {
		t.Fatalf("BestTitlesByYearForGenre() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d year groups, want 2", len(got))
	}

	// Years ascend.
	if got[0].Year != 1990 || got[1].Year != 1991 {
		t.Errorf("years = %d, %d; want 1990, 1991", got[0].Year, got[1].Year)
	}

	// 1990 has six eligible titles; only the top five survive, best first.
	y1990 := got[0].Titles
	if len(y1990) != 5 {
		t.Fatalf("1990 group has %d titles, want 5", len(y1990))
	}
	if y1990[0].Tconst != "tta" || y1990[0].Rating != 9.0 {
		t.Errorf("1990 best = %+v, want tta at 9.0", y1990[0])
	}
	for i := 1; i < len(y1990); i++ {
		if y1990[i].Rating > y1990[i-1].Rating {
			t.Errorf("1990 ratings not descending at %d: %v", i, y1990)
		}
	}
	for _, s := range y1990 {
		if s.Tconst == "ttf" {
			t.Error("sixth-ranked title must be cut")
		}
	}

	// 1991: equal ratings order by votes descending; the unrated title
	// is excluded entirely.
	y1991 := got[1].Titles
	if len(y1991) != 2 {
		t.Fatalf("1991 group has %d titles, want 2: %+v", len(y1991), y1991)
	}
	if y1991[0].Tconst != "tth" || y1991[1].Tconst != "ttg" {
		t.Errorf("1991 tie should break on votes: %+v", y1991)
	}
}

func TestBestTitlesByYearForGenre_PaginatesYearGroups(t *testing.T) {
	q := genreQuery(t)

	page0, err := q.BestTitlesByYearForGenre("Drama", 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	page1, err := q.BestTitlesByYearForGenre("Drama", 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	page2, err := q.BestTitlesByYearForGenre("Drama", 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(page0) != 1 || page0[0].Year != 1990 {
		t.Errorf("page 0 = %+v, want the 1990 group", page0)
	}
	if len(page1) != 1 || page1[0].Year != 1991 {
		t.Errorf("page 1 = %+v, want the 1991 group", page1)
	}
	if len(page2) != 0 {
		t.Errorf("page 2 should be empty, got %+v", page2)
	}

	n, err := q.CountYearsForGenre("Drama")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("CountYearsForGenre(Drama) = %d, want 2", n)
	}
}

func TestBestTitlesByYearForGenre_UnknownGenre(t *testing.T) {
	q := genreQuery(t)

	_, err := q.BestTitlesByYearForGenre("Western", 0, 10)
	var nf *models.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
	if want := "no titles found for genre: Western"; nf.Error() != want {
		t.Errorf("message = %q, want %q", nf.Error(), want)
	}

	// Genre matching is exact and case-sensitive.
	if _, err := q.BestTitlesByYearForGenre("drama", 0, 10); !errors.As(err, &nf) {
		t.Errorf("lower-case genre should not match: %v", err)
	}

	n, err := q.CountYearsForGenre("Western")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("CountYearsForGenre(Western) = %d, want 0", n)
	}
}

func TestBestTitlesByYearForGenre_Validation(t *testing.T) {
	q := genreQuery(t)

	if _, err := q.BestTitlesByYearForGenre("", 0, 10); !isInvalidParameter(err) {
		t.Errorf("blank genre: got %v, want InvalidParameterError", err)
	}
	if _, err := q.BestTitlesByYearForGenre("Drama", -1, 10); !isInvalidParameter(err) {
		t.Errorf("negative page: got %v, want InvalidParameterError", err)
	}
	if _, err := q.CountYearsForGenre("  "); !isInvalidParameter(err) {
		t.Errorf("blank count genre: got %v, want InvalidParameterError", err)
	}
}

func TestQueries_DeterministicAcrossLoads(t *testing.T) {
	build := func() *Query { return genreQuery(t) }

	q1 := build()
	q2 := build()

	a, err := q1.BestTitlesByYearForGenre("Drama", 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	b, err := q2.BestTitlesByYearForGenre("Drama", 0, 10)
	if err != nil {
		t.Fatal(err)
	}

	if len(a) != len(b) {
		t.Fatalf("group counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Year != b[i].Year || len(a[i].Titles) != len(b[i].Titles) {
			t.Fatalf("group %d differs: %+v vs %+v", i, a[i], b[i])
		}
		for j := range a[i].Titles {
			if a[i].Titles[j] != b[i].Titles[j] {
				t.Errorf("entry %d/%d differs: %+v vs %+v", i, j, a[i].Titles[j], b[i].Titles[j])
			}
		}
	}
}
