// Package models defines data types for the in-memory film/TV dataset.
package models

// Title represents one film or TV title record.
//
// Rating and NumVotes are absent until a matching rating row is applied
// during load. Directors, Writers and Actors are absent until the link
// pass resolves them; a title with a crew row but no resolvable people
// ends up with empty (non-nil) Directors/Writers, while a title with no
// principal rows at all keeps Actors nil. Queries depend on that
// distinction.
type Title struct {
	Tconst         string    `json:"tconst"`
	TitleType      string    `json:"titleType"`
	PrimaryTitle   string    `json:"primaryTitle"`
	OriginalTitle  string    `json:"originalTitle"`
	IsAdult        bool      `json:"isAdult"`
	StartYear      *int      `json:"startYear"`
	EndYear        *int      `json:"endYear"`
	RuntimeMinutes *int      `json:"runtimeMinutes"`
	Genres         []string  `json:"genres"`
	Rating         *float64  `json:"rating"`
	NumVotes       *int      `json:"numVotes"`
	Directors      []*Person `json:"directors"`
	Writers        []*Person `json:"writers"`
	Actors         []*Person `json:"actors"`
}

// HasGenre reports whether the title carries the exact genre label.
// Genre matching is case-sensitive.
func (t *Title) HasGenre(genre string) bool {
	for _, g := range t.Genres {
		if g == genre {
			return true
		}
	}

	return false
}

// TitleSummary is a lightweight projection of a Title used in per-year
// ranking results.
type TitleSummary struct {
	Tconst       string  `json:"tconst"`
	PrimaryTitle string  `json:"primaryTitle"`
	StartYear    int     `json:"startYear"`
	Rating       float64 `json:"rating"`
	NumVotes     int     `json:"numVotes"`
}

// BestTitlesByYear groups the top-rated titles of one release year.
type BestTitlesByYear struct {
	Year   int            `json:"year"`
	Titles []TitleSummary `json:"titles"`
}
