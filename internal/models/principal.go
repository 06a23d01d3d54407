package models

// Principal categories that count as acting credits.
const (
	CategoryActor   = "actor"
	CategoryActress = "actress"
)

// Principal is one credited role linking a person to a title. A title
// usually has several, ordered by the source's Ordering column.
type Principal struct {
	Tconst     string  `json:"tconst"`
	Ordering   int     `json:"ordering"`
	Nconst     string  `json:"nconst"`
	Category   string  `json:"category"`
	Job        *string `json:"job,omitempty"`
	Characters *string `json:"characters,omitempty"`
}

// IsActingCredit reports whether the principal's category is an acting one.
func (p *Principal) IsActingCredit() bool {
	return p.Category == CategoryActor || p.Category == CategoryActress
}

// Crew is the raw directors/writers link row for one title, consumed
// once by the link pass.
type Crew struct {
	Tconst    string   `json:"tconst"`
	Directors []string `json:"directors"`
	Writers   []string `json:"writers"`
}

// Rating is one title's aggregate rating row.
type Rating struct {
	Tconst        string  `json:"tconst"`
	AverageRating float64 `json:"averageRating"`
	NumVotes      int     `json:"numVotes"`
}
