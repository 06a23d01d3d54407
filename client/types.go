package client

// Person is a member of the dataset's name index.
type Person struct {
	Nconst             string   `json:"nconst"`
	PrimaryName        string   `json:"primaryName"`
	BirthYear          *int     `json:"birthYear"`
	DeathYear          *int     `json:"deathYear"`
	PrimaryProfessions []string `json:"primaryProfessions"`
	KnownForTitles     []string `json:"knownForTitles"`
}

// Title is a fully linked dataset title, including resolved directors,
// writers, and actors.
type Title struct {
	Tconst         string   `json:"tconst"`
	TitleType      string   `json:"titleType"`
	PrimaryTitle   string   `json:"primaryTitle"`
	OriginalTitle  string   `json:"originalTitle"`
	IsAdult        bool     `json:"isAdult"`
	StartYear      *int     `json:"startYear"`
	EndYear        *int     `json:"endYear"`
	RuntimeMinutes *int     `json:"runtimeMinutes"`
	Genres         []string `json:"genres"`
	Rating         *float64 `json:"rating"`
	NumVotes       *int     `json:"numVotes"`
	Directors      []Person `json:"directors"`
	Writers        []Person `json:"writers"`
	Actors         []Person `json:"actors"`
}

// TitleSummary is the compact projection used in genre rankings.
type TitleSummary struct {
	Tconst       string  `json:"tconst"`
	PrimaryTitle string  `json:"primaryTitle"`
	StartYear    int     `json:"startYear"`
	Rating       float64 `json:"rating"`
	NumVotes     int     `json:"numVotes"`
}

// BestTitlesByYear groups the top titles for a single release year.
type BestTitlesByYear struct {
	Year   int            `json:"year"`
	Titles []TitleSummary `json:"titles"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"currentPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// PageOptions selects a page of results. The zero value requests the
// server defaults (page 0, size 10).
type PageOptions struct {
	Page int
	Size int
}

// HealthResponse is the liveness check payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	DatasetReady  bool    `json:"dataset_ready"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadyResponse is the readiness check payload.
type ReadyResponse struct {
	Status string           `json:"status"`
	Rows   map[string]int64 `json:"rows,omitempty"`
}

// StatsResponse reports the running query counter.
type StatsResponse struct {
	Count int64 `json:"count"`
}
