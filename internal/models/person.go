package models

// Person represents one person record (actor, director, writer, ...).
type Person struct {
	Nconst             string   `json:"nconst"`
	PrimaryName        string   `json:"primaryName"`
	BirthYear          *int     `json:"birthYear"`
	DeathYear          *int     `json:"deathYear"`
	PrimaryProfessions []string `json:"primaryProfessions"`
	KnownForTitles     []string `json:"knownForTitles"`
}

// IsAlive reports whether the person has no recorded death year.
func (p *Person) IsAlive() bool {
	return p.DeathYear == nil
}
