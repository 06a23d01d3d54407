package models

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"
)

func TestNewPagedResponse(t *testing.T) {
	tests := []struct {
		name           string
		page, size     int
		total          int64
		wantTotalPages int
	}{
		{"exact fit", 0, 10, 20, 2},
		{"remainder adds a page", 0, 10, 21, 3},
		{"single partial page", 0, 10, 3, 1},
		{"empty", 0, 10, 0, 0},
		{"size one", 4, 1, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewPagedResponse([]string{}, tt.page, tt.size, tt.total)
			if resp.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", resp.TotalPages, tt.wantTotalPages)
			}
			if resp.CurrentPage != tt.page || resp.TotalItems != tt.total {
				t.Errorf("envelope = %+v", resp)
			}
		})
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := NewNotFound("Person", "id", "nm1")
	if got, want := err.Error(), "Person not found with id: 'nm1'"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = NewNotFoundMessage("no titles found for genre: Drama")
	if got, want := err.Error(), "no titles found for genre: Drama"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestImportError_Unwrap(t *testing.T) {
	cause := strconv.ErrSyntax
	err := NewImportError("titles: parsing \"x\" as integer", cause)

	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("errors.Is should reach the cause")
	}

	if got := err.Error(); got != "titles: parsing \"x\" as integer: "+cause.Error() {
		t.Errorf("Error() = %q", got)
	}

	bare := NewImportError("missing titles source", nil)
	if got := bare.Error(); got != "missing titles source" {
		t.Errorf("Error() = %q", got)
	}
}

func TestTitle_HasGenre(t *testing.T) {
	title := Title{Genres: []string{"Drama", "Crime"}}

	if !title.HasGenre("Drama") {
		t.Error("HasGenre(Drama) = false, want true")
	}
	if title.HasGenre("drama") {
		t.Error("genre matching must be case-sensitive")
	}
	if title.HasGenre("Dram") {
		t.Error("genre matching must be exact")
	}
}

func TestPerson_IsAlive(t *testing.T) {
	year := 1990
	if (&Person{DeathYear: &year}).IsAlive() {
		t.Error("person with death year reported alive")
	}
	if !(&Person{}).IsAlive() {
		t.Error("person without death year reported dead")
	}
}

func TestPrincipal_IsActingCredit(t *testing.T) {
	tests := []struct {
		category string
		want     bool
	}{
		{CategoryActor, true},
		{CategoryActress, true},
		{"self", false},
		{"director", false},
		{"Actor", false},
	}
	for _, tt := range tests {
		p := Principal{Category: tt.category}
		if got := p.IsActingCredit(); got != tt.want {
			t.Errorf("IsActingCredit(%q) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestTitle_JSONNullsForMissingValues(t *testing.T) {
	data, err := json.Marshal(Title{Tconst: "tt1", PrimaryTitle: "Alpha"})
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{"startYear", "rating", "numVotes", "directors"} {
		if string(raw[field]) != "null" {
			t.Errorf("%s = %s, want null", field, raw[field])
		}
	}
}
