package client

import (
	"context"
	"net/url"
	"strconv"
)

// TitleService handles title query operations.
type TitleService struct {
	c *Client
}

func (o *PageOptions) apply(params url.Values) {
	if o == nil {
		return
	}
	params.Set("page", strconv.Itoa(o.Page))
	if o.Size > 0 {
		params.Set("size", strconv.Itoa(o.Size))
	}
}

// SameDirectorWriter returns a page of titles whose director is still alive
// and is also credited as a writer on the same title.
func (s *TitleService) SameDirectorWriter(ctx context.Context, opts *PageOptions) (*Page[Title], error) {
	params := url.Values{}
	opts.apply(params)
	var page Page[Title]
	if err := s.c.get(ctx, "/api/imdb/titles/same-director-writer", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// BothActors returns every title both actors are credited on. Both arguments
// must be person identifiers; the call fails with a 404 when the actors share
// no titles.
func (s *TitleService) BothActors(ctx context.Context, actorID1, actorID2 string) ([]Title, error) {
	params := url.Values{}
	params.Set("actorId1", actorID1)
	params.Set("actorId2", actorID2)
	var titles []Title
	if err := s.c.get(ctx, "/api/imdb/titles/both-actors", params, &titles); err != nil {
		return nil, err
	}
	return titles, nil
}

// BothActorsByNames returns a page of titles both actors are credited on.
// Each argument may be a person identifier or an exact primary name.
func (s *TitleService) BothActorsByNames(ctx context.Context, actor1, actor2 string, opts *PageOptions) (*Page[Title], error) {
	params := url.Values{}
	params.Set("actorName1", actor1)
	params.Set("actorName2", actor2)
	opts.apply(params)
	var page Page[Title]
	if err := s.c.get(ctx, "/api/imdb/titles/both-actors-by-names", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// BestByGenre returns a page of per-year top-five rankings for the genre.
// Pagination runs over year groups, oldest year first.
func (s *TitleService) BestByGenre(ctx context.Context, genre string, opts *PageOptions) (*Page[BestTitlesByYear], error) {
	params := url.Values{}
	params.Set("genre", genre)
	opts.apply(params)
	var page Page[BestTitlesByYear]
	if err := s.c.get(ctx, "/api/imdb/titles/best-by-genre", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
