package client

import (
	"context"
	"net/url"
)

// PersonService handles person lookups.
type PersonService struct {
	c *Client
}

// Get returns a single person by identifier.
func (s *PersonService) Get(ctx context.Context, id string) (*Person, error) {
	var person Person
	if err := s.c.get(ctx, "/api/imdb/person/"+url.PathEscape(id), nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}
