package client

import "context"

// StatsService reads the service's query counter.
type StatsService struct {
	c *Client
}

// RequestCount returns the number of queries the server has handled since
// startup. The call itself counts, so consecutive reads always increase.
func (s *StatsService) RequestCount(ctx context.Context) (int64, error) {
	var resp StatsResponse
	if err := s.c.get(ctx, "/api/imdb/stats/request-count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
