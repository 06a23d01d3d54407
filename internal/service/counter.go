package service

import (
	"sync/atomic"

	"github.com/cinegraph/cinegraph/internal/metrics"
)

// RequestCounter counts queries served over the process lifetime. It is
// initialized at zero, incremented atomically once per query, and never
// reset. The Prometheus counter mirrors it for scraping; the atomic value
// is the one served by the stats endpoint.
type RequestCounter struct {
	n atomic.Int64
}

// NewRequestCounter creates a RequestCounter starting at zero.
func NewRequestCounter() *RequestCounter {
	return &RequestCounter{}
}

// Increment records one served query.
func (c *RequestCounter) Increment() {
	c.n.Add(1)
	metrics.QueriesTotal.Inc()
}

// Count returns the number of queries served so far.
func (c *RequestCounter) Count() int64 {
	return c.n.Load()
}
