package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StatsHandler serves the request counter endpoint.
type StatsHandler struct {
	counter Counter
	log     *logrus.Logger
}

// NewStatsHandler creates a StatsHandler with the given dependencies.
func NewStatsHandler(counter Counter, log *logrus.Logger) *StatsHandler {
	return &StatsHandler{counter: counter, log: log}
}

// RequestCount handles GET /api/imdb/stats/request-count. The request
// itself is counted before the counter is read, so the reported value
// includes it.
//
//	@Summary	Total queries served by this process
//	@Tags		stats
//	@Produce	json
//	@Success	200	{object}	map[string]int64
//	@Router		/stats/request-count [get]
func (h *StatsHandler) RequestCount(c *gin.Context) {
	h.counter.Increment()

	c.JSON(http.StatusOK, gin.H{"count": h.counter.Count()})
}
