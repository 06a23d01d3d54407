package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	dataset   DatasetStatus
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler with the given dependencies.
func NewHealthHandler(dataset DatasetStatus, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		dataset:   dataset,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	DatasetReady  bool    `json:"dataset_ready"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string           `json:"status"`
	Rows   map[string]int64 `json:"rows"`
}

// Liveness handles GET /health. The process is up; dataset
// state is reported but not fatal here.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       h.version,
		DatasetReady:  h.dataset.Ready(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// Readiness handles GET /ready. Not ready until the dataset
// has fully loaded and linked.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.dataset.Ready() {
		c.JSON(http.StatusServiceUnavailable, readinessResponse{Status: "not_ready", Rows: map[string]int64{}})

		return
	}

	counters := h.dataset.Counters()

	c.JSON(http.StatusOK, readinessResponse{
		Status: "ready",
		Rows: map[string]int64{
			"titles":     counters.Titles,
			"people":     counters.People,
			"principals": counters.Principals,
			"crews":      counters.Crews,
			"ratings":    counters.Ratings,
		},
	})
}
