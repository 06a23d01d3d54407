package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/httputil"
	"github.com/cinegraph/cinegraph/internal/metrics"
	"github.com/cinegraph/cinegraph/internal/models"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeNotReady       = "not_ready"
	ErrCodeInternalError  = "internal_error"
	ErrCodeRateLimited    = "rate_limited"
)

// respondError writes a standardized JSON error response, pulling the
// request ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// respondQueryError maps a query-layer error to its transport response.
// Invalid input is the caller's fault (400), a missing record or empty
// composed result is 404, an unloaded dataset is 503, and anything else
// is an internal error.
func respondQueryError(c *gin.Context, log *logrus.Logger, err error) {
	var invalid *models.InvalidParameterError
	if errors.As(err, &invalid) {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, invalid.Message)

		return
	}

	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, notFound.Error())

		return
	}

	if errors.Is(err, models.ErrNotReady) {
		respondError(c, http.StatusServiceUnavailable, ErrCodeNotReady, "dataset is still loading")

		return
	}

	log.WithError(err).Error("query failed")
	respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
}
