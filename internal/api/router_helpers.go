package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/middleware"
)

// Pagination defaults applied when the query parameters are absent.
const (
	defaultPage = 0
	defaultSize = 10
)

// requireQuery extracts a required query parameter, responding 400 when
// it is missing. The boolean reports whether the handler may proceed.
func requireQuery(c *gin.Context, name string) (string, bool) {
	v, ok := c.GetQuery(name)
	if !ok {
		respondError(c, 400, ErrCodeInvalidRequest, name+" parameter is required")

		return "", false
	}

	return v, true
}

// pageParams parses the optional page/size query parameters. Non-integer
// values are rejected; range validation (page >= 0, size > 0) is the
// query layer's concern so out-of-range values pass through.
func pageParams(c *gin.Context) (page, size int, ok bool) {
	page, ok = intQuery(c, "page", defaultPage)
	if !ok {
		return 0, 0, false
	}

	size, ok = intQuery(c, "size", defaultSize)
	if !ok {
		return 0, 0, false
	}

	return page, size, true
}

func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw, present := c.GetQuery(name)
	if !present {
		return fallback, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, 400, ErrCodeInvalidRequest, name+" should be of type int")

		return 0, false
	}

	return v, true
}

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}
