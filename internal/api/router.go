package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/cinegraph/cinegraph/docs" // registers the generated OpenAPI spec
	"github.com/cinegraph/cinegraph/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Queries     QueryService
	Counter     Counter
	Dataset     DatasetStatus
	CORSOrigins []string
	Version     string
}

// Router-level limits.
const (
	rateLimit = 100 // requests per second per IP
	rateBurst = 200 // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID())
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.Prometheus())

	// Observability endpoints live outside the API group.
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	)))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(api *gin.RouterGroup, deps *RouterDeps) {
	titles := NewTitleHandler(deps.Queries, deps.Counter, deps.Log)
	people := NewPersonHandler(deps.Queries, deps.Counter, deps.Log)
	stats := NewStatsHandler(deps.Counter, deps.Log)

	api.GET("/titles/same-director-writer", titles.SameDirectorWriter)
	api.GET("/titles/both-actors", titles.BothActors)
	api.GET("/titles/both-actors-by-names", titles.BothActorsByNames)
	api.GET("/titles/best-by-genre", titles.BestByGenre)

	api.GET("/person/:id", people.Get)

	api.GET("/stats/request-count", stats.RequestCount)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)

	health := NewHealthHandler(deps.Dataset, deps.Log, deps.Version)
	r.GET("/health", health.Liveness)
	r.GET("/ready", health.Readiness)

	registerRoutes(r.Group("/api/imdb"), deps)

	return r
}
