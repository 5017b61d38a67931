// Package api assembles the sdp HTTP API: Echo middleware, probes, metrics
// and the Huma operations.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/social-data-provider/api/openapi"
	"github.com/donaldgifford/social-data-provider/internal/api/handlers"
	"github.com/donaldgifford/social-data-provider/internal/api/middleware"
	"github.com/donaldgifford/social-data-provider/internal/graph"
)

const apiTitle = "Social Data Provider API"

// Provider is everything the API needs from the feed provider.
type Provider interface {
	handlers.FeedService
	handlers.SessionService
	handlers.ReadinessChecker
}

// Deps are the collaborators the router is built from.
type Deps struct {
	Provider       Provider
	RateLimiter    *graph.RateLimiter
	TracerProvider trace.TracerProvider
	Log            *slog.Logger
	Version        string
}

// NewRouter returns an Echo instance serving the full API.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(d.Log))
	e.Use(middleware.RequestLog(d.Log))
	if d.TracerProvider != nil {
		e.Use(middleware.Tracing(d.TracerProvider))
	}
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(d.Provider)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cfg := huma.DefaultConfig(apiTitle, d.Version)
	api := humaecho.New(e, cfg)
	openapi.RegisterRoutes(e, apiTitle, cfg.OpenAPIPath)
	handlers.RegisterFeedRoutes(api, handlers.NewFeedHandler(d.Provider))
	handlers.RegisterSessionRoutes(api, handlers.NewSessionHandler(d.Provider))

	var quota handlers.QuotaReporter
	if d.RateLimiter != nil {
		quota = d.RateLimiter
	}
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(quota))

	return e
}
