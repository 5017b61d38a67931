// Package middleware provides the Echo middleware chain for the sdp API.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/social-data-provider/internal/metrics"
)

// probePaths are scraped or probed often enough that per-request metrics
// would only be noise.
var probePaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// probeGauges maps probe paths to their 0/1 gauge.
var probeGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration, status and
// in-flight count, labelled by route template. Probe paths only update their
// up/down gauge.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)

			if _, probe := probePaths[path]; probe {
				err := next(c)
				if g, ok := probeGauges[path]; ok {
					g.Set(boolToFloat(success(c.Response().Status)))
				}
				return err
			}

			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let Echo write the error response so the status is final.
				c.Error(err)
			}

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return nil
		}
	}
}

// routePath prefers the matched route template so path parameters do not
// explode label cardinality.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func success(status int) bool {
	return status >= 200 && status < 300
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
