package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	deliverymiddleware "storefront/internal/delivery/middleware"
	"storefront/internal/infra/metrics"
)

// MetricsMiddleware records request counts and latencies per route.
type MetricsMiddleware struct {
	recorder *metrics.Recorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder *metrics.Recorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle observes the request once the handler returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		status := c.Response().Status
		if err != nil {
			status = deliverymiddleware.StatusOf(err)
		}
		m.recorder.ObserveHTTP(c.Request().Method, route, status, time.Since(start))

		return err
	}
}
