// Package router defines how HTTP routes are registered for the gate API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"boarding-gate/internal/handler"
)

// RegisterRoutes registers the operational endpoints on the provided Echo
// instance: the health check used by load balancers and the Prometheus
// metrics exposition.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterGate registers the boarding session endpoints under /v1. The
// limiter middleware guards the whole group; pass the no-op limiter when
// rate limiting is disabled.
func RegisterGate(e *echo.Echo, h *handler.GateHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.Use(limiter)
	// Start a boarding session for one flight.
	g.POST("/sessions", h.CreateSession)
	// Inspect boarding progress.
	g.GET("/sessions/:id", h.GetSession)
	// Evaluate one boarding pass scan.
	g.POST("/sessions/:id/scan", h.ScanCode)
	// End boarding and discard the session.
	g.DELETE("/sessions/:id", h.EndSession)
}
