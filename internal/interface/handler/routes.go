package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the API, health and metrics endpoints on e
func RegisterRoutes(e *echo.Echo, scans *ScanHandler, suggestions *SuggestionHandler, flights *FlightHandler, gatherer prometheus.Gatherer) {
	api := e.Group("/api/v1")
	api.POST("/scans", scans.Scan)
	api.GET("/scans", scans.RecentScans)
	api.GET("/suggestions", suggestions.Suggestions)
	api.GET("/suggestions/:field/values", suggestions.UniqueValues)
	api.POST("/flights", flights.Submit)

	e.GET("/health", HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
