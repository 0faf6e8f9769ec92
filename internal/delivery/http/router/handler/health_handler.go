package handler

import (
	"net/http"

	"localfarm/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Home handles GET /, a minimal landing response for the API root.
func Home(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"service": "localfarm-api",
		"status":  "running",
	}, "LocalFarm marketplace API")
}

// HealthCheck handles GET /health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status": "ok",
	}, "Service healthy")
}
