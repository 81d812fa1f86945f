package handler

import (
	"net/http"

	"restops/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a liveness probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
