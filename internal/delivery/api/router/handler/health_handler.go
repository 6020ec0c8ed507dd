package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes. The body is kept flat for load balancers.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Admin Dashboard API is running"})
}
