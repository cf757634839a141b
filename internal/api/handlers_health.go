// handlers_health.go - Health check handler
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HandleHealth returns server health status. No side effects, no auth.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
