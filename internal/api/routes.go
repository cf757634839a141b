// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all API routes with the Echo instance.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.HandleHealth)

	apiGroup := e.Group("/api")
	apiGroup.GET("/health", h.HandleHealth)
	apiGroup.POST("/ask", h.HandleAsk)
}
