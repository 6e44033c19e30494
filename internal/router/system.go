package router

import (
	"github.com/deppfellow/school-personnel/internal/handler"
	"github.com/deppfellow/school-personnel/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API: health status and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	read(r, "/status/", h.Health.CheckHealth, "status")

	r.StaticFS("/static", static.Files).Name = "static"

	read(r, "/docs/", h.OpenAPI.ServeOpenAPIUI, "docs")
}
