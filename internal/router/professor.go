package router

import (
	"net/http"

	"github.com/deppfellow/school-personnel/internal/handler"
	"github.com/labstack/echo/v4"
)

// readMethods are served by every read-only route.
var readMethods = []string{http.MethodGet, http.MethodHead}

// matcher is satisfied by both *echo.Echo and *echo.Group.
type matcher interface {
	Match(methods []string, path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) []*echo.Route
}

// read registers h for GET and HEAD under one route name.
func read(m matcher, path string, h echo.HandlerFunc, name string) {
	for _, route := range m.Match(readMethods, path, h) {
		route.Name = name
	}
}

// registerProfessorRoutes maps the professor API. Each path accepts a
// single method (GET paths also answer HEAD); anything else is answered
// with 405.
func registerProfessorRoutes(r *echo.Echo, h *handler.Handlers) {
	p := h.Professor

	read(r, "/", p.IndexHandler(), "index")

	professors := r.Group("/professor")
	read(professors, "/", p.ListHandler(), "professor.list")
	read(professors, "/:id/", p.GetHandler(), "professor.get")
	professors.POST("/add/", p.CreateHandler()).Name = "professor.create"
	professors.PUT("/edit/:id/", p.UpdateHandler()).Name = "professor.update"
	professors.DELETE("/delete/:id/", p.DeleteHandler()).Name = "professor.delete"
}
