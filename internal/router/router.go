// Package router builds the echo router: it installs the middleware
// chain and maps every route to its handler.
package router

import (
	"strings"

	"github.com/deppfellow/school-personnel/internal/handler"
	"github.com/deppfellow/school-personnel/internal/middleware"
	"github.com/deppfellow/school-personnel/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Routes are registered with a trailing slash; requests without one
	// are rewritten before routing.
	router.Pre(echoMiddleware.AddTrailingSlashWithConfig(echoMiddleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/static/")
		},
	}))

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.RateLimit.Limiter(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerProfessorRoutes(router, h)

	return router
}
