// Package handler is the first layer after the router.
//
// It parses requests, validates input through the validation
// package, and calls the service layer. It is the boundary between
// HTTP and the business logic.
package handler

import (
	"github.com/deppfellow/school-personnel/internal/server"
	"github.com/deppfellow/school-personnel/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Professor *ProfessorHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Professor: NewProfessorHandler(s, services.Professor),
	}
}
