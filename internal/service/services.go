// Package service contains the business layer.
//
// It sits between the handler and repository layers: handlers pass it
// validated payloads and it calls the repositories that persist them.
package service

import (
	"github.com/deppfellow/school-personnel/internal/repository"
)

type Services struct {
	Professor *ProfessorService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Professor: NewProfessorService(repos.Professor),
	}
}
