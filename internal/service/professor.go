package service

import (
	"context"

	"github.com/deppfellow/school-personnel/internal/model"
	"github.com/rs/zerolog"
)

// ProfessorStore persists professors. *repository.ProfessorRepository
// implements it against PostgreSQL.
type ProfessorStore interface {
	Create(ctx context.Context, p model.ProfessorPayload) (model.Professor, error)
	GetByID(ctx context.Context, id model.ID) (model.Professor, error)
	List(ctx context.Context) ([]model.Professor, error)
	Update(ctx context.Context, id model.ID, p model.ProfessorPayload) (model.Professor, error)
	Delete(ctx context.Context, id model.ID) (model.Professor, error)
}

type ProfessorService struct {
	store ProfessorStore
}

func NewProfessorService(store ProfessorStore) *ProfessorService {
	return &ProfessorService{store: store}
}

func (s *ProfessorService) ListProfessors(ctx context.Context) ([]model.Professor, error) {
	return s.store.List(ctx)
}

func (s *ProfessorService) GetProfessor(ctx context.Context, id model.ID) (model.Professor, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ProfessorService) CreateProfessor(ctx context.Context, payload model.ProfessorPayload) (model.Professor, error) {
	professor, err := s.store.Create(ctx, payload)
	if err != nil {
		return model.Professor{}, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("professor_id", professor.ID).
		Msg("professor created")

	return professor, nil
}

// UpdateProfessor overwrites all fields of an existing professor.
func (s *ProfessorService) UpdateProfessor(ctx context.Context, id model.ID, payload model.ProfessorPayload) (model.Professor, error) {
	professor, err := s.store.Update(ctx, id, payload)
	if err != nil {
		return model.Professor{}, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("professor_id", professor.ID).
		Msg("professor updated")

	return professor, nil
}

func (s *ProfessorService) DeleteProfessor(ctx context.Context, id model.ID) (model.Professor, error) {
	professor, err := s.store.Delete(ctx, id)
	if err != nil {
		return model.Professor{}, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("professor_id", professor.ID).
		Msg("professor deleted")

	return professor, nil
}
