package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/deppfellow/school-personnel/internal/model"
	"github.com/deppfellow/school-personnel/internal/sqlerr"
)

// ProfessorStore is an in-memory professor store with database-like
// semantics: sequential ids, full overwrites and not-found errors that
// map to 404.
type ProfessorStore struct {
	mu     sync.Mutex
	nextID model.ID
	rows   map[model.ID]model.Professor

	// Err, when set, is returned by every call.
	Err error
}

func NewProfessorStore(seed ...model.ProfessorPayload) *ProfessorStore {
	s := &ProfessorStore{rows: make(map[model.ID]model.Professor)}
	for _, p := range seed {
		_, _ = s.Create(context.Background(), p)
	}
	return s
}

func (s *ProfessorStore) Create(_ context.Context, p model.ProfessorPayload) (model.Professor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return model.Professor{}, s.Err
	}

	s.nextID++
	professor := p.Professor(s.nextID)
	s.rows[professor.ID] = professor
	return professor, nil
}

func (s *ProfessorStore) GetByID(_ context.Context, id model.ID) (model.Professor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return model.Professor{}, s.Err
	}

	professor, ok := s.rows[id]
	if !ok {
		return model.Professor{}, sqlerr.NotFound("professors")
	}
	return professor, nil
}

func (s *ProfessorStore) List(_ context.Context) ([]model.Professor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	list := make([]model.Professor, 0, len(s.rows))
	for _, professor := range s.rows {
		list = append(list, professor)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *ProfessorStore) Update(_ context.Context, id model.ID, p model.ProfessorPayload) (model.Professor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return model.Professor{}, s.Err
	}

	if _, ok := s.rows[id]; !ok {
		return model.Professor{}, sqlerr.NotFound("professors")
	}
	professor := p.Professor(id)
	s.rows[id] = professor
	return professor, nil
}

func (s *ProfessorStore) Delete(_ context.Context, id model.ID) (model.Professor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return model.Professor{}, s.Err
	}

	professor, ok := s.rows[id]
	if !ok {
		return model.Professor{}, sqlerr.NotFound("professors")
	}
	delete(s.rows, id)
	return professor, nil
}

// Len reports how many professors are stored.
func (s *ProfessorStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}
