package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/school-personnel/internal/model"
)

const professorsTable = "professors"

var professorColumns = []string{"id", "first_name", "last_name", "career"}

type ProfessorRepository struct {
	db DBTX
}

func NewProfessorRepository(db DBTX) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

func (r *ProfessorRepository) Create(ctx context.Context, p model.ProfessorPayload) (model.Professor, error) {
	q := builder.Insert(professorsTable).
		Columns("first_name", "last_name", "career").
		Values(p.FirstName, p.LastName, p.Career).
		Suffix(returning(professorColumns))

	return queryOne[model.Professor](ctx, r.db, professorsTable, q)
}

func (r *ProfessorRepository) GetByID(ctx context.Context, id model.ID) (model.Professor, error) {
	q := builder.Select(professorColumns...).
		From(professorsTable).
		Where(squirrel.Eq{"id": id})

	return queryOne[model.Professor](ctx, r.db, professorsTable, q)
}

func (r *ProfessorRepository) List(ctx context.Context) ([]model.Professor, error) {
	q := builder.Select(professorColumns...).
		From(professorsTable).
		OrderBy("id")

	return queryAll[model.Professor](ctx, r.db, professorsTable, q)
}

// Update overwrites every mutable column of the professor.
func (r *ProfessorRepository) Update(ctx context.Context, id model.ID, p model.ProfessorPayload) (model.Professor, error) {
	q := builder.Update(professorsTable).
		SetMap(map[string]any{
			"first_name": p.FirstName,
			"last_name":  p.LastName,
			"career":     p.Career,
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(professorColumns))

	return queryOne[model.Professor](ctx, r.db, professorsTable, q)
}

// Delete removes the professor and returns the row as it was.
func (r *ProfessorRepository) Delete(ctx context.Context, id model.ID) (model.Professor, error) {
	q := builder.Delete(professorsTable).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(professorColumns))

	return queryOne[model.Professor](ctx, r.db, professorsTable, q)
}
