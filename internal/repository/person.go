package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/school-personnel/internal/model"
)

const peopleTable = "people"

var personColumns = []string{"id", "name", "shirt_size"}

type PersonRepository struct {
	db DBTX
}

func NewPersonRepository(db DBTX) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(ctx context.Context, p model.PersonPayload) (model.Person, error) {
	q := builder.Insert(peopleTable).
		Columns("name", "shirt_size").
		Values(p.Name, string(p.ShirtSize)).
		Suffix(returning(personColumns))

	return queryOne[model.Person](ctx, r.db, peopleTable, q)
}

func (r *PersonRepository) GetByID(ctx context.Context, id model.ID) (model.Person, error) {
	q := builder.Select(personColumns...).
		From(peopleTable).
		Where(squirrel.Eq{"id": id})

	return queryOne[model.Person](ctx, r.db, peopleTable, q)
}

func (r *PersonRepository) List(ctx context.Context) ([]model.Person, error) {
	q := builder.Select(personColumns...).
		From(peopleTable).
		OrderBy("id")

	return queryAll[model.Person](ctx, r.db, peopleTable, q)
}

func (r *PersonRepository) Update(ctx context.Context, id model.ID, p model.PersonPayload) (model.Person, error) {
	q := builder.Update(peopleTable).
		SetMap(map[string]any{
			"name":       p.Name,
			"shirt_size": string(p.ShirtSize),
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(personColumns))

	return queryOne[model.Person](ctx, r.db, peopleTable, q)
}

func (r *PersonRepository) Delete(ctx context.Context, id model.ID) (model.Person, error) {
	q := builder.Delete(peopleTable).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(personColumns))

	return queryOne[model.Person](ctx, r.db, peopleTable, q)
}
