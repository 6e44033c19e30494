package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/school-personnel/internal/model"
)

const musiciansTable = "musicians"

var musicianColumns = []string{"id", "first_name", "last_name", "instrument"}

type MusicianRepository struct {
	db DBTX
}

func NewMusicianRepository(db DBTX) *MusicianRepository {
	return &MusicianRepository{db: db}
}

func (r *MusicianRepository) Create(ctx context.Context, m model.MusicianPayload) (model.Musician, error) {
	q := builder.Insert(musiciansTable).
		Columns("first_name", "last_name", "instrument").
		Values(m.FirstName, m.LastName, m.Instrument).
		Suffix(returning(musicianColumns))

	return queryOne[model.Musician](ctx, r.db, musiciansTable, q)
}

func (r *MusicianRepository) GetByID(ctx context.Context, id model.ID) (model.Musician, error) {
	q := builder.Select(musicianColumns...).
		From(musiciansTable).
		Where(squirrel.Eq{"id": id})

	return queryOne[model.Musician](ctx, r.db, musiciansTable, q)
}

func (r *MusicianRepository) List(ctx context.Context) ([]model.Musician, error) {
	q := builder.Select(musicianColumns...).
		From(musiciansTable).
		OrderBy("id")

	return queryAll[model.Musician](ctx, r.db, musiciansTable, q)
}

func (r *MusicianRepository) Update(ctx context.Context, id model.ID, m model.MusicianPayload) (model.Musician, error) {
	q := builder.Update(musiciansTable).
		SetMap(map[string]any{
			"first_name": m.FirstName,
			"last_name":  m.LastName,
			"instrument": m.Instrument,
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(musicianColumns))

	return queryOne[model.Musician](ctx, r.db, musiciansTable, q)
}

// Delete removes the musician. Their albums go with them through the
// ON DELETE CASCADE foreign key.
func (r *MusicianRepository) Delete(ctx context.Context, id model.ID) (model.Musician, error) {
	q := builder.Delete(musiciansTable).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(musicianColumns))

	return queryOne[model.Musician](ctx, r.db, musiciansTable, q)
}
