package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/school-personnel/internal/model"
)

const albumsTable = "albums"

var albumColumns = []string{"id", "artist_id", "name", "release_date", "track_count"}

type AlbumRepository struct {
	db DBTX
}

func NewAlbumRepository(db DBTX) *AlbumRepository {
	return &AlbumRepository{db: db}
}

// Create fails with a foreign key violation when the artist does not exist.
func (r *AlbumRepository) Create(ctx context.Context, a model.AlbumPayload) (model.Album, error) {
	q := builder.Insert(albumsTable).
		Columns("artist_id", "name", "release_date", "track_count").
		Values(a.ArtistID, a.Name, a.ReleaseDate, a.TrackCount).
		Suffix(returning(albumColumns))

	return queryOne[model.Album](ctx, r.db, albumsTable, q)
}

func (r *AlbumRepository) GetByID(ctx context.Context, id model.ID) (model.Album, error) {
	q := builder.Select(albumColumns...).
		From(albumsTable).
		Where(squirrel.Eq{"id": id})

	return queryOne[model.Album](ctx, r.db, albumsTable, q)
}

func (r *AlbumRepository) List(ctx context.Context) ([]model.Album, error) {
	q := builder.Select(albumColumns...).
		From(albumsTable).
		OrderBy("id")

	return queryAll[model.Album](ctx, r.db, albumsTable, q)
}

// ListByArtist returns the albums of one musician, oldest release first.
func (r *AlbumRepository) ListByArtist(ctx context.Context, artistID model.ID) ([]model.Album, error) {
	q := builder.Select(albumColumns...).
		From(albumsTable).
		Where(squirrel.Eq{"artist_id": artistID}).
		OrderBy("release_date", "id")

	return queryAll[model.Album](ctx, r.db, albumsTable, q)
}

func (r *AlbumRepository) Update(ctx context.Context, id model.ID, a model.AlbumPayload) (model.Album, error) {
	q := builder.Update(albumsTable).
		SetMap(map[string]any{
			"artist_id":    a.ArtistID,
			"name":         a.Name,
			"release_date": a.ReleaseDate,
			"track_count":  a.TrackCount,
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(albumColumns))

	return queryOne[model.Album](ctx, r.db, albumsTable, q)
}

func (r *AlbumRepository) Delete(ctx context.Context, id model.ID) (model.Album, error) {
	q := builder.Delete(albumsTable).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning(albumColumns))

	return queryOne[model.Album](ctx, r.db, albumsTable, q)
}
