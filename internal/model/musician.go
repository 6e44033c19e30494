package model

import (
	"fmt"
	"time"

	"github.com/deppfellow/school-personnel/internal/validation"
)

type Musician struct {
	ID         ID     `json:"id" db:"id"`
	FirstName  string `json:"first_name" db:"first_name"`
	LastName   string `json:"last_name" db:"last_name"`
	Instrument string `json:"instrument" db:"instrument"`
}

func (m Musician) String() string {
	return fmt.Sprintf("%s %s", m.FirstName, m.LastName)
}

type MusicianPayload struct {
	FirstName  string `json:"first_name" validate:"required,notblank,max=50"`
	LastName   string `json:"last_name" validate:"required,notblank,max=50"`
	Instrument string `json:"instrument" validate:"required,notblank,max=100"`
}

func (p MusicianPayload) Validate() error {
	return validation.Struct(p)
}

// Album belongs to exactly one Musician and is removed with it.
type Album struct {
	ID          ID        `json:"id" db:"id"`
	ArtistID    ID        `json:"artist_id" db:"artist_id"`
	Name        string    `json:"name" db:"name"`
	ReleaseDate time.Time `json:"release_date" db:"release_date"`
	TrackCount  int       `json:"track_count" db:"track_count"`
}

func (a Album) String() string {
	return a.Name
}

type AlbumPayload struct {
	ArtistID    ID        `json:"artist_id" validate:"required,gt=0"`
	Name        string    `json:"name" validate:"required,notblank,max=100"`
	ReleaseDate time.Time `json:"release_date" validate:"required"`
	TrackCount  int       `json:"track_count" validate:"min=0"`
}

func (p AlbumPayload) Validate() error {
	return validation.Struct(p)
}
