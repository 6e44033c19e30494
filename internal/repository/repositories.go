package repository

import (
	"github.com/deppfellow/school-personnel/internal/server"
)

// Repositories groups one repository per table.
type Repositories struct {
	Professor *ProfessorRepository
	Musician  *MusicianRepository
	Album     *AlbumRepository
	Person    *PersonRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithDB(s.DB.Pool)
}

// NewRepositoriesWithDB builds every repository on db.
func NewRepositoriesWithDB(db DBTX) *Repositories {
	return &Repositories{
		Professor: NewProfessorRepository(db),
		Musician:  NewMusicianRepository(db),
		Album:     NewAlbumRepository(db),
		Person:    NewPersonRepository(db),
	}
}
