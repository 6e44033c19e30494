package model

import (
	"fmt"

	"github.com/deppfellow/school-personnel/internal/validation"
)

// Professor is a member of the teaching staff. List and detail responses
// share this JSON shape.
type Professor struct {
	ID        ID     `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Career    string `json:"career" db:"career"`
}

// String is the display form used in confirmation messages.
func (p Professor) String() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// ProfessorPayload carries every mutable field of a Professor. Create and
// update both require the full record.
type ProfessorPayload struct {
	FirstName string `json:"first_name" validate:"required,notblank,max=50"`
	LastName  string `json:"last_name" validate:"required,notblank,max=50"`
	Career    string `json:"career" validate:"required,notblank,max=100"`
}

// Professor builds the record the payload describes.
func (p ProfessorPayload) Professor(id ID) Professor {
	return Professor{
		ID:        id,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Career:    p.Career,
	}
}

func (p ProfessorPayload) Validate() error {
	return validation.Struct(p)
}
