package model

import (
	"github.com/deppfellow/school-personnel/internal/validation"
)

// ShirtSize is a one-letter size code.
type ShirtSize string

const (
	ShirtSizeSmall  ShirtSize = "S"
	ShirtSizeMedium ShirtSize = "M"
	ShirtSizeLarge  ShirtSize = "L"
)

var shirtSizeLabels = map[ShirtSize]string{
	ShirtSizeSmall:  "Small",
	ShirtSizeMedium: "Medium",
	ShirtSizeLarge:  "Large",
}

// Valid reports whether s is one of the known codes.
func (s ShirtSize) Valid() bool {
	_, ok := shirtSizeLabels[s]
	return ok
}

// Label returns the human-readable size, or "" for unknown codes.
func (s ShirtSize) Label() string {
	return shirtSizeLabels[s]
}

type Person struct {
	ID        ID        `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ShirtSize ShirtSize `json:"shirt_size" db:"shirt_size"`
}

func (p Person) String() string {
	return p.Name
}

type PersonPayload struct {
	Name      string    `json:"name" validate:"required,notblank,max=60"`
	ShirtSize ShirtSize `json:"shirt_size" validate:"required,oneof=S M L"`
}

// Validate checks the name and that the size is one of the known codes.
func (p PersonPayload) Validate() error {
	return validation.Struct(p)
}
