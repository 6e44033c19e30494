// Package validation binds request data and validates it.
//
// It uses the `validator` library to enforce rules (like required
// fields or maximum lengths) defined in struct tags and turns
// validation failures into field errors the client can understand.
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator. Field names in its errors are
// taken from json (or path param) tags so they match what clients send.
// Besides the built-in tags it understands `notblank`, which rejects
// strings made only of whitespace.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				name = fld.Tag.Get("param")
			}
			return name
		})
	})
	return validate
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return Validator().Struct(s)
}
