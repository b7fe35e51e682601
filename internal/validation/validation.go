// Package validation runs struct-tag validation for the document models.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// required accepts whitespace-only strings, so identifier fields carry an
	// extra notblank tag.
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Struct validates obj against its validate tags and maps any violation to
// ErrInvalidArgument so services can fail fast before touching their store.
func Struct(obj any) error {
	if err := validate.Struct(obj); err != nil {
		return fmt.Errorf("%w: %s", models.ErrInvalidArgument, firstViolation(err))
	}
	return nil
}

func firstViolation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	if verrs[0].Tag() == "notblank" {
		return fmt.Sprintf("field %s must not be blank", verrs[0].Field())
	}
	return fmt.Sprintf("field %s is required", verrs[0].Field())
}
