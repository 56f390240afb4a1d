package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds the shared struct validator. "notblank" rejects strings
// that are empty or whitespace-only, which the builtin "required" does not.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}
