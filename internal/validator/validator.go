package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired  = "is required"
	ErrMinLength = "must be at least %s"
	ErrMaxLength = "must be at most %s"
	ErrOneOf     = "must be one of: %s"
	ErrCountry   = "must be a two-letter country code or a country name"
	ErrInvalid   = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("country", validateCountry)

	return validator
}

// validateCountry accepts either an ISO alpha-2 code or a free-form name made
// of letters, spaces, dots and hyphens.
func validateCountry(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return false
	}

	for _, ch := range value {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case ch == ' ', ch == '.', ch == '-':
		default:
			return false
		}
	}

	return true
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "country":
		return ErrCountry
	default:
		return ErrInvalid
	}
}
