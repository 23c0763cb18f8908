// Package validation checks struct-tagged input with go-playground/validator and
// reports failures as ErrValidationFailed carrying per-field details.
package validation

import (
	"reflect"
	"strings"

	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Validator wraps a validator.Validate configured to report JSON field names.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator. The underlying validator caches struct metadata, so
// one instance should be shared.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	return &Validator{validate: validate}
}

// Struct validates s. Rule violations come back as ErrValidationFailed with a
// []FieldError detail; anything else (such as a non-struct argument) is returned wrapped.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate input")
	}

	details := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return domainerrors.ErrValidationFailed.WithDetails(details)
}

// Invalid builds a validation failure for a single field outside of struct tags.
func Invalid(field, rule, param string) error {
	return domainerrors.ErrValidationFailed.WithDetails([]FieldError{{Field: field, Rule: rule, Param: param}})
}
