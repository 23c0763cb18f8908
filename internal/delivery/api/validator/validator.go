// Package validator adapts the shared input validation to echo.Validator.
package validator

import "crowdmap/internal/validation"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validation.Validator
}

// New creates a CustomValidator.
func New() *CustomValidator {
	return &CustomValidator{validator: validation.New()}
}

// Validate checks i against its validate tags. Failures are ErrValidationFailed with field details.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
