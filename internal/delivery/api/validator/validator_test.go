package validator

import (
	"testing"

	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favoriteRequest struct {
	UserID     int64 `json:"userId" validate:"required,gt=0"`
	LocationID int64 `json:"locationId" validate:"required,gt=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	var v echo.Validator = New()

	require.NoError(t, v.Validate(&favoriteRequest{UserID: 1, LocationID: 2}))

	err := v.Validate(&favoriteRequest{UserID: 1})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	details, ok := appErr.Details().([]validation.FieldError)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "locationId", details[0].Field)
	assert.Equal(t, "required", details[0].Rule)
}
