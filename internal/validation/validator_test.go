package validation

import (
	"testing"

	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	LocationID int64    `json:"locationId" validate:"required,gt=0"`
	Level      int      `json:"level" validate:"required,oneof=1 2 3"`
	Latitude   *float64 `json:"latitude" validate:"required,latitude"`
	Note       string   `json:"-" validate:"omitempty,max=3"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()
	lat := 40.7

	require.NoError(t, v.Struct(&sampleInput{LocationID: 1, Level: 2, Latitude: &lat}))

	err := v.Struct(&sampleInput{LocationID: 0, Level: 5})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	details, ok := appErr.Details().([]FieldError)
	require.True(t, ok)

	fields := make([]string, 0, len(details))
	for _, d := range details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"locationId", "level", "latitude"}, fields)
}

func TestValidator_OutOfRangeLatitude(t *testing.T) {
	v := New()
	lat := 91.0

	err := v.Struct(&sampleInput{LocationID: 1, Level: 1, Latitude: &lat})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	details := appErr.Details().([]FieldError)
	require.Len(t, details, 1)
	assert.Equal(t, "latitude", details[0].Field)
	assert.Equal(t, "latitude", details[0].Rule)
}

func TestInvalid(t *testing.T) {
	err := Invalid("limit", "min", "1")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
