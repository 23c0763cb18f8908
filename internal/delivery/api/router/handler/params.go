package handler

import (
	domainerrors "crowdmap/internal/domain/errors"
	"crowdmap/internal/validation"

	"github.com/labstack/echo/v4"
)

// pathID reads a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64(name, &id).BindError(); err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidID.WithDetails([]validation.FieldError{{Field: name, Rule: "gt", Param: "0"}})
	}

	return id, nil
}

// bindBody decodes the request body into req and validates it.
func bindBody(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput
	}

	return c.Validate(req)
}
