package handler

import (
	"net/http"

	"crowdmap/internal/delivery/api/response"
	"crowdmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckInHandlerParams holds dependencies for CheckInHandler, injected by Fx.
type CheckInHandlerParams struct {
	fx.In

	CrowdMapUC usecase.CrowdMapUsecase
}

// CheckInHandler records user check-ins.
type CheckInHandler struct {
	checkInUC usecase.CheckInUsecase
}

// NewCheckInHandler is the constructor for CheckInHandler
func NewCheckInHandler(params CheckInHandlerParams) *CheckInHandler {
	return &CheckInHandler{checkInUC: params.CrowdMapUC}
}

// CreateCheckIn stores a check-in and answers with it and the crowd level sample it produced.
func (h *CheckInHandler) CreateCheckIn(c echo.Context) error {
	var input usecase.CreateCheckInInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.checkInUC.CreateCheckIn(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}
