package handler

import (
	"net/http"

	"crowdmap/internal/delivery/api/response"
	"crowdmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CrowdLevelHandlerParams holds dependencies for CrowdLevelHandler, injected by Fx.
type CrowdLevelHandlerParams struct {
	fx.In

	CrowdMapUC usecase.CrowdMapUsecase
}

// CrowdLevelHandler accepts directly reported crowd level samples.
type CrowdLevelHandler struct {
	crowdUC usecase.CrowdUsecase
}

// NewCrowdLevelHandler is the constructor for CrowdLevelHandler
func NewCrowdLevelHandler(params CrowdLevelHandlerParams) *CrowdLevelHandler {
	return &CrowdLevelHandler{crowdUC: params.CrowdMapUC}
}

// CreateCrowdLevel stores a crowd level sample.
func (h *CrowdLevelHandler) CreateCrowdLevel(c echo.Context) error {
	var input usecase.CreateCrowdLevelInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	sample, err := h.crowdUC.CreateCrowdLevel(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sample)
}
