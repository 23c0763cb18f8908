package handler

import (
	"net/http"

	"crowdmap/internal/delivery/api/response"
	"crowdmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	CrowdMapUC usecase.CrowdMapUsecase
}

// UserHandler serves users and the favorites and check-ins nested under them.
type UserHandler struct {
	crowdMapUC usecase.CrowdMapUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{crowdMapUC: params.CrowdMapUC}
}

// CreateUser registers a user. The password is never echoed back.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.crowdMapUC.CreateUser(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// GetUser returns one user.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.crowdMapUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// GetFavoriteLocations returns the user's favorite locations with their current crowd levels.
func (h *UserHandler) GetFavoriteLocations(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	locations, err := h.crowdMapUC.GetFavoriteLocationsWithCrowd(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// GetCheckIns returns the check-ins reported by the user.
func (h *UserHandler) GetCheckIns(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	checkIns, err := h.crowdMapUC.GetCheckInsByUser(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkIns)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
