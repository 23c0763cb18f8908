package handler

import (
	"net/http"

	"crowdmap/internal/delivery/api/response"
	"crowdmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	CrowdMapUC usecase.CrowdMapUsecase
}

// FavoriteHandler adds and removes favorites. Both operations are idempotent.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: params.CrowdMapUC}
}

// CreateFavorite answers with the new or already existing favorite.
func (h *FavoriteHandler) CreateFavorite(c echo.Context) error {
	var input usecase.FavoriteInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.CreateFavorite(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite)
}

// DeleteFavorite removes the favorite named in the body.
func (h *FavoriteHandler) DeleteFavorite(c echo.Context) error {
	var input usecase.FavoriteInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoriteUC.DeleteFavorite(c.Request().Context(), &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
