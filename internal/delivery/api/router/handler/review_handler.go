package handler

import (
	"net/http"

	"crowdmap/internal/delivery/api/response"
	"crowdmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	CrowdMapUC usecase.CrowdMapUsecase
}

// ReviewHandler accepts location reviews.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.CrowdMapUC}
}

// CreateReview stores a review.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var input usecase.CreateReviewInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}
