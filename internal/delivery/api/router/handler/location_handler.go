package handler

import (
	"net/http"

	"crowdmap/internal/delivery/api/response"
	"crowdmap/internal/usecase"
	"crowdmap/internal/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	CrowdMapUC usecase.CrowdMapUsecase
}

// LocationHandler serves locations and the crowd, review and check-in views nested under them.
type LocationHandler struct {
	crowdMapUC usecase.CrowdMapUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{crowdMapUC: params.CrowdMapUC}
}

// GetLocations lists every location with its current crowd level.
func (h *LocationHandler) GetLocations(c echo.Context) error {
	locations, err := h.crowdMapUC.GetLocationsWithCrowd(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// GetLocationsByCategory lists the locations of one category with their current crowd levels.
func (h *LocationHandler) GetLocationsByCategory(c echo.Context) error {
	locations, err := h.crowdMapUC.GetLocationsByCategoryWithCrowd(c.Request().Context(), c.Param("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// GetNearbyLocations lists locations within ?radius meters of ?lat,?lng.
func (h *LocationHandler) GetNearbyLocations(c echo.Context) error {
	var lat, lng float64
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		BindError()
	if err != nil {
		return response.HandleAppError(c, validation.Invalid("lat,lng", "required", ""))
	}

	query := &usecase.NearbyQuery{Latitude: &lat, Longitude: &lng}
	if c.QueryParam("radius") != "" {
		var radius float64
		if err := echo.QueryParamsBinder(c).Float64("radius", &radius).BindError(); err != nil {
			return response.HandleAppError(c, validation.Invalid("radius", "numeric", ""))
		}
		query.RadiusMeters = &radius
	}

	locations, err := h.crowdMapUC.GetNearbyLocations(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// GetLocation returns one location with its current crowd level (null when it has none).
func (h *LocationHandler) GetLocation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	location, err := h.crowdMapUC.GetLocationWithCrowd(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// ResolveLocation returns the known location for the body, or creates it.
// It answers 201 when a location was created and 200 when an existing one matched.
func (h *LocationHandler) ResolveLocation(c echo.Context) error {
	var input usecase.CreateLocationInput
	if err := bindBody(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.crowdMapUC.ResolveLocation(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, out.Location)
}

// GetCrowdHistory returns up to ?limit samples of a location, most recent first.
func (h *LocationHandler) GetCrowdHistory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var limit *int
	if c.QueryParam("limit") != "" {
		var n int
		if err := echo.QueryParamsBinder(c).Int("limit", &n).BindError(); err != nil {
			return response.HandleAppError(c, validation.Invalid("limit", "numeric", ""))
		}
		limit = &n
	}

	history, err := h.crowdMapUC.GetCrowdLevelHistory(c.Request().Context(), id, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// GetReviews returns the reviews of a location with their authors, newest first.
func (h *LocationHandler) GetReviews(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.crowdMapUC.GetReviewsWithAuthors(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// GetCheckIns returns the check-ins reported for a location.
func (h *LocationHandler) GetCheckIns(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	checkIns, err := h.crowdMapUC.GetCheckInsByLocation(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkIns)
}
