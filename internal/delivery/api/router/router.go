// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crowdmap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler   *handler.LocationHandler
	CrowdLevelHandler *handler.CrowdLevelHandler
	CheckInHandler    *handler.CheckInHandler
	ReviewHandler     *handler.ReviewHandler
	FavoriteHandler   *handler.FavoriteHandler
	UserHandler       *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler   *handler.LocationHandler
	crowdLevelHandler *handler.CrowdLevelHandler
	checkInHandler    *handler.CheckInHandler
	reviewHandler     *handler.ReviewHandler
	favoriteHandler   *handler.FavoriteHandler
	userHandler       *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:   params.LocationHandler,
		crowdLevelHandler: params.CrowdLevelHandler,
		checkInHandler:    params.CheckInHandler,
		reviewHandler:     params.ReviewHandler,
		favoriteHandler:   params.FavoriteHandler,
		userHandler:       params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	locationsGroup := api.Group("/locations")
	{
		locationsGroup.GET("", r.locationHandler.GetLocations)
		locationsGroup.POST("", r.locationHandler.ResolveLocation)
		locationsGroup.GET("/nearby", r.locationHandler.GetNearbyLocations)
		locationsGroup.GET("/category/:category", r.locationHandler.GetLocationsByCategory)
		locationsGroup.GET("/:id", r.locationHandler.GetLocation)
		locationsGroup.GET("/:id/crowd-history", r.locationHandler.GetCrowdHistory)
		locationsGroup.GET("/:id/reviews", r.locationHandler.GetReviews)
		locationsGroup.GET("/:id/check-ins", r.locationHandler.GetCheckIns)
	}

	api.POST("/crowd-levels", r.crowdLevelHandler.CreateCrowdLevel)
	api.POST("/check-ins", r.checkInHandler.CreateCheckIn)
	api.POST("/reviews", r.reviewHandler.CreateReview)

	favoritesGroup := api.Group("/favorites")
	{
		favoritesGroup.POST("", r.favoriteHandler.CreateFavorite)
		favoritesGroup.DELETE("", r.favoriteHandler.DeleteFavorite)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.GET("/:id/favorites", r.userHandler.GetFavoriteLocations)
		usersGroup.GET("/:id/check-ins", r.userHandler.GetCheckIns)
	}
}
