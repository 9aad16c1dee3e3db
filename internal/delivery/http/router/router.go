// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	RestaurantHandler   *handler.RestaurantHandler
	ReviewHandler       *handler.ReviewHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	restaurantHandler   *handler.RestaurantHandler
	reviewHandler       *handler.ReviewHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		restaurantHandler:   params.RestaurantHandler,
		reviewHandler:       params.ReviewHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/:id", r.userHandler.GetByID)
		userGroup.GET("/email/:email", r.userHandler.GetByEmail)
		userGroup.POST("", r.userHandler.Create)
		userGroup.PUT("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}

	restaurantGroup := e.Group("/restaurants")
	{
		restaurantGroup.GET("", r.restaurantHandler.List)
		restaurantGroup.GET("/:id", r.restaurantHandler.GetByID)
		restaurantGroup.POST("", r.restaurantHandler.Create)
		restaurantGroup.PUT("/:id", r.restaurantHandler.Update)
		restaurantGroup.DELETE("/:id", r.restaurantHandler.Delete)
	}

	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("", r.reviewHandler.List)
		reviewGroup.GET("/:id", r.reviewHandler.GetByID)
		reviewGroup.GET("/user/:userId", r.reviewHandler.GetByUserID)
		reviewGroup.GET("/restaurant/:restaurantId", r.reviewHandler.GetByRestaurantID)
		reviewGroup.POST("", r.reviewHandler.Create)
		reviewGroup.PUT("/:id", r.reviewHandler.Update)
		reviewGroup.DELETE("/:id", r.reviewHandler.Delete)
	}
}
