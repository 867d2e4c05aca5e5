// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fuelroute/internal/delivery/http/middleware"
	"fuelroute/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TripHandler         *handler.TripHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	tripHandler         *handler.TripHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tripHandler:         params.TripHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Trip planning routes
	tripGroup := e.Group("/trips")
	tripGroup.Use(r.requestIDMiddleware.Process)
	{
		tripGroup.GET("/plan", r.tripHandler.PlanTrip)
	}
}
