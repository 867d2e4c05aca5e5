// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"fuelroute/internal/delivery/http/response"
	"fuelroute/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlanTripRequest is the query contract for trip planning.
type PlanTripRequest struct {
	Origin      string `query:"origin" validate:"required"`
	Destination string `query:"destination" validate:"required"`
}

// TripHandler holds dependencies for trip-planning handlers.
type TripHandler struct {
	uc     usecase.TripPlannerUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler, injected by Fx.
func NewTripHandler(uc usecase.TripPlannerUsecase, logger *slog.Logger) *TripHandler {
	return &TripHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlanTrip handles the trip planning request.
func (h *TripHandler) PlanTrip(c echo.Context) error {
	var input PlanTripRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid trip planning input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Both origin and destination are required")
	}

	output, err := h.uc.PlanTrip(c.Request().Context(), input.Origin, input.Destination)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Trip planned successfully")
}
