package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"fuelroute/internal/delivery/http/validator"
	"fuelroute/internal/domain/entity"
	domainerrors "fuelroute/internal/domain/errors"
	"fuelroute/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTripPlanner struct {
	plan *usecase.TripPlan
	err  error

	gotOrigin      string
	gotDestination string
}

func (f *fakeTripPlanner) PlanTrip(_ context.Context, origin, destination string) (*usecase.TripPlan, error) {
	f.gotOrigin = origin
	f.gotDestination = destination

	if f.err != nil {
		return nil, f.err
	}

	return f.plan, nil
}

func newTestContext(t *testing.T, query url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodGet, "/trips/plan?"+query.Encode(), nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestTripHandler_PlanTrip(t *testing.T) {
	planner := &fakeTripPlanner{plan: &usecase.TripPlan{
		Origin:         "Austin, TX",
		Destination:    "Chicago, IL",
		RegionsCrossed: []string{"TX", "OK", "IL"},
		RefuelPlan:     &entity.RefuelPlan{ID: uuid.New(), Stops: []entity.RefuelStop{}, TotalCost: 61.2},
	}}
	h := NewTripHandler(planner, slog.New(slog.DiscardHandler))

	query := url.Values{}
	query.Set("origin", "Austin, TX")
	query.Set("destination", "Chicago, IL")
	c, rec := newTestContext(t, query)

	require.NoError(t, h.PlanTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Austin, TX", planner.gotOrigin)
	assert.Equal(t, "Chicago, IL", planner.gotDestination)

	var body struct {
		Success bool             `json:"success"`
		Data    usecase.TripPlan `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, []string{"TX", "OK", "IL"}, body.Data.RegionsCrossed)
	assert.InDelta(t, 61.2, body.Data.RefuelPlan.TotalCost, 1e-9)
}

func TestTripHandler_PlanTrip_MissingParams(t *testing.T) {
	planner := &fakeTripPlanner{}
	h := NewTripHandler(planner, slog.New(slog.DiscardHandler))

	query := url.Values{}
	query.Set("origin", "Austin, TX")
	c, rec := newTestContext(t, query)

	require.NoError(t, h.PlanTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, planner.gotOrigin)
}

func TestTripHandler_PlanTrip_UsecaseErrorBubblesUp(t *testing.T) {
	planner := &fakeTripPlanner{err: domainerrors.ErrNoCandidateStations}
	h := NewTripHandler(planner, slog.New(slog.DiscardHandler))

	query := url.Values{}
	query.Set("origin", "Austin, TX")
	query.Set("destination", "Chicago, IL")
	c, _ := newTestContext(t, query)

	err := h.PlanTrip(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoCandidateStations)
}
