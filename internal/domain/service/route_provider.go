package service

import (
	"context"

	"fuelroute/internal/domain/entity"

	"github.com/paulmach/orb"
)

// RouteProvider defines the interface for the external turn-by-turn routing
// service. Implementations return the full route polyline in direction of
// travel together with the total driving distance in miles.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination orb.Point) (*entity.Route, error)
}
