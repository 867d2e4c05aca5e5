package usecase

import (
	"context"

	"fuelroute/internal/domain/entity"

	"github.com/paulmach/orb"
)

// RegionDetector reports the ordered, adjacency-deduplicated sequence of
// region codes a route polyline crosses.
type RegionDetector interface {
	Traverse(route []orb.Point) []string
}

// RegionDetectorSource yields the detector for a boundary dataset,
// memoized per source path and simplification tolerance.
type RegionDetectorSource interface {
	Detector(path string, tolerance float64) (RegionDetector, error)
}

// StationSource loads the fuel-price reference table.
type StationSource interface {
	Load() ([]entity.FuelStation, error)
}

// RefuelOptimizer solves the fuel purchase allocation for a route.
type RefuelOptimizer interface {
	Optimize(route entity.Route, regionsCrossed []string, stations []entity.FuelStation) (*entity.RefuelPlan, error)
}

// TripPlan is the complete planning result for one origin/destination pair.
type TripPlan struct {
	Origin         string             `json:"origin"`
	Destination    string             `json:"destination"`
	Route          entity.Route       `json:"route"`
	RegionsCrossed []string           `json:"regions_crossed"`
	RefuelPlan     *entity.RefuelPlan `json:"refuel_plan"`
}

// TripPlannerUsecase defines the interface for end-to-end trip planning:
// geocode both addresses, fetch the route, detect crossed regions, and
// optimize refueling stops.
type TripPlannerUsecase interface {
	PlanTrip(ctx context.Context, origin, destination string) (*TripPlan, error)
}
