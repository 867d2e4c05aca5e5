package impl

import (
	"context"
	"log/slog"
	"strings"

	"fuelroute/config"
	domainerrors "fuelroute/internal/domain/errors"
	"fuelroute/internal/domain/service"
	"fuelroute/internal/usecase"
)

type tripService struct {
	geocoder  service.Geocoder
	routes    service.RouteProvider
	regions   usecase.RegionDetectorSource
	stations  usecase.StationSource
	optimizer usecase.RefuelOptimizer
	config    *config.Config
	logger    *slog.Logger
}

// NewTripService creates a new trip planner instance
func NewTripService(
	geocoder service.Geocoder,
	routes service.RouteProvider,
	regions usecase.RegionDetectorSource,
	stations usecase.StationSource,
	optimizer usecase.RefuelOptimizer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TripPlannerUsecase {
	// If Regions is not configured, provide a default configuration
	if cfg.Regions == nil {
		cfg.Regions = &config.RegionsConfig{
			GeoJSONPath:       "data/us_states.geojson",
			CodeProperty:      "abbr",
			SimplifyTolerance: 0.1,
		}
	}

	return &tripService{
		geocoder:  geocoder,
		routes:    routes,
		regions:   regions,
		stations:  stations,
		optimizer: optimizer,
		config:    cfg,
		logger:    logger,
	}
}

// PlanTrip geocodes both addresses, fetches the route, detects the regions
// crossed and optimizes refueling stops along the way.
func (s *tripService) PlanTrip(ctx context.Context, origin, destination string) (*usecase.TripPlan, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("origin and destination are required")
	}

	originPoint, err := s.geocoder.Geocode(ctx, origin)
	if err != nil {
		return nil, err
	}

	destinationPoint, err := s.geocoder.Geocode(ctx, destination)
	if err != nil {
		return nil, err
	}

	route, err := s.routes.Route(ctx, originPoint, destinationPoint)
	if err != nil {
		return nil, err
	}

	detector, err := s.regions.Detector(s.config.Regions.GeoJSONPath, s.config.Regions.SimplifyTolerance)
	if err != nil {
		return nil, domainerrors.ErrRegionData.WithDetails(err.Error())
	}

	crossed := detector.Traverse(route.Points)

	s.logger.Debug("route traversal detected",
		slog.Float64("distance_miles", route.DistanceMiles),
		slog.Int("route_points", len(route.Points)),
		slog.Any("regions", crossed),
	)

	stations, err := s.stations.Load()
	if err != nil {
		return nil, domainerrors.ErrStationData.WithDetails(err.Error())
	}

	plan, err := s.optimizer.Optimize(*route, crossed, stations)
	if err != nil {
		return nil, err
	}

	return &usecase.TripPlan{
		Origin:         origin,
		Destination:    destination,
		Route:          *route,
		RegionsCrossed: crossed,
		RefuelPlan:     plan,
	}, nil
}
