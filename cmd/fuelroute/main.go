package main

import (
	"context"
	"log/slog"
	"os"

	"fuelroute/config"
	"fuelroute/internal/delivery"
	"fuelroute/internal/delivery/http"
	"fuelroute/internal/delivery/http/middleware"
	"fuelroute/internal/delivery/http/router/handler"
	"fuelroute/internal/domain/service"
	"fuelroute/internal/infra/geocode"
	logs "fuelroute/internal/infra/log"
	"fuelroute/internal/infra/planner"
	"fuelroute/internal/infra/refdata"
	"fuelroute/internal/infra/routing/osrm"
	"fuelroute/internal/usecase"
	"fuelroute/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newGeocoder,
			newRouteProvider,
			newRegionSource,
			newStationSource,
			newOptimizer,
		),
	)
}

// newGeocoder creates the address resolver with dependency injection
func newGeocoder(cfg *config.Config) service.Geocoder {
	return geocode.NewNominatimGeocoder(cfg.Geocoder)
}

// newRouteProvider creates the road routing client with dependency injection
func newRouteProvider(cfg *config.Config) service.RouteProvider {
	return osrm.NewClient(cfg.Routing)
}

// newRegionSource creates the region boundary provider with dependency injection
func newRegionSource(cfg *config.Config) usecase.RegionDetectorSource {
	return refdata.NewRegionProvider(cfg.Regions)
}

// newStationSource creates the fuel station loader with dependency injection
func newStationSource(cfg *config.Config) usecase.StationSource {
	if cfg.Stations == nil {
		// Use default values if not configured
		return refdata.NewStationLoader("data/fuel_stations.csv")
	}

	return refdata.NewStationLoader(cfg.Stations.CSVPath)
}

// newOptimizer creates the refueling optimizer with dependency injection
func newOptimizer(cfg *config.Config) usecase.RefuelOptimizer {
	return planner.NewOptimizer(cfg.Planner)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTripService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTripHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
