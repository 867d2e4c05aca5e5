// Package osrm implements the RouteProvider port against an OSRM
// /route/v1 endpoint.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fuelroute/config"
	"fuelroute/internal/domain/entity"
	domainerrors "fuelroute/internal/domain/errors"
	"fuelroute/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://router.project-osrm.org"
	defaultProfile = "driving"
	defaultTimeout = 15 * time.Second

	// metersToMiles converts OSRM's meter distances to miles.
	metersToMiles = 0.000621371
)

type client struct {
	baseURL string
	profile string
	http    *http.Client
}

// NewClient creates an OSRM routing client.
func NewClient(cfg *config.RoutingConfig) service.RouteProvider {
	baseURL := defaultBaseURL
	profile := defaultProfile
	timeout := defaultTimeout

	if cfg != nil {
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		if cfg.Profile != "" {
			profile = cfg.Profile
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &client{
		baseURL: baseURL,
		profile: profile,
		http:    &http.Client{Timeout: timeout},
	}
}

// routeResponse is the subset of the OSRM response we consume.
type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
	} `json:"routes"`
}

// Route fetches the full driving route between two coordinates, returning
// the polyline in direction of travel and the total distance in miles.
func (c *client) Route(ctx context.Context, origin, destination orb.Point) (*entity.Route, error) {
	endpoint := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.baseURL, c.profile,
		origin.Lon(), origin.Lat(),
		destination.Lon(), destination.Lat(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build route request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domainerrors.ErrRoutingFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.ErrRoutingFailed.WithDetails("unexpected status " + resp.Status)
	}

	var parsed routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, domainerrors.ErrRoutingFailed.WithDetails(err.Error())
	}

	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return nil, domainerrors.ErrRoutingFailed.WithDetails("OSRM returned code " + parsed.Code)
	}

	best := parsed.Routes[0]

	points := make([]orb.Point, 0, len(best.Geometry.Coordinates))
	for _, coord := range best.Geometry.Coordinates {
		if len(coord) < 2 {
			return nil, domainerrors.ErrRoutingFailed.WithDetails("malformed route geometry")
		}
		points = append(points, orb.Point{coord[0], coord[1]})
	}

	return &entity.Route{
		Points:        points,
		DistanceMiles: best.Distance * metersToMiles,
	}, nil
}
