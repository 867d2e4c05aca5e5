// Package geocode implements address-to-coordinate resolution against a
// Nominatim-compatible search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fuelroute/config"
	domainerrors "fuelroute/internal/domain/errors"
	"fuelroute/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultUserAgent = "fuelroute/1.0"
	defaultTimeout   = 10 * time.Second
)

type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimGeocoder creates a Nominatim search client. Nominatim's
// usage policy requires an identifying User-Agent, so one is always sent.
func NewNominatimGeocoder(cfg *config.GeocoderConfig) service.Geocoder {
	baseURL := defaultBaseURL
	userAgent := defaultUserAgent
	timeout := defaultTimeout

	if cfg != nil {
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		if cfg.UserAgent != "" {
			userAgent = cfg.UserAgent
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &nominatimGeocoder{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// searchResult is the subset of the Nominatim response we consume.
// Nominatim encodes coordinates as strings.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a free-form address to its best-match coordinate.
func (g *nominatimGeocoder) Geocode(ctx context.Context, address string) (orb.Point, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	endpoint := g.baseURL + "/search?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "build geocode request")
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return orb.Point{}, domainerrors.ErrGeocodeFailed.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, domainerrors.ErrGeocodeFailed.WithDetails("unexpected status " + resp.Status)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return orb.Point{}, domainerrors.ErrGeocodeFailed.WithDetails(err.Error())
	}

	if len(results) == 0 {
		return orb.Point{}, domainerrors.ErrAddressNotFound.WithDetails(address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return orb.Point{}, domainerrors.ErrGeocodeFailed.WithDetails("malformed latitude: " + results[0].Lat)
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return orb.Point{}, domainerrors.ErrGeocodeFailed.WithDetails("malformed longitude: " + results[0].Lon)
	}

	return orb.Point{lon, lat}, nil
}
