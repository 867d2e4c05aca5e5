package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Geocoder defines the interface for address-to-coordinate resolution
type Geocoder interface {
	// Geocode resolves a free-form address to a [lon, lat] coordinate.
	// Returns domain ErrAddressNotFound when the address matches nothing.
	Geocode(ctx context.Context, address string) (orb.Point, error)
}
