package entity

import (
	"github.com/paulmach/orb"
)

// Route is a driving route produced by the external routing service.
// Points are ordered in direction of travel, [lon, lat] degrees.
// A Route is immutable once built; the planner only reads it.
type Route struct {
	Points        []orb.Point `json:"points"`
	DistanceMiles float64     `json:"distance_miles"`
}

// IsDegenerate reports whether the route is too small to plan fuel for:
// fewer than two points or a non-positive total distance.
func (r Route) IsDegenerate() bool {
	return len(r.Points) < 2 || r.DistanceMiles <= 0
}
