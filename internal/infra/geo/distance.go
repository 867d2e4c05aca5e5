// Package geo implements the planar geometry used by trip planning:
// the degree-to-mile distance approximation, the simplified region index,
// and route traversal detection.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// milesPerLatDegree is the approximate ground length of one degree of
	// latitude.
	milesPerLatDegree = 69.0
)

// Miles returns the approximate ground distance between two [lon, lat]
// points as a taxicab (L1) sum of the latitude and longitude legs. One
// degree of longitude is scaled by the cosine of the mean latitude of the
// two points.
//
// This is deliberately not a geodesic distance. Detour thresholds and cost
// factors elsewhere are calibrated against this approximation, so it must
// not be swapped for haversine. NaN inputs propagate to the result.
func Miles(a, b orb.Point) float64 {
	avgLat := (a.Lat() + b.Lat()) / 2
	lonMiles := milesPerLatDegree * math.Cos(avgLat*math.Pi/180)

	d := milesPerLatDegree*math.Abs(a.Lat()-b.Lat()) + lonMiles*math.Abs(a.Lon()-b.Lon())

	// lonMiles goes negative past the poles; fold the sign back out.
	return math.Abs(d)
}

// ClosestApproachMiles returns the minimum Miles distance from point to any
// vertex of the polyline. O(len(polyline)); callers with very long polylines
// should pre-simplify.
func ClosestApproachMiles(polyline []orb.Point, point orb.Point) float64 {
	best := math.Inf(1)
	for _, p := range polyline {
		if d := Miles(p, point); d < best {
			best = d
		}
	}

	return best
}
