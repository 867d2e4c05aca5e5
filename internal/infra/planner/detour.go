// Package planner implements the constrained refueling optimizer: station
// filtering, detour scoring, the fuel-gap constraint, and the LP solve.
package planner

import (
	"fuelroute/internal/domain/entity"
	"fuelroute/internal/infra/geo"

	"github.com/paulmach/orb"
)

// candidate pairs a station with its scaled detour distance. Candidates
// are the immutable intermediates the pipeline stages hand each other.
type candidate struct {
	station entity.FuelStation
	detour  float64
}

// detourMiles scores how far a station sits off the route: the minimum
// taxicab distance from the station to any route vertex, multiplied by the
// calibrated scale factor. The scale and the max-detour threshold were
// calibrated as a pair against the same distance approximation; neither is
// meaningful without the other.
func detourMiles(route []orb.Point, station orb.Point, scale float64) float64 {
	return geo.ClosestApproachMiles(route, station) * scale
}

// scoreDetours computes the detour for every candidate station.
// O(stations x route length); station counts after region filtering keep
// this cheap in practice.
func scoreDetours(route []orb.Point, stations []entity.FuelStation, scale float64) []candidate {
	scored := make([]candidate, 0, len(stations))
	for _, s := range stations {
		scored = append(scored, candidate{
			station: s,
			detour:  detourMiles(route, s.Location, scale),
		})
	}

	return scored
}
