package entity

import (
	"github.com/paulmach/orb"
)

// Region is an administrative polygon (a US state) with a unique code.
// Boundary holds the simplified geometry used for traversal detection;
// Bound always fully contains it. Regions are immutable reference data.
type Region struct {
	Code     string
	Name     string
	Boundary orb.Geometry
	Bound    orb.Bound
}
