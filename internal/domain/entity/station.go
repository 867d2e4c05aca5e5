package entity

import (
	"github.com/paulmach/orb"
)

// FuelStation is a single row of the fuel-price reference table.
type FuelStation struct {
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	Region         string    `json:"region"`
	PricePerGallon float64   `json:"price_per_gallon"`
	Location       orb.Point `json:"location"`
}

// IsComplete reports whether every required field is populated.
// Incomplete rows are dropped before optimization.
func (s FuelStation) IsComplete() bool {
	return s.Name != "" && s.Address != "" && s.Region != "" && s.PricePerGallon > 0
}
