package entity

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// RefuelStop is one selected station in a refuel plan together with the
// gallons to purchase there.
type RefuelStop struct {
	Station  string    `json:"station"`
	Address  string    `json:"address"`
	Location orb.Point `json:"location"`
	Gallons  float64   `json:"gallons"`
}

// RefuelPlan is the output of the refueling optimizer: the ordered stops
// that survived the materiality filter plus the total cost of the whole
// allocation. Created fresh per optimization call, never mutated after.
type RefuelPlan struct {
	ID        uuid.UUID    `json:"id"`
	Stops     []RefuelStop `json:"stops"`
	TotalCost float64      `json:"total_cost"`
}
