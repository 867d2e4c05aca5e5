package planner

import (
	"math"
	"slices"

	"fuelroute/config"
	"fuelroute/internal/domain/entity"
	domainerrors "fuelroute/internal/domain/errors"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// fallback defaults keep the planner usable when config is missing/invalid
	defaultVehicleRangeMiles  = 500.0
	defaultMilesPerGallon     = 10.0
	defaultReserveBufferMiles = 75.0
	defaultMaxDetourMiles     = 30.0
	defaultDetourScaleFactor  = 100.0
	defaultSolverTolerance    = 1e-3
	defaultMaterialityGallons = 1.0
)

// Optimizer selects refueling stops along a route at minimum total cost.
// The objective charges each station its pump price on the purchased
// gallons plus the fuel burned on the round-trip detour, also at that
// station's price.
type Optimizer struct {
	vehicleRangeMiles  float64
	milesPerGallon     float64
	reserveBufferMiles float64
	maxDetourMiles     float64
	detourScaleFactor  float64
	solverTolerance    float64
	materialityGallons float64
}

// NewOptimizer creates an optimizer from config, falling back to the
// calibrated defaults for any non-positive value.
func NewOptimizer(cfg *config.PlannerConfig) *Optimizer {
	o := &Optimizer{
		vehicleRangeMiles:  defaultVehicleRangeMiles,
		milesPerGallon:     defaultMilesPerGallon,
		reserveBufferMiles: defaultReserveBufferMiles,
		maxDetourMiles:     defaultMaxDetourMiles,
		detourScaleFactor:  defaultDetourScaleFactor,
		solverTolerance:    defaultSolverTolerance,
		materialityGallons: defaultMaterialityGallons,
	}

	if cfg == nil {
		return o
	}

	if cfg.VehicleRangeMiles > 0 {
		o.vehicleRangeMiles = cfg.VehicleRangeMiles
	}
	if cfg.MilesPerGallon > 0 {
		o.milesPerGallon = cfg.MilesPerGallon
	}
	if cfg.ReserveBufferMiles > 0 {
		o.reserveBufferMiles = cfg.ReserveBufferMiles
	}
	if cfg.MaxDetourMiles > 0 {
		o.maxDetourMiles = cfg.MaxDetourMiles
	}
	if cfg.DetourScaleFactor > 0 {
		o.detourScaleFactor = cfg.DetourScaleFactor
	}
	if cfg.SolverTolerance > 0 {
		o.solverTolerance = cfg.SolverTolerance
	}
	if cfg.MaterialityGallons > 0 {
		o.materialityGallons = cfg.MaterialityGallons
	}

	return o
}

// Optimize computes a refuel plan for the route. The pipeline is a fixed
// sequence of stages, each producing a new value: filter stations to the
// crossed regions, score and threshold detours, solve the gallon
// allocation, round, re-cost at the rounded quantities, then drop
// immaterial stops.
//
// A fuel gap of zero or less is a degenerate success: an empty plan with
// zero cost, reported distinctly from the no-candidate-stations failure.
func (o *Optimizer) Optimize(route entity.Route, regionsCrossed []string, stations []entity.FuelStation) (*entity.RefuelPlan, error) {
	if route.IsDegenerate() {
		return nil, domainerrors.ErrRouteDegenerate
	}

	gap := o.fuelGapGallons(route.DistanceMiles)
	if gap <= 0 {
		return &entity.RefuelPlan{ID: uuid.New(), Stops: []entity.RefuelStop{}}, nil
	}

	eligible := filterStations(stations, regionsCrossed)
	scored := scoreDetours(route.Points, eligible, o.detourScaleFactor)

	within := make([]candidate, 0, len(scored))
	for _, c := range scored {
		if c.detour <= o.maxDetourMiles {
			within = append(within, c)
		}
	}

	if len(within) == 0 {
		return nil, domainerrors.ErrNoCandidateStations
	}

	gallons, err := o.solveAllocation(within, gap)
	if err != nil {
		return nil, domainerrors.ErrSolverFailed.WithDetails(err.Error())
	}

	rounded := roundGallons(gallons)

	// Total cost is taken over all surviving candidates, including stops
	// later dropped as immaterial, so negligible allocations do not skew
	// the reported total.
	total := o.planCost(within, rounded)

	plan := &entity.RefuelPlan{
		ID:        uuid.New(),
		Stops:     make([]entity.RefuelStop, 0, len(within)),
		TotalCost: total,
	}

	for i, c := range within {
		if rounded[i] <= o.materialityGallons {
			continue
		}

		plan.Stops = append(plan.Stops, entity.RefuelStop{
			Station:  c.station.Name,
			Address:  c.station.Address,
			Location: c.station.Location,
			Gallons:  rounded[i],
		})
	}

	return plan, nil
}

// fuelGapGallons is the total fuel that must be purchased mid-route beyond
// the vehicle's base range, allowing for the detour allowance and the reserve
// buffer.
func (o *Optimizer) fuelGapGallons(distanceMiles float64) float64 {
	return (distanceMiles + o.maxDetourMiles - o.vehicleRangeMiles + o.reserveBufferMiles) / o.milesPerGallon
}

// filterStations keeps complete, unique stations inside the crossed regions,
// preserving input order.
func filterStations(stations []entity.FuelStation, regionsCrossed []string) []entity.FuelStation {
	seen := make(map[entity.FuelStation]struct{}, len(stations))
	kept := make([]entity.FuelStation, 0, len(stations))

	for _, s := range stations {
		if !s.IsComplete() {
			continue
		}
		if !slices.Contains(regionsCrossed, s.Region) {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		kept = append(kept, s)
	}

	return kept
}

// solveAllocation minimizes total pump cost subject to the gallons summing
// to the fuel gap. The detour term of the objective is constant in the
// decision variables, so the program is a pure LP in standard form:
// minimize price . g subject to 1 . g = gap, g >= 0. Simplex gives the
// deterministic global optimum here, unlike a general nonlinear minimizer.
func (o *Optimizer) solveAllocation(within []candidate, gap float64) ([]float64, error) {
	n := len(within)

	prices := make([]float64, n)
	ones := make([]float64, n)
	for i, c := range within {
		prices[i] = c.station.PricePerGallon
		ones[i] = 1
	}

	_, gallons, err := lp.Simplex(prices, mat.NewDense(1, n, ones), []float64{gap}, o.solverTolerance, nil)
	if err != nil {
		return nil, err
	}

	return gallons, nil
}

// planCost evaluates the full objective at the given quantities: purchased
// gallons plus the round-trip detour fuel, both priced at the station.
func (o *Optimizer) planCost(within []candidate, gallons []float64) float64 {
	total := 0.0
	for i, c := range within {
		total += (gallons[i] + 2*c.detour/o.milesPerGallon) * c.station.PricePerGallon
	}

	return total
}

// roundGallons snaps quantities to whole gallons, which is what a driver
// would actually purchase. The reported cost is recomputed from these.
func roundGallons(gallons []float64) []float64 {
	rounded := make([]float64, len(gallons))
	for i, g := range gallons {
		rounded[i] = math.Round(g)
	}

	return rounded
}
