package geo

import (
	"sort"

	"fuelroute/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
	"github.com/pkg/errors"
)

// DefaultSimplifyTolerance is the Douglas-Peucker tolerance applied to
// region boundaries, in boundary-coordinate units (degrees).
const DefaultSimplifyTolerance = 0.1

// Index maps region codes to their simplified boundaries and bounding
// boxes. It is immutable after Build and safe for concurrent reads.
//
// Iteration order is the lexicographic order of region codes. On points
// that straddle a shared border the first code in that order wins, which
// keeps traversal output deterministic.
type Index struct {
	regions map[string]*entity.Region
	codes   []string
}

// Build constructs an Index from a GeoJSON feature collection. Each
// feature must carry a string property named codeProperty and an areal
// geometry. Simplification fidelity loss is acceptable: the boundary is
// only consulted for coarse traversal detection, never precise geofencing.
//
// Any malformed feature fails the whole build; an index with holes would
// silently break traversal detection downstream.
func Build(fc *geojson.FeatureCollection, codeProperty string, tolerance float64) (*Index, error) {
	if tolerance <= 0 {
		tolerance = DefaultSimplifyTolerance
	}

	idx := &Index{
		regions: make(map[string]*entity.Region, len(fc.Features)),
	}

	for i, feature := range fc.Features {
		code, ok := feature.Properties[codeProperty].(string)
		if !ok || code == "" {
			return nil, errors.Errorf("region feature %d: missing or non-string %q property", i, codeProperty)
		}

		if _, exists := idx.regions[code]; exists {
			return nil, errors.Errorf("region feature %d: duplicate code %q", i, code)
		}

		boundary, err := simplifyBoundary(feature.Geometry, tolerance)
		if err != nil {
			return nil, errors.Wrapf(err, "region %q", code)
		}

		name, _ := feature.Properties["name"].(string)

		idx.regions[code] = &entity.Region{
			Code:     code,
			Name:     name,
			Boundary: boundary,
			Bound:    boundary.Bound(),
		}
		idx.codes = append(idx.codes, code)
	}

	sort.Strings(idx.codes)

	return idx, nil
}

// simplifyBoundary reduces an areal geometry with Douglas-Peucker at the
// given tolerance. Non-areal geometries are rejected.
func simplifyBoundary(geom orb.Geometry, tolerance float64) (orb.Geometry, error) {
	switch geom.(type) {
	case orb.Polygon, orb.MultiPolygon:
	default:
		if geom == nil {
			return nil, errors.New("missing geometry")
		}

		return nil, errors.Errorf("unsupported geometry type %s", geom.GeoJSONType())
	}

	return simplify.DouglasPeucker(tolerance).Simplify(geom), nil
}

// Lookup returns the region for a code.
func (x *Index) Lookup(code string) (*entity.Region, bool) {
	region, ok := x.regions[code]

	return region, ok
}

// Codes returns region codes in index iteration order.
func (x *Index) Codes() []string {
	return x.codes
}

// Len returns the number of indexed regions.
func (x *Index) Len() int {
	return len(x.codes)
}

// contains runs the two-stage containment test: cheap bounding-box
// rejection first, full polygon test only when the box matches.
func contains(region *entity.Region, point orb.Point) bool {
	if !region.Bound.Contains(point) {
		return false
	}

	switch boundary := region.Boundary.(type) {
	case orb.Polygon:
		return planar.PolygonContains(boundary, point)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(boundary, point)
	default:
		return false
	}
}
