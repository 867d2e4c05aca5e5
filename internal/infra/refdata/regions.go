// Package refdata loads the long-lived reference datasets: region
// boundaries (GeoJSON) and the fuel-price station table (CSV).
package refdata

import (
	"os"
	"sync"

	"fuelroute/config"
	"fuelroute/internal/infra/geo"
	"fuelroute/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// regionKey identifies one built index: the same file at a different
// tolerance is a different index.
type regionKey struct {
	path      string
	tolerance float64
}

// RegionProvider builds and memoizes region indexes per source file and
// simplification tolerance. The first request for a key builds under the
// lock; later requests share the immutable built index.
type RegionProvider struct {
	codeProperty string

	mu      sync.Mutex
	indexes map[regionKey]*geo.Index
}

// NewRegionProvider creates a provider reading the region code from the
// given feature property ("abbr" for the US states dataset).
func NewRegionProvider(cfg *config.RegionsConfig) *RegionProvider {
	codeProperty := "abbr"
	if cfg != nil && cfg.CodeProperty != "" {
		codeProperty = cfg.CodeProperty
	}

	return &RegionProvider{
		codeProperty: codeProperty,
		indexes:      make(map[regionKey]*geo.Index),
	}
}

// Index returns the region index for the dataset at path, building it on
// first use. Rebuilding from the same source and tolerance would be
// correctness-preserving but wasteful, so built indexes are reused for the
// process lifetime.
func (p *RegionProvider) Index(path string, tolerance float64) (*geo.Index, error) {
	key := regionKey{path: path, tolerance: tolerance}

	p.mu.Lock()
	defer p.mu.Unlock()

	if idx, ok := p.indexes[key]; ok {
		return idx, nil
	}

	idx, err := buildIndex(path, p.codeProperty, tolerance)
	if err != nil {
		return nil, err
	}

	p.indexes[key] = idx

	return idx, nil
}

// Detector adapts Index to the usecase port.
func (p *RegionProvider) Detector(path string, tolerance float64) (usecase.RegionDetector, error) {
	return p.Index(path, tolerance)
}

func buildIndex(path, codeProperty string, tolerance float64) (*geo.Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read region dataset")
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, errors.Wrap(err, "parse region dataset")
	}

	idx, err := geo.Build(fc, codeProperty, tolerance)
	if err != nil {
		return nil, errors.Wrap(err, "build region index")
	}

	return idx, nil
}
