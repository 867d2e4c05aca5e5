package refdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fuelroute/config"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegionDataset(t *testing.T) string {
	t.Helper()

	west := geojson.NewFeature(orb.Polygon{orb.Ring{
		{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0},
	}})
	west.Properties["abbr"] = "AA"
	west.Properties["name"] = "West Square"

	east := geojson.NewFeature(orb.Polygon{orb.Ring{
		{4, 0}, {8, 0}, {8, 4}, {4, 4}, {4, 0},
	}})
	east.Properties["abbr"] = "BB"
	east.Properties["name"] = "East Square"

	fc := geojson.NewFeatureCollection()
	fc.Append(west)
	fc.Append(east)

	raw, err := json.Marshal(fc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "regions.geojson")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	return path
}

func TestRegionProvider_Index(t *testing.T) {
	provider := NewRegionProvider(&config.RegionsConfig{CodeProperty: "abbr"})
	path := writeRegionDataset(t)

	idx, err := provider.Index(path, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA", "BB"}, idx.Codes())
}

func TestRegionProvider_MemoizesPerPathAndTolerance(t *testing.T) {
	provider := NewRegionProvider(nil)
	path := writeRegionDataset(t)

	first, err := provider.Index(path, 0.1)
	require.NoError(t, err)

	second, err := provider.Index(path, 0.1)
	require.NoError(t, err)
	assert.Same(t, first, second)

	coarser, err := provider.Index(path, 0.5)
	require.NoError(t, err)
	assert.NotSame(t, first, coarser)
}

func TestRegionProvider_Detector(t *testing.T) {
	provider := NewRegionProvider(nil)
	path := writeRegionDataset(t)

	detector, err := provider.Detector(path, 0.1)
	require.NoError(t, err)

	crossed := detector.Traverse([]orb.Point{{1, 2}, {5, 2}})
	assert.Equal(t, []string{"AA", "BB"}, crossed)
}

func TestRegionProvider_MissingFile(t *testing.T) {
	provider := NewRegionProvider(nil)

	_, err := provider.Index(filepath.Join(t.TempDir(), "absent.geojson"), 0.1)
	assert.Error(t, err)
}

func TestRegionProvider_MalformedDataset(t *testing.T) {
	provider := NewRegionProvider(nil)

	path := filepath.Join(t.TempDir(), "broken.geojson")
	require.NoError(t, os.WriteFile(path, []byte("not geojson"), 0o600))

	_, err := provider.Index(path, 0.1)
	assert.Error(t, err)
}

func TestRegionProvider_WrongCodeProperty(t *testing.T) {
	provider := NewRegionProvider(&config.RegionsConfig{CodeProperty: "fips"})
	path := writeRegionDataset(t)

	_, err := provider.Index(path, 0.1)
	assert.Error(t, err)
}
