package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square returns a closed 4x4 degree ring with its southwest corner at
// (lon, lat).
func square(lon, lat float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{lon, lat},
		{lon + 4, lat},
		{lon + 4, lat + 4},
		{lon, lat + 4},
		{lon, lat},
	}}
}

func regionFeature(code, name string, geom orb.Geometry) *geojson.Feature {
	f := geojson.NewFeature(geom)
	f.Properties["abbr"] = code
	f.Properties["name"] = name

	return f
}

func testCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Append(regionFeature("BB", "East Square", square(4, 0)))
	fc.Append(regionFeature("AA", "West Square", square(0, 0)))

	return fc
}

func TestBuild_IndexesAllRegions(t *testing.T) {
	idx, err := Build(testCollection(), "abbr", 0.1)
	require.NoError(t, err)

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"AA", "BB"}, idx.Codes())

	region, ok := idx.Lookup("AA")
	require.True(t, ok)
	assert.Equal(t, "AA", region.Code)
	assert.Equal(t, "West Square", region.Name)
	assert.True(t, region.Bound.Contains(orb.Point{2, 2}))

	_, ok = idx.Lookup("ZZ")
	assert.False(t, ok)
}

func TestBuild_CodesSortedRegardlessOfInputOrder(t *testing.T) {
	idx, err := Build(testCollection(), "abbr", 0.1)
	require.NoError(t, err)

	// Input order is BB then AA; iteration order must not depend on it.
	assert.Equal(t, []string{"AA", "BB"}, idx.Codes())
}

func TestBuild_RepeatedBuildsAgree(t *testing.T) {
	first, err := Build(testCollection(), "abbr", 0.1)
	require.NoError(t, err)

	second, err := Build(testCollection(), "abbr", 0.1)
	require.NoError(t, err)

	require.Equal(t, first.Codes(), second.Codes())
	for _, code := range first.Codes() {
		a, _ := first.Lookup(code)
		b, _ := second.Lookup(code)
		assert.Equal(t, a.Bound, b.Bound)
	}
}

func TestBuild_ZeroToleranceUsesDefault(t *testing.T) {
	idx, err := Build(testCollection(), "abbr", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
}

func TestBuild_MissingCodeProperty(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(square(0, 0))
	f.Properties["name"] = "No Code"
	fc.Append(f)

	_, err := Build(fc, "abbr", 0.1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abbr")
}

func TestBuild_NonStringCodeProperty(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	f := geojson.NewFeature(square(0, 0))
	f.Properties["abbr"] = 42
	fc.Append(f)

	_, err := Build(fc, "abbr", 0.1)
	assert.Error(t, err)
}

func TestBuild_DuplicateCode(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(regionFeature("AA", "First", square(0, 0)))
	fc.Append(regionFeature("AA", "Second", square(4, 0)))

	_, err := Build(fc, "abbr", 0.1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestBuild_RejectsNonArealGeometry(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(regionFeature("AA", "Line", orb.LineString{{0, 0}, {1, 1}}))

	_, err := Build(fc, "abbr", 0.1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported geometry")
}

func TestBuild_MultiPolygonRegion(t *testing.T) {
	multi := orb.MultiPolygon{square(0, 0), square(10, 10)}

	fc := geojson.NewFeatureCollection()
	fc.Append(regionFeature("MM", "Two Parts", multi))

	idx, err := Build(fc, "abbr", 0.1)
	require.NoError(t, err)

	region, ok := idx.Lookup("MM")
	require.True(t, ok)
	assert.True(t, contains(region, orb.Point{2, 2}))
	assert.True(t, contains(region, orb.Point{12, 12}))
	assert.False(t, contains(region, orb.Point{7, 7}))
}
