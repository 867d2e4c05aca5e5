package refdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationCSV = `name,address,state,price,lon,lat
Big Rig Stop,101 I-40 W,TX,3.159,-101.84,35.19
Lone Star Fuel,22 US-287,TX,2.999,-98.49,33.91
Route 66 Gas,5 Main St,OK,3.049,-97.51,35.47
`

func TestParseStations_ReadsAllRows(t *testing.T) {
	stations, err := ParseStations(strings.NewReader(stationCSV))
	require.NoError(t, err)
	require.Len(t, stations, 3)

	first := stations[0]
	assert.Equal(t, "Big Rig Stop", first.Name)
	assert.Equal(t, "101 I-40 W", first.Address)
	assert.Equal(t, "TX", first.Region)
	assert.InDelta(t, 3.159, first.PricePerGallon, 1e-9)
	assert.InDelta(t, -101.84, first.Location.Lon(), 1e-9)
	assert.InDelta(t, 35.19, first.Location.Lat(), 1e-9)
}

func TestParseStations_DropsUnparseableRows(t *testing.T) {
	table := "name,address,state,price,lon,lat\n" +
		"Good Stop,1 St,TX,3.10,-101.0,35.0\n" +
		"Bad Price,2 St,TX,cheap,-101.0,35.0\n" +
		"Bad Lon,3 St,TX,3.10,west,35.0\n" +
		"No Name,,TX,3.10,-101.0,35.0\n"

	stations, err := ParseStations(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "Good Stop", stations[0].Name)
}

func TestParseStations_DropsIncompleteRows(t *testing.T) {
	table := "name,address,state,price,lon,lat\n" +
		"Free Pump,1 St,TX,0,-101.0,35.0\n" +
		",2 St,TX,3.10,-101.0,35.0\n"

	stations, err := ParseStations(strings.NewReader(table))
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestParseStations_EmptyInput(t *testing.T) {
	_, err := ParseStations(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseStations_HeaderOnly(t *testing.T) {
	stations, err := ParseStations(strings.NewReader("name,address,state,price,lon,lat\n"))
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestStationLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.csv")
	require.NoError(t, os.WriteFile(path, []byte(stationCSV), 0o600))

	stations, err := NewStationLoader(path).Load()
	require.NoError(t, err)
	assert.Len(t, stations, 3)
}

func TestStationLoader_MissingFile(t *testing.T) {
	_, err := NewStationLoader(filepath.Join(t.TempDir(), "absent.csv")).Load()
	assert.Error(t, err)
}
