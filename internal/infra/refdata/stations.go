package refdata

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"fuelroute/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// StationLoader reads the fuel-price table from a CSV file.
// Expected CSV format: name,address,state,price,lon,lat
type StationLoader struct {
	path string
}

// NewStationLoader creates a loader for the given CSV file.
func NewStationLoader(path string) *StationLoader {
	return &StationLoader{path: path}
}

// Load parses the station table. Rows with missing required fields or
// unparseable numbers are dropped rather than failing the load; one bad
// row must not take out the whole price table. Structural failures
// (unreadable file, broken CSV framing) are returned as errors.
func (l *StationLoader) Load() ([]entity.FuelStation, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return ParseStations(file)
}

// ParseStations reads station rows from r. Exported separately so tests
// and tooling can parse in-memory tables.
func ParseStations(r io.Reader) ([]entity.FuelStation, error) {
	reader := csv.NewReader(r)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, errors.WithStack(err)
	}

	var stations []entity.FuelStation

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}

		station, ok := parseStation(record)
		if !ok {
			continue
		}

		stations = append(stations, station)
	}

	return stations, nil
}

func parseStation(record []string) (entity.FuelStation, bool) {
	if len(record) < 6 {
		return entity.FuelStation{}, false
	}

	price, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return entity.FuelStation{}, false
	}

	lon, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return entity.FuelStation{}, false
	}

	lat, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return entity.FuelStation{}, false
	}

	station := entity.FuelStation{
		Name:           record[0],
		Address:        record[1],
		Region:         record[2],
		PricePerGallon: price,
		Location:       orb.Point{lon, lat},
	}

	if !station.IsComplete() {
		return entity.FuelStation{}, false
	}

	return station, true
}
