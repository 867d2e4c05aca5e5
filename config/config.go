package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Planner configuration for the refueling optimizer
	Planner *PlannerConfig `json:"planner" yaml:"planner"`

	// Regions configuration for the region boundary dataset
	Regions *RegionsConfig `json:"regions" yaml:"regions"`

	// Stations configuration for the fuel-price reference table
	Stations *StationsConfig `json:"stations" yaml:"stations"`

	// Geocoder configuration for the Nominatim client
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	// Routing configuration for the OSRM client
	Routing *RoutingConfig `json:"routing" yaml:"routing"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PlannerConfig defines the calibrated constants of the refueling optimizer.
// DetourScaleFactor and MaxDetourMiles are a calibrated pair; change them
// together or detour filtering drifts.
type PlannerConfig struct {
	// Vehicle range on a full tank, in miles
	VehicleRangeMiles float64 `json:"vehicleRangeMiles" yaml:"vehicleRangeMiles"`

	// Fuel efficiency in miles per gallon
	MilesPerGallon float64 `json:"milesPerGallon" yaml:"milesPerGallon"`

	// Reserve allowance in miles before refueling is required
	ReserveBufferMiles float64 `json:"reserveBufferMiles" yaml:"reserveBufferMiles"`

	// Maximum acceptable detour to a station, in miles
	MaxDetourMiles float64 `json:"maxDetourMiles" yaml:"maxDetourMiles"`

	// Multiplier applied to raw point-to-polyline distances before the
	// detour threshold is applied
	DetourScaleFactor float64 `json:"detourScaleFactor" yaml:"detourScaleFactor"`

	// Solver tolerance; loosening below 1e-3 risks infeasible-looking allocations
	SolverTolerance float64 `json:"solverTolerance" yaml:"solverTolerance"`

	// Stops at or below this many gallons are dropped from the plan
	MaterialityGallons float64 `json:"materialityGallons" yaml:"materialityGallons"`
}

// RegionsConfig defines the region boundary dataset and its simplification
type RegionsConfig struct {
	// Path to the GeoJSON file with one feature per region
	GeoJSONPath string `json:"geojsonPath" yaml:"geojsonPath"`

	// Feature property holding the region code (e.g., "abbr")
	CodeProperty string `json:"codeProperty" yaml:"codeProperty"`

	// Douglas-Peucker tolerance in boundary-coordinate units
	SimplifyTolerance float64 `json:"simplifyTolerance" yaml:"simplifyTolerance"`
}

// StationsConfig defines the fuel-price reference table
type StationsConfig struct {
	// Path to the stations CSV file
	CSVPath string `json:"csvPath" yaml:"csvPath"`
}

// GeocoderConfig defines the Nominatim geocoding client
type GeocoderConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// RoutingConfig defines the OSRM routing client
type RoutingConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Profile string        `json:"profile" yaml:"profile"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: PLANNER_MAXDETOURMILES -> planner.maxDetourMiles
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	return LoadWithEnv[Config]("config", "config", "../config", "../../config")
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
