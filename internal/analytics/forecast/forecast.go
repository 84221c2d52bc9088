// Package forecast projects completion-rate series into future months.
// Forecasters register themselves at init time; the service looks them up
// by name so new algorithms plug in without touching callers.
package forecast

import (
	"fmt"

	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// Config holds forecast parameters.
type Config struct {
	// Horizon is the number of future periods to project.
	Horizon int
	// MinDataPoints is the observation floor below which a forecaster
	// returns an empty projection instead of guessing.
	MinDataPoints int
}

// DefaultConfig returns the standard monthly-projection settings.
func DefaultConfig() Config {
	return Config{
		Horizon:       utils.DefaultForecastHorizon,
		MinDataPoints: 2,
	}
}

// Forecaster projects a historical series forward. Implementations must
// not mutate the input series. A series too short to model yields an
// empty result, not an error; errors are reserved for invalid config.
type Forecaster interface {
	Name() string
	Forecast(series analytics.TimeSeries, config Config) (analytics.TimeSeries, error)
}

var forecasterRegistry = make(map[string]Forecaster)

// Register adds a forecaster to the registry.
func Register(name string, forecaster Forecaster) {
	forecasterRegistry[name] = forecaster
}

// Get returns a forecaster by name.
func Get(name string) (Forecaster, error) {
	if forecaster, ok := forecasterRegistry[name]; ok {
		return forecaster, nil
	}
	return nil, fmt.Errorf("unknown forecaster: %s", name)
}

// List returns the registered forecaster names.
func List() []string {
	names := make([]string, 0, len(forecasterRegistry))
	for name := range forecasterRegistry {
		names = append(names, name)
	}
	return names
}

// Confidence returns the confidence attached to the i-th projected period
// (1-based). It decays 0.1 per period and floors at 0.5.
func Confidence(period int) float64 {
	c := 1.0 - 0.1*float64(period)
	if c < 0.5 {
		c = 0.5
	}
	return c
}
