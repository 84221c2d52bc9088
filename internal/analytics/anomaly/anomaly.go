// Package anomaly flags time buckets whose completion behavior deviates
// sharply from the surrounding months. Detectors are registered by name
// and selected per request, mirroring the forecast package.
package anomaly

import (
	"fmt"
	"sort"
	"time"

	"github.com/bidpulse/bidpulse/internal/analytics"
)

// Kind classifies a detected deviation.
type Kind string

const (
	KindSpike    Kind = "spike"    // duration well above the expected range
	KindDrop     Kind = "drop"     // duration well below the expected range
	KindOutlier  Kind = "outlier"  // outside the expected range, direction unclear
	KindFlatline Kind = "flatline" // no variation at all, likely a stuck pipeline
)

// Range is the expected value band a detector derived from the series.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Anomaly is one flagged bucket.
type Anomaly struct {
	Date      time.Time `json:"date"`
	Value     float64   `json:"value"`
	Score     float64   `json:"score"` // higher = more abnormal
	Kind      Kind      `json:"kind"`
	Expected  *Range    `json:"expected,omitempty"`
	Algorithm string    `json:"algorithm"`
}

// Config controls detection sensitivity.
type Config struct {
	// Threshold is the sensitivity knob: standard deviations for the
	// z-score detector, IQR multiplier for the IQR detector.
	Threshold float64

	// MinDataPoints is the floor below which detection is skipped.
	MinDataPoints int
}

// DefaultConfig suits monthly trend series of a few periods.
func DefaultConfig() Config {
	return Config{
		Threshold:     2.0,
		MinDataPoints: 4,
	}
}

// Detector finds anomalous points in a time series.
type Detector interface {
	Name() string
	Detect(series analytics.TimeSeries, config Config) []Anomaly
}

var detectorRegistry = make(map[string]Detector)

// Register adds a detector under the given name.
func Register(name string, d Detector) {
	detectorRegistry[name] = d
}

// Get returns the detector registered under name.
func Get(name string) (Detector, error) {
	d, ok := detectorRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown anomaly detector: %s", name)
	}
	return d, nil
}

// List returns the registered detector names, sorted.
func List() []string {
	names := make([]string, 0, len(detectorRegistry))
	for name := range detectorRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
