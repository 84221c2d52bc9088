package anomaly

import (
	"math"

	"github.com/bidpulse/bidpulse/internal/analytics"
)

// AutoDetector inspects the series and delegates to whichever registered
// detector suits it: IQR when the data already carries outliers or is
// visibly skewed, z-score otherwise.
type AutoDetector struct{}

func init() {
	Register("auto", &AutoDetector{})
}

func (a *AutoDetector) Name() string {
	return "auto"
}

func (a *AutoDetector) Detect(series analytics.TimeSeries, config Config) []Anomaly {
	if len(series) < config.MinDataPoints {
		return nil
	}

	delegate, err := Get(selectAlgorithm(series.Values()))
	if err != nil {
		delegate = &ZScoreDetector{}
	}
	return delegate.Detect(series, config)
}

func selectAlgorithm(values []float64) string {
	mean := analytics.Mean(values)

	var varianceSum float64
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(values)))
	if stdDev == 0 {
		return "zscore" // flatline case is handled there
	}

	// Outlier share via the standard 1.5x IQR fences.
	q1 := analytics.Percentile(values, 25)
	q3 := analytics.Percentile(values, 75)
	iqr := q3 - q1
	outliers := 0
	for _, v := range values {
		if v < q1-1.5*iqr || v > q3+1.5*iqr {
			outliers++
		}
	}
	if float64(outliers)/float64(len(values)) > 0.05 {
		return "iqr"
	}

	var skewSum float64
	for _, v := range values {
		z := (v - mean) / stdDev
		skewSum += z * z * z
	}
	if math.Abs(skewSum/float64(len(values))) >= 1 {
		return "iqr"
	}

	return "zscore"
}
