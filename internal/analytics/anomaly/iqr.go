package anomaly

import (
	"github.com/bidpulse/bidpulse/internal/analytics"
)

// IQRDetector flags buckets outside [Q1 - k*IQR, Q3 + k*IQR]. More
// robust than z-score when the series already contains outliers.
type IQRDetector struct{}

func init() {
	Register("iqr", &IQRDetector{})
}

func (d *IQRDetector) Name() string {
	return "iqr"
}

func (d *IQRDetector) Detect(series analytics.TimeSeries, config Config) []Anomaly {
	if len(series) < config.MinDataPoints {
		return nil
	}

	values := series.Values()
	q1 := analytics.Percentile(values, 25)
	q3 := analytics.Percentile(values, 75)
	iqr := q3 - q1

	// Thresholds of 3+ are z-score scale; fall back to the standard
	// 1.5x multiplier there.
	multiplier := config.Threshold
	if multiplier >= 3 {
		multiplier = 1.5
	}

	lower := q1 - multiplier*iqr
	upper := q3 + multiplier*iqr
	expected := &Range{Min: lower, Max: upper}

	var results []Anomaly
	for _, p := range series {
		if p.Value >= lower && p.Value <= upper {
			continue
		}

		score := 1.0
		kind := KindOutlier
		switch {
		case p.Value > upper:
			kind = KindSpike
			if iqr > 0 {
				score = (p.Value - upper) / iqr
			}
		case p.Value < lower:
			kind = KindDrop
			if iqr > 0 {
				score = (lower - p.Value) / iqr
			}
		}

		results = append(results, Anomaly{
			Date:      p.Date,
			Value:     p.Value,
			Score:     score,
			Kind:      kind,
			Expected:  expected,
			Algorithm: d.Name(),
		})
	}

	return results
}
