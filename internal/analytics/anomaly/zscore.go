package anomaly

import (
	"math"

	"github.com/bidpulse/bidpulse/internal/analytics"
)

// ZScoreDetector flags buckets whose value lies more than Threshold
// standard deviations from the series mean. Works best when the values
// are roughly normally distributed.
type ZScoreDetector struct{}

func init() {
	Register("zscore", &ZScoreDetector{})
}

func (z *ZScoreDetector) Name() string {
	return "zscore"
}

func (z *ZScoreDetector) Detect(series analytics.TimeSeries, config Config) []Anomaly {
	if len(series) < config.MinDataPoints {
		return nil
	}

	values := series.Values()
	mean := analytics.Mean(values)

	var varianceSum float64
	for _, v := range values {
		diff := v - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(values)))

	if stdDev == 0 {
		return z.detectFlatline(series)
	}

	expected := &Range{
		Min: mean - config.Threshold*stdDev,
		Max: mean + config.Threshold*stdDev,
	}

	var results []Anomaly
	for _, p := range series {
		score := (p.Value - mean) / stdDev
		if math.Abs(score) <= config.Threshold {
			continue
		}

		kind := KindDrop
		if score > 0 {
			kind = KindSpike
		}

		results = append(results, Anomaly{
			Date:      p.Date,
			Value:     p.Value,
			Score:     math.Abs(score),
			Kind:      kind,
			Expected:  expected,
			Algorithm: z.Name(),
		})
	}

	return results
}

// detectFlatline reports every bucket when the series has no variation.
// Identical values month after month point at a stalled ingest, not a
// stable process.
func (z *ZScoreDetector) detectFlatline(series analytics.TimeSeries) []Anomaly {
	results := make([]Anomaly, len(series))
	for i, p := range series {
		results[i] = Anomaly{
			Date:      p.Date,
			Value:     p.Value,
			Score:     1.0,
			Kind:      KindFlatline,
			Algorithm: z.Name(),
		}
	}
	return results
}
