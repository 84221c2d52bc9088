package analytics

import (
	"math"
	"sort"

	"github.com/bidpulse/bidpulse/internal/utils"
)

// Summary holds summary statistics over a numeric sample. An empty sample
// yields the zero value (Count = 0), never an error: analytics over
// incomplete operational data is the normal case.
type Summary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	P90    float64 `json:"p90"`
	StdDev float64 `json:"std_dev"`
}

// Percentile computes the p-th percentile (0-100) of values via linear
// interpolation between the two nearest ranks. Returns 0 for an empty
// sample. The input slice is not modified.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := p / 100 * float64(len(sorted)-1)
	lower := math.Floor(idx)
	upper := math.Ceil(idx)
	if lower == upper {
		return sorted[int(idx)]
	}

	weight := idx - lower
	return sorted[int(lower)]*(1-weight) + sorted[int(upper)]*weight
}

// Summarize computes summary statistics over values. Standard deviation is
// the population form (divide by n). Mean is rounded to the nearest 0.01;
// full precision feeds the remaining fields.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	min := values[0]
	max := values[0]
	sum := 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	mean := sum / float64(len(values))

	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}

	return Summary{
		Count:  len(values),
		Min:    min,
		Max:    max,
		Mean:   utils.Round2(mean),
		Median: Percentile(values, 50),
		P25:    Percentile(values, 25),
		P75:    Percentile(values, 75),
		P90:    Percentile(values, 90),
		StdDev: math.Sqrt(sumSq / float64(len(values))),
	}
}

// Mean returns the arithmetic mean of values, 0 for an empty sample.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
