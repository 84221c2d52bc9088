package insights

import (
	"sort"

	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// BottleneckThresholds are the mean/median ratios that flag a status as a
// bottleneck. A stage whose mean duration exceeds median*Medium is flagged;
// exceeding median*High escalates the severity.
type BottleneckThresholds struct {
	Medium float64
	High   float64
}

// DefaultBottleneckThresholds returns the tracker's 1.5/2.0 ratios.
func DefaultBottleneckThresholds() BottleneckThresholds {
	return BottleneckThresholds{Medium: 1.5, High: 2.0}
}

// Bottleneck describes the duration distribution of one process status. A
// mean well above the median means individual bids stall in that stage.
type Bottleneck struct {
	Status       string            `json:"status"`
	Stats        analytics.Summary `json:"stats"`
	MeanHours    float64           `json:"mean_hours"`
	MedianHours  float64           `json:"median_hours"`
	IsBottleneck bool              `json:"is_bottleneck"`
	Severity     string            `json:"severity"`
}

// DetectBottlenecks groups status transitions by new_status, summarizes the
// duration sample per status, and flags right-skewed stages. Output is
// sorted descending by mean so the slowest stages surface first; ties keep
// first-seen status order.
func DetectBottlenecks(records []models.StatusDurationRecord, thresholds BottleneckThresholds) []Bottleneck {
	durations := make(map[string][]float64)
	var order []string

	for _, r := range records {
		if r.DurationHours == nil {
			continue
		}
		if _, ok := durations[r.NewStatus]; !ok {
			order = append(order, r.NewStatus)
		}
		durations[r.NewStatus] = append(durations[r.NewStatus], *r.DurationHours)
	}

	bottlenecks := make([]Bottleneck, 0, len(order))
	for _, status := range order {
		sample := durations[status]
		stats := analytics.Summarize(sample)
		mean := analytics.Mean(sample)
		median := stats.Median

		b := Bottleneck{
			Status:      status,
			Stats:       stats,
			MeanHours:   utils.Round1(mean),
			MedianHours: utils.Round1(median),
			Severity:    "low",
		}

		// Ratios are inclusive: a stage sitting exactly on the medium
		// threshold is already flagged. A zero median does not exempt the
		// stage: any positive mean over it means outliers carry the whole
		// distribution. Only an all-zero sample stays unflagged.
		switch {
		case mean > 0 && mean >= median*thresholds.High:
			b.IsBottleneck = true
			b.Severity = "high"
		case mean > 0 && mean >= median*thresholds.Medium:
			b.IsBottleneck = true
			b.Severity = "medium"
		}

		bottlenecks = append(bottlenecks, b)
	}

	sort.SliceStable(bottlenecks, func(i, j int) bool {
		return bottlenecks[i].MeanHours > bottlenecks[j].MeanHours
	})

	return bottlenecks
}
