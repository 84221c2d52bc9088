// Package insights builds higher-level derivations on top of the chart
// aggregations: completion-rate trends, vendor performance scores, and
// process bottleneck detection. The scoring weights and bottleneck ratios
// are embedded business heuristics carried over from the process tracker;
// they are configurable but deliberately not re-tuned here.
package insights

import (
	"time"

	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// CompletionTrend summarizes one calendar month of bid completions.
type CompletionTrend struct {
	Month             time.Time `json:"month"`
	Label             string    `json:"label"`
	TotalBids         int       `json:"total_bids"`
	CompletedBids     int       `json:"completed_bids"`
	OnTimeBids        int       `json:"on_time_bids"`
	CompletionRate    float64   `json:"completion_rate"`
	OnTimeRate        float64   `json:"on_time_rate"`
	AvgCompletionTime float64   `json:"avg_completion_time"`
}

// CompletionTrends derives per-month completion metrics for the last
// periods calendar months ending at now's month, emitted oldest-first.
// Zero-size denominators yield a rate of 0, never a fault.
func CompletionTrends(records []models.BidCompletionRecord, periods int, now time.Time) []CompletionTrend {
	if periods <= 0 {
		periods = utils.DefaultTrendPeriods
	}

	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	trends := make([]CompletionTrend, 0, periods)

	for i := periods - 1; i >= 0; i-- {
		monthStart := current.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		trend := CompletionTrend{
			Month: monthStart,
			Label: monthStart.Format("Jan 2006"),
		}

		completionSum := 0.0
		completionCount := 0

		for _, r := range records {
			if r.CreatedAt.Before(monthStart) || !r.CreatedAt.Before(monthEnd) {
				continue
			}
			trend.TotalBids++
			if r.CompletedAt == nil {
				continue
			}
			trend.CompletedBids++
			if r.CompletionStatus == models.CompletionOnTime {
				trend.OnTimeBids++
			}
			if r.CompletionHours != nil {
				completionSum += *r.CompletionHours
				completionCount++
			}
		}

		if trend.TotalBids > 0 {
			trend.CompletionRate = utils.Round1(float64(trend.CompletedBids) / float64(trend.TotalBids) * 100)
		}
		if trend.CompletedBids > 0 {
			trend.OnTimeRate = utils.Round1(float64(trend.OnTimeBids) / float64(trend.CompletedBids) * 100)
		}
		if completionCount > 0 {
			trend.AvgCompletionTime = utils.Round1(completionSum / float64(completionCount))
		}

		trends = append(trends, trend)
	}

	return trends
}

// TrendSeries converts completion trends to a time series of completion
// rates, suitable as forecast input.
func TrendSeries(trends []CompletionTrend) analytics.TimeSeries {
	series := make(analytics.TimeSeries, 0, len(trends))
	for _, tr := range trends {
		series = append(series, analytics.TimeSeriesDataPoint{
			Date:  tr.Month,
			Value: tr.CompletionRate,
			Stats: &analytics.SeriesMetadata{Count: tr.TotalBids},
		})
	}
	return series
}
