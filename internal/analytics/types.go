// Package analytics provides the shared output types and statistical
// primitives of the analytics computation engine. Chart and time-series
// transforms live in the charts subpackage, higher-level derivations in
// insights, and projection in forecast.
package analytics

import (
	"sort"
	"time"
)

// ChartDataPoint is one derived bar-chart value handed to the rendering
// layer. Metadata is a tagged variant: exactly one branch is set depending
// on which aggregation produced the point.
type ChartDataPoint struct {
	Label    string        `json:"label"`
	Value    float64       `json:"value"`
	Category string        `json:"category,omitempty"`
	Color    string        `json:"color,omitempty"`
	Metadata ChartMetadata `json:"metadata"`
}

// ChartMetadata carries the per-aggregation auxiliary counts.
type ChartMetadata struct {
	Completion *CompletionMetadata `json:"completion,omitempty"`
	Response   *ResponseMetadata   `json:"response,omitempty"`
}

// CompletionMetadata accompanies completion-by-status points.
type CompletionMetadata struct {
	Count      int     `json:"count"`
	TotalHours float64 `json:"total_hours"`
}

// ResponseMetadata accompanies vendor response-time points.
type ResponseMetadata struct {
	TotalRequests int     `json:"total_requests"`
	Responses     int     `json:"responses"`
	ResponseRate  float64 `json:"response_rate"`
}

// TimeSeriesDataPoint is one time-bucketed value. Historical points carry
// Stats; projected points carry Forecast instead.
type TimeSeriesDataPoint struct {
	Date     time.Time         `json:"date"`
	Value    float64           `json:"value"`
	Stats    *SeriesMetadata   `json:"stats,omitempty"`
	Forecast *ForecastMetadata `json:"forecast,omitempty"`
}

// SeriesMetadata describes the sample behind a historical bucket.
type SeriesMetadata struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// ForecastMetadata marks a projected point and its confidence.
type ForecastMetadata struct {
	IsForecast bool    `json:"is_forecast"`
	Confidence float64 `json:"confidence"`
}

// GanttSegment is one timeline bar: the span a bid spent reaching a status.
type GanttSegment struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	DurationHours float64   `json:"duration_hours"`
	Category      string    `json:"category"`
	Color         string    `json:"color"`
}

// TimeSeries is an ordered collection of time-series points.
type TimeSeries []TimeSeriesDataPoint

// Values extracts just the values from the series.
func (ts TimeSeries) Values() []float64 {
	values := make([]float64, len(ts))
	for i, p := range ts {
		values[i] = p.Value
	}
	return values
}

// SortByDate sorts the series ascending by date, preserving the relative
// order of equal dates.
func (ts TimeSeries) SortByDate() {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].Date.Before(ts[j].Date)
	})
}
