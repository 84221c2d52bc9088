package charts

import (
	"sort"
	"time"

	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// BucketInterval is the time bucket width for series aggregation.
type BucketInterval string

const (
	// BucketWeek buckets by ISO week (Monday start)
	BucketWeek BucketInterval = "week"
	// BucketMonth buckets by calendar month
	BucketMonth BucketInterval = "month"
)

// IsValid reports whether the interval is a recognized bucket width.
func (b BucketInterval) IsValid() bool {
	return b == BucketWeek || b == BucketMonth
}

// Observation is one dated sample feeding time-series bucketing. Extractors
// apply the skip-absent policy before observations reach BuildTimeSeries.
type Observation struct {
	Date  time.Time
	Value float64
}

// BucketStart truncates t to the start of its bucket.
func BucketStart(t time.Time, interval BucketInterval) time.Time {
	switch interval {
	case BucketWeek:
		// ISO week starts on Monday
		offset := (int(t.Weekday()) + 6) % 7
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return day.AddDate(0, 0, -offset)
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
}

// BuildTimeSeries accumulates observations into fixed-width buckets and
// reduces each bucket to its mean, with count/min/max retained for tooltips.
// Output is sorted ascending by bucket start.
func BuildTimeSeries(obs []Observation, interval BucketInterval) analytics.TimeSeries {
	type bucket struct {
		count int
		sum   float64
		min   float64
		max   float64
	}

	// Keyed by UnixNano so bucket identity ignores time.Time internals
	// like the location pointer.
	buckets := make(map[int64]*bucket)
	startTimes := make(map[int64]time.Time)

	for _, o := range obs {
		start := BucketStart(o.Date, interval)
		key := start.UnixNano()
		b, ok := buckets[key]
		if !ok {
			buckets[key] = &bucket{count: 1, sum: o.Value, min: o.Value, max: o.Value}
			startTimes[key] = start
			continue
		}
		b.count++
		b.sum += o.Value
		if o.Value < b.min {
			b.min = o.Value
		}
		if o.Value > b.max {
			b.max = o.Value
		}
	}

	keys := make([]int64, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	series := make(analytics.TimeSeries, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		series = append(series, analytics.TimeSeriesDataPoint{
			Date:  startTimes[key],
			Value: utils.Round1(b.sum / float64(b.count)),
			Stats: &analytics.SeriesMetadata{
				Count: b.count,
				Min:   b.min,
				Max:   b.max,
			},
		})
	}

	return series
}

// CompletionObservations extracts (created_at, completion_hours) samples
// from bid completions, skipping records with an absent duration.
func CompletionObservations(records []models.BidCompletionRecord) []Observation {
	obs := make([]Observation, 0, len(records))
	for _, r := range records {
		if r.CompletionHours == nil {
			continue
		}
		obs = append(obs, Observation{Date: r.CreatedAt, Value: *r.CompletionHours})
	}
	return obs
}

// ResponseObservations extracts (email_sent_date, response_hours) samples
// from vendor solicitations, skipping records with an absent response time.
func ResponseObservations(records []models.VendorResponseRecord) []Observation {
	obs := make([]Observation, 0, len(records))
	for _, r := range records {
		if r.ResponseHours == nil {
			continue
		}
		obs = append(obs, Observation{Date: r.EmailSentDate, Value: *r.ResponseHours})
	}
	return obs
}
