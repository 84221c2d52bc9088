package forecast

import (
	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// LinearForecaster projects a series with ordinary least squares over the
// observation indices 0..n-1, stepping one calendar month per period.
type LinearForecaster struct{}

// NewLinearForecaster creates a linear-regression forecaster.
func NewLinearForecaster() *LinearForecaster {
	return &LinearForecaster{}
}

func init() {
	Register("linear", NewLinearForecaster())
}

// Name returns the algorithm name.
func (f *LinearForecaster) Name() string {
	return "linear"
}

// Forecast fits y = slope*x + intercept against indices 0..n-1 and emits
// config.Horizon monthly projections after the last observation. Values
// are clamped at zero since negative rates are meaningless. Fewer than
// two observations yields an empty series.
func (f *LinearForecaster) Forecast(series analytics.TimeSeries, config Config) (analytics.TimeSeries, error) {
	minPoints := config.MinDataPoints
	if minPoints < 2 {
		minPoints = 2
	}
	if len(series) < minPoints {
		return analytics.TimeSeries{}, nil
	}

	n := float64(len(series))
	sumX := 0.0
	sumY := 0.0
	sumXY := 0.0
	sumX2 := 0.0

	for i, p := range series {
		x := float64(i)
		sumX += x
		sumY += p.Value
		sumXY += x * p.Value
		sumX2 += x * x
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return analytics.TimeSeries{}, nil
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	lastDate := series[len(series)-1].Date
	projections := make(analytics.TimeSeries, 0, config.Horizon)

	for i := 1; i <= config.Horizon; i++ {
		value := slope*(n+float64(i)-1) + intercept
		if value < 0 {
			value = 0
		}

		projections = append(projections, analytics.TimeSeriesDataPoint{
			Date:  lastDate.AddDate(0, i, 0),
			Value: utils.Round1(value),
			Forecast: &analytics.ForecastMetadata{
				IsForecast: true,
				Confidence: Confidence(i),
			},
		})
	}

	return projections, nil
}
