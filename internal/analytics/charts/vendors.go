package charts

import (
	"sort"

	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// VendorResponseTimes groups vendor solicitations by company name and
// reduces each group to the mean response hours among responders. Vendors
// below minRequests total solicitations are excluded as statistically
// insignificant. Output is sorted ascending by value; equal values keep
// first-seen vendor order.
func VendorResponseTimes(records []models.VendorResponseRecord, minRequests int) []analytics.ChartDataPoint {
	type group struct {
		totalRequests int
		responses     int
		totalHours    float64
	}

	groups := make(map[string]*group)
	var order []string

	for _, r := range records {
		g, ok := groups[r.CompanyName]
		if !ok {
			g = &group{}
			groups[r.CompanyName] = g
			order = append(order, r.CompanyName)
		}
		g.totalRequests++
		if r.ResponseStatus == models.ResponseResponded && r.ResponseHours != nil {
			g.responses++
			g.totalHours += *r.ResponseHours
		}
	}

	points := make([]analytics.ChartDataPoint, 0, len(order))
	for _, name := range order {
		g := groups[name]
		if g.totalRequests < minRequests {
			continue
		}

		value := 0.0
		if g.responses > 0 {
			value = utils.Round1(g.totalHours / float64(g.responses))
		}

		responseRate := utils.Round1(float64(g.responses) / float64(g.totalRequests) * 100)

		points = append(points, analytics.ChartDataPoint{
			Label: name,
			Value: value,
			Metadata: analytics.ChartMetadata{
				Response: &analytics.ResponseMetadata{
					TotalRequests: g.totalRequests,
					Responses:     g.responses,
					ResponseRate:  responseRate,
				},
			},
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value < points[j].Value
	})

	return points
}
