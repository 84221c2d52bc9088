// Package charts groups raw process records by categorical or temporal keys
// and reduces each group to one chart-ready data point. Every transform is a
// pure function: inputs are never mutated, grouping keys derive
// deterministically from record fields, and ties keep their original
// relative order.
package charts

import (
	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// CompletionByStatus groups bid completions by status and reduces each group
// to its mean completion hours. Records without a completion duration are
// skipped; they contribute to neither numerator nor denominator.
func CompletionByStatus(records []models.BidCompletionRecord, colors analytics.ColorMap) []analytics.ChartDataPoint {
	type group struct {
		count int
		total float64
	}

	groups := make(map[string]*group)
	var order []string

	for _, r := range records {
		if r.CompletionHours == nil {
			continue
		}
		g, ok := groups[r.Status]
		if !ok {
			g = &group{}
			groups[r.Status] = g
			order = append(order, r.Status)
		}
		g.count++
		g.total += *r.CompletionHours
	}

	points := make([]analytics.ChartDataPoint, 0, len(order))
	for _, status := range order {
		g := groups[status]
		points = append(points, analytics.ChartDataPoint{
			Label:    status,
			Value:    utils.Round1(g.total / float64(g.count)),
			Category: status,
			Color:    colors.ColorFor(status),
			Metadata: analytics.ChartMetadata{
				Completion: &analytics.CompletionMetadata{
					Count:      g.count,
					TotalHours: g.total,
				},
			},
		})
	}

	return points
}
