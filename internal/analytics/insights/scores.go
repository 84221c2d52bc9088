package insights

import (
	"sort"

	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// ScoreWeights are the composite performance-score weights. They must sum
// to 1; DefaultScoreWeights mirrors the tracker's 0.4/0.3/0.3 split.
type ScoreWeights struct {
	ResponseRate float64
	ResponseTime float64
	OnTimeRate   float64
}

// DefaultScoreWeights returns the standard weighting.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{ResponseRate: 0.4, ResponseTime: 0.3, OnTimeRate: 0.3}
}

// VendorScore ranks one vendor's responsiveness for procurement decisions.
type VendorScore struct {
	VendorID         int     `json:"vendor_id"`
	CompanyName      string  `json:"company_name"`
	TotalRequests    int     `json:"total_requests"`
	Responses        int     `json:"responses"`
	ResponseRate     float64 `json:"response_rate"`
	AvgResponseTime  float64 `json:"avg_response_time"`
	OnTimeRate       float64 `json:"on_time_rate"`
	PerformanceScore float64 `json:"performance_score"`
	Grade            string  `json:"grade"`
}

type vendorKey struct {
	id   int
	name string
}

// ScoreVendors groups solicitations by (vendor_id, company_name), computes
// response metrics and the composite performance score, and returns vendors
// sorted descending by score. Vendors below minRequests are excluded. Ties
// keep first-seen order so the ranking is deterministic.
func ScoreVendors(records []models.VendorResponseRecord, minRequests int, weights ScoreWeights) []VendorScore {
	type group struct {
		totalRequests int
		responses     int
		totalHours    float64
		withTarget    int
		withinTarget  int
	}

	groups := make(map[vendorKey]*group)
	var order []vendorKey

	for _, r := range records {
		key := vendorKey{id: r.VendorID, name: r.CompanyName}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.totalRequests++
		if r.ResponseStatus != models.ResponseResponded || r.ResponseHours == nil {
			continue
		}
		g.responses++
		g.totalHours += *r.ResponseHours
		if r.TargetResponseHours != nil {
			g.withTarget++
			if *r.ResponseHours <= *r.TargetResponseHours {
				g.withinTarget++
			}
		}
	}

	scores := make([]VendorScore, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if g.totalRequests < minRequests {
			continue
		}

		responseRate := float64(g.responses) / float64(g.totalRequests) * 100

		avgResponseTime := 0.0
		if g.responses > 0 {
			avgResponseTime = g.totalHours / float64(g.responses)
		}

		onTimeRate := 0.0
		if g.withTarget > 0 {
			onTimeRate = float64(g.withinTarget) / float64(g.withTarget) * 100
		}

		score := compositeScore(responseRate, avgResponseTime, onTimeRate, weights)

		scores = append(scores, VendorScore{
			VendorID:         key.id,
			CompanyName:      key.name,
			TotalRequests:    g.totalRequests,
			Responses:        g.responses,
			ResponseRate:     utils.Round1(responseRate),
			AvgResponseTime:  utils.Round1(avgResponseTime),
			OnTimeRate:       utils.Round1(onTimeRate),
			PerformanceScore: score,
			Grade:            gradeFor(score),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].PerformanceScore > scores[j].PerformanceScore
	})

	return scores
}

// compositeScore blends the three metrics. Response rate is boosted 1.2x
// and capped at 100; response time converts to a 0-100 scale losing 20
// points per day of average delay.
func compositeScore(responseRate, avgResponseTime, onTimeRate float64, w ScoreWeights) float64 {
	rateComponent := responseRate * 1.2
	if rateComponent > 100 {
		rateComponent = 100
	}

	timeComponent := 100 - (avgResponseTime/utils.HoursPerDay)*20
	if timeComponent < 0 {
		timeComponent = 0
	}

	return utils.Round1(w.ResponseRate*rateComponent + w.ResponseTime*timeComponent + w.OnTimeRate*onTimeRate)
}

func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}
