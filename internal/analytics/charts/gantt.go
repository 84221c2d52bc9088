package charts

import (
	"fmt"
	"sort"

	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// StatusTimeline expands status transitions into Gantt segments. Within a
// bid, transitions sorted by sequence define a gapless timeline: each
// segment starts where the previous transition happened and ends at its own
// changed_at. The first transition has no predecessor and becomes a
// zero-duration opening segment. All bids' segments are flattened and
// sorted ascending by start date.
func StatusTimeline(records []models.StatusDurationRecord, colors analytics.ColorMap) []analytics.GanttSegment {
	groups := make(map[int][]models.StatusDurationRecord)
	var order []int

	for _, r := range records {
		if _, ok := groups[r.BidID]; !ok {
			order = append(order, r.BidID)
		}
		groups[r.BidID] = append(groups[r.BidID], r)
	}

	segments := make([]analytics.GanttSegment, 0, len(records))
	for _, bidID := range order {
		transitions := groups[bidID]
		sort.SliceStable(transitions, func(i, j int) bool {
			return transitions[i].StatusSequence < transitions[j].StatusSequence
		})

		for i, tr := range transitions {
			start := tr.ChangedAt
			if i > 0 {
				start = transitions[i-1].ChangedAt
			}

			segments = append(segments, analytics.GanttSegment{
				ID:            fmt.Sprintf("%d-%d", tr.BidID, tr.StatusSequence),
				Name:          bidName(tr),
				StartDate:     start,
				EndDate:       tr.ChangedAt,
				DurationHours: utils.Round1(tr.ChangedAt.Sub(start).Hours()),
				Category:      tr.NewStatus,
				Color:         colors.ColorFor(tr.NewStatus),
			})
		}
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartDate.Before(segments[j].StartDate)
	})

	return segments
}

func bidName(r models.StatusDurationRecord) string {
	if r.BidTitle != "" {
		return r.BidTitle
	}
	return fmt.Sprintf("Bid #%d", r.BidID)
}
