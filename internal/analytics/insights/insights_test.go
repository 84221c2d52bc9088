package insights

import (
	"testing"
	"time"

	"github.com/bidpulse/bidpulse/internal/models"
)

func hoursPtr(h float64) *float64 { return &h }

func timePtr(t time.Time) *time.Time { return &t }

func TestCompletionTrends_MonthWindows(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	may := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	june := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	records := []models.BidCompletionRecord{
		{Status: "Awarded", CreatedAt: may, CompletedAt: timePtr(may.AddDate(0, 0, 3)),
			CompletionHours: hoursPtr(72), CompletionStatus: models.CompletionOnTime},
		{Status: "Awarded", CreatedAt: may, CompletedAt: timePtr(may.AddDate(0, 0, 5)),
			CompletionHours: hoursPtr(120), CompletionStatus: models.CompletionLate},
		{Status: "Published", CreatedAt: may}, // never completed
		{Status: "Awarded", CreatedAt: june, CompletedAt: timePtr(june.AddDate(0, 0, 1)),
			CompletionHours: hoursPtr(24), CompletionStatus: models.CompletionOnTime},
		// Outside the window entirely
		{Status: "Awarded", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	trends := CompletionTrends(records, 3, now)
	if len(trends) != 3 {
		t.Fatalf("got %d periods, want 3", len(trends))
	}

	// Oldest first
	if trends[0].Label != "Apr 2025" || trends[2].Label != "Jun 2025" {
		t.Fatalf("period order: %s .. %s", trends[0].Label, trends[2].Label)
	}

	apr := trends[0]
	if apr.TotalBids != 0 || apr.CompletionRate != 0 || apr.OnTimeRate != 0 || apr.AvgCompletionTime != 0 {
		t.Errorf("empty month should be all zero, got %+v", apr)
	}

	mayTrend := trends[1]
	if mayTrend.TotalBids != 3 || mayTrend.CompletedBids != 2 || mayTrend.OnTimeBids != 1 {
		t.Errorf("may counts = %d/%d/%d, want 3/2/1",
			mayTrend.TotalBids, mayTrend.CompletedBids, mayTrend.OnTimeBids)
	}
	if mayTrend.CompletionRate != 66.7 {
		t.Errorf("may completion rate = %v, want 66.7", mayTrend.CompletionRate)
	}
	if mayTrend.OnTimeRate != 50.0 {
		t.Errorf("may on-time rate = %v, want 50.0", mayTrend.OnTimeRate)
	}
	if mayTrend.AvgCompletionTime != 96.0 {
		t.Errorf("may avg completion = %v, want 96.0", mayTrend.AvgCompletionTime)
	}

	juneTrend := trends[2]
	if juneTrend.CompletionRate != 100.0 || juneTrend.OnTimeRate != 100.0 {
		t.Errorf("june rates = %v/%v, want 100/100", juneTrend.CompletionRate, juneTrend.OnTimeRate)
	}
}

func TestCompletionTrends_DefaultPeriods(t *testing.T) {
	trends := CompletionTrends(nil, 0, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	if len(trends) != 6 {
		t.Errorf("got %d periods, want default 6", len(trends))
	}
}

func TestScoreVendors_CompositeAndGrade(t *testing.T) {
	sent := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	records := []models.VendorResponseRecord{
		// Perfect vendor: always responds fast and within target
		{VendorID: 1, CompanyName: "Acme", EmailSentDate: sent,
			ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(6), TargetResponseHours: hoursPtr(24)},
		{VendorID: 1, CompanyName: "Acme", EmailSentDate: sent,
			ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(6), TargetResponseHours: hoursPtr(24)},
		// Never responds
		{VendorID: 2, CompanyName: "Ghost", EmailSentDate: sent, ResponseStatus: models.ResponseNoResponse},
		{VendorID: 2, CompanyName: "Ghost", EmailSentDate: sent, ResponseStatus: models.ResponseNoResponse},
		// Below the significance floor
		{VendorID: 3, CompanyName: "OneShot", EmailSentDate: sent,
			ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(1)},
	}

	scores := ScoreVendors(records, 2, DefaultScoreWeights())
	if len(scores) != 2 {
		t.Fatalf("got %d vendors, want 2", len(scores))
	}

	acme := scores[0]
	if acme.CompanyName != "Acme" {
		t.Fatalf("top vendor = %q, want Acme", acme.CompanyName)
	}
	// 0.4*min(100*1.2,100) + 0.3*(100 - (6/24)*20) + 0.3*100
	// = 40 + 28.5 + 30 = 98.5
	if acme.PerformanceScore != 98.5 {
		t.Errorf("Acme score = %v, want 98.5", acme.PerformanceScore)
	}
	if acme.Grade != "A" {
		t.Errorf("Acme grade = %q, want A", acme.Grade)
	}
	if acme.ResponseRate != 100.0 || acme.AvgResponseTime != 6.0 || acme.OnTimeRate != 100.0 {
		t.Errorf("Acme metrics = %+v", acme)
	}

	ghost := scores[1]
	// 0.4*0 + 0.3*(100 - 0) + 0.3*0 = 30
	if ghost.PerformanceScore != 30.0 {
		t.Errorf("Ghost score = %v, want 30.0", ghost.PerformanceScore)
	}
	if ghost.Grade != "F" {
		t.Errorf("Ghost grade = %q, want F", ghost.Grade)
	}
}

func TestScoreVendors_StableTieOrder(t *testing.T) {
	sent := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	mk := func(id int, name string) []models.VendorResponseRecord {
		return []models.VendorResponseRecord{
			{VendorID: id, CompanyName: name, EmailSentDate: sent,
				ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(12)},
			{VendorID: id, CompanyName: name, EmailSentDate: sent,
				ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(12)},
		}
	}

	records := append(mk(10, "First"), mk(11, "Second")...)
	scores := ScoreVendors(records, 2, DefaultScoreWeights())

	if len(scores) != 2 {
		t.Fatalf("got %d vendors, want 2", len(scores))
	}
	if scores[0].PerformanceScore != scores[1].PerformanceScore {
		t.Fatalf("expected tied scores, got %v / %v", scores[0].PerformanceScore, scores[1].PerformanceScore)
	}
	if scores[0].CompanyName != "First" || scores[1].CompanyName != "Second" {
		t.Errorf("tie order = %q, %q; want first-seen order", scores[0].CompanyName, scores[1].CompanyName)
	}
}

func TestScoreVendors_SameNameDifferentIDAreSeparate(t *testing.T) {
	sent := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	records := []models.VendorResponseRecord{
		{VendorID: 1, CompanyName: "Twin", EmailSentDate: sent, ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(2)},
		{VendorID: 1, CompanyName: "Twin", EmailSentDate: sent, ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(2)},
		{VendorID: 2, CompanyName: "Twin", EmailSentDate: sent, ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(40)},
		{VendorID: 2, CompanyName: "Twin", EmailSentDate: sent, ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(40)},
	}

	scores := ScoreVendors(records, 2, DefaultScoreWeights())
	if len(scores) != 2 {
		t.Fatalf("got %d vendors, want 2 (grouped by id+name)", len(scores))
	}
}

func TestDetectBottlenecks_SeverityThresholds(t *testing.T) {
	mk := func(status string, hours ...float64) []models.StatusDurationRecord {
		records := make([]models.StatusDurationRecord, 0, len(hours))
		for i, h := range hours {
			records = append(records, models.StatusDurationRecord{
				BidID: 1, StatusSequence: i + 1, NewStatus: status, DurationHours: hoursPtr(h),
			})
		}
		return records
	}

	// "Review": median 100, mean 150 -> ratio 1.5 -> medium
	review := mk("Review", 50, 100, 300)
	// "Approval": median 100, mean 210 -> ratio 2.1 -> high
	approval := mk("Approval", 30, 100, 500)
	// "Intake": symmetric, no skew
	intake := mk("Intake", 10, 10, 10)

	records := append(append(review, approval...), intake...)
	bottlenecks := DetectBottlenecks(records, DefaultBottleneckThresholds())
	if len(bottlenecks) != 3 {
		t.Fatalf("got %d statuses, want 3", len(bottlenecks))
	}

	// Sorted descending by mean: Approval (210), Review (150), Intake (10)
	if bottlenecks[0].Status != "Approval" || bottlenecks[1].Status != "Review" || bottlenecks[2].Status != "Intake" {
		t.Fatalf("order = %s, %s, %s", bottlenecks[0].Status, bottlenecks[1].Status, bottlenecks[2].Status)
	}

	if !bottlenecks[0].IsBottleneck || bottlenecks[0].Severity != "high" {
		t.Errorf("Approval = %+v, want high bottleneck", bottlenecks[0])
	}
	if !bottlenecks[1].IsBottleneck || bottlenecks[1].Severity != "medium" {
		t.Errorf("Review = %+v, want medium bottleneck", bottlenecks[1])
	}
	if bottlenecks[2].IsBottleneck || bottlenecks[2].Severity != "low" {
		t.Errorf("Intake = %+v, want low / not flagged", bottlenecks[2])
	}
}

func TestDetectBottlenecks_ZeroMedianStillFlags(t *testing.T) {
	mk := func(status string, hours ...float64) []models.StatusDurationRecord {
		records := make([]models.StatusDurationRecord, 0, len(hours))
		for i, h := range hours {
			records = append(records, models.StatusDurationRecord{
				BidID: 1, StatusSequence: i + 1, NewStatus: status, DurationHours: hoursPtr(h),
			})
		}
		return records
	}

	// "Review": most transitions are instant but one bid stalled for 10
	// hours. Median 0, mean 3.3: the ratio test still applies.
	review := mk("Review", 0, 0, 10)
	// "Intake": nothing ever spent time here at all.
	intake := mk("Intake", 0, 0, 0)

	bottlenecks := DetectBottlenecks(append(review, intake...), DefaultBottleneckThresholds())
	if len(bottlenecks) != 2 {
		t.Fatalf("got %d statuses, want 2", len(bottlenecks))
	}

	reviewB := bottlenecks[0]
	if reviewB.Status != "Review" {
		t.Fatalf("first status = %q, want Review (highest mean)", reviewB.Status)
	}
	if !reviewB.IsBottleneck || reviewB.Severity != "high" {
		t.Errorf("Review = %+v, want high bottleneck despite zero median", reviewB)
	}

	intakeB := bottlenecks[1]
	if intakeB.IsBottleneck || intakeB.Severity != "low" {
		t.Errorf("Intake = %+v, all-zero sample must stay unflagged", intakeB)
	}
}

func TestDetectBottlenecks_SkipsAbsentDurations(t *testing.T) {
	records := []models.StatusDurationRecord{
		{BidID: 1, StatusSequence: 1, NewStatus: "Review"},
		{BidID: 1, StatusSequence: 2, NewStatus: "Review", DurationHours: hoursPtr(10)},
	}

	bottlenecks := DetectBottlenecks(records, DefaultBottleneckThresholds())
	if len(bottlenecks) != 1 {
		t.Fatalf("got %d statuses, want 1", len(bottlenecks))
	}
	if bottlenecks[0].Stats.Count != 1 {
		t.Errorf("sample count = %d, want 1", bottlenecks[0].Stats.Count)
	}
}
