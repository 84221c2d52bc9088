package services

import (
	"context"
	"testing"
	"time"

	"github.com/bidpulse/bidpulse/internal/analytics/charts"
	"github.com/bidpulse/bidpulse/internal/config"
	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/store"
)

func hoursPtr(h float64) *float64 { return &h }

func seededStore() *store.RecordStore {
	s := store.NewRecordStore()
	created := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	s.AddCompletions(
		models.BidCompletionRecord{Status: "Awarded", CreatedAt: created, CompletionHours: hoursPtr(48)},
		models.BidCompletionRecord{Status: "Awarded", CreatedAt: created, CompletionHours: hoursPtr(72)},
		models.BidCompletionRecord{Status: "Cancelled", CreatedAt: created, CompletionHours: hoursPtr(10)},
	)
	s.AddResponses(
		models.VendorResponseRecord{VendorID: 1, CompanyName: "Acme", EmailSentDate: created,
			ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(12)},
		models.VendorResponseRecord{VendorID: 1, CompanyName: "Acme", EmailSentDate: created,
			ResponseStatus: models.ResponseResponded, ResponseHours: hoursPtr(24)},
	)
	s.AddStatusDurations(
		models.StatusDurationRecord{BidID: 1, StatusSequence: 1, NewStatus: "Draft", ChangedAt: created},
		models.StatusDurationRecord{BidID: 1, StatusSequence: 2, NewStatus: "Published",
			ChangedAt: created.Add(48 * time.Hour), DurationHours: hoursPtr(48)},
	)
	return s
}

func newAnalyticsService(s *store.RecordStore) *AnalyticsService {
	return NewAnalyticsService(logging.Global(), s, config.DefaultConfig().Analytics)
}

func TestAnalyticsService_CompletionByStatus(t *testing.T) {
	svc := newAnalyticsService(seededStore())

	points := svc.CompletionByStatus(context.Background())
	if len(points) != 2 {
		t.Fatalf("got %d groups, want 2", len(points))
	}
	if points[0].Label != "Awarded" || points[0].Value != 60.0 {
		t.Errorf("first group = %q/%v, want Awarded/60.0", points[0].Label, points[0].Value)
	}
}

func TestAnalyticsService_VendorResponseTimes(t *testing.T) {
	svc := newAnalyticsService(seededStore())

	points := svc.VendorResponseTimes(context.Background())
	if len(points) != 1 {
		t.Fatalf("got %d vendors, want 1", len(points))
	}
	if points[0].Label != "Acme" || points[0].Value != 18.0 {
		t.Errorf("vendor = %q/%v, want Acme/18.0", points[0].Label, points[0].Value)
	}
}

func TestAnalyticsService_CompletionTimeSeries(t *testing.T) {
	svc := newAnalyticsService(seededStore())
	ctx := context.Background()

	series, err := svc.CompletionTimeSeries(ctx, charts.BucketMonth, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("got %d buckets, want 1", len(series))
	}

	if _, err := svc.CompletionTimeSeries(ctx, "day", ""); err == nil {
		t.Error("expected error for invalid interval")
	} else if svcErr, ok := err.(*ServiceError); !ok || svcErr.Code != "INVALID_INTERVAL" {
		t.Errorf("error = %v, want INVALID_INTERVAL ServiceError", err)
	}

	if _, err := svc.CompletionTimeSeries(ctx, charts.BucketWeek, "velocity"); err == nil {
		t.Error("expected error for invalid metric")
	}
}

func TestAnalyticsService_StatusTimeline(t *testing.T) {
	svc := newAnalyticsService(seededStore())

	segments := svc.StatusTimeline(context.Background())
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if segments[0].Category != "Draft" {
		t.Errorf("first segment category = %q, want Draft", segments[0].Category)
	}
}

func TestAnalyticsService_VendorScoresAndBottlenecks(t *testing.T) {
	svc := newAnalyticsService(seededStore())
	ctx := context.Background()

	scores := svc.VendorScores(ctx)
	if len(scores) != 1 || scores[0].CompanyName != "Acme" {
		t.Fatalf("scores = %+v, want single Acme entry", scores)
	}

	bottlenecks := svc.Bottlenecks(ctx)
	if len(bottlenecks) != 1 || bottlenecks[0].Status != "Published" {
		t.Fatalf("bottlenecks = %+v, want single Published entry", bottlenecks)
	}
}

func TestAnalyticsService_Anomalies(t *testing.T) {
	svc := newAnalyticsService(store.NewRecordStore())
	ctx := context.Background()

	// An empty store yields an unvarying all-zero trend, reported as a
	// flatline for every bucket.
	anomalies, err := svc.Anomalies(ctx, "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(anomalies) != 6 {
		t.Fatalf("got %d anomalies, want 6 flatline buckets", len(anomalies))
	}
	if anomalies[0].Kind != "flatline" {
		t.Errorf("Kind = %q, want flatline", anomalies[0].Kind)
	}

	if _, err := svc.Anomalies(ctx, "wavelet", 0); err == nil {
		t.Error("expected error for unknown detector")
	} else if svcErr, ok := err.(*ServiceError); !ok || svcErr.Code != "INVALID_METHOD" {
		t.Errorf("error = %v, want INVALID_METHOD ServiceError", err)
	}
}

func TestAnalyticsService_StatusColorOverride(t *testing.T) {
	cfg := config.DefaultConfig().Analytics
	cfg.StatusColors = []config.Color{{Status: "Awarded", Hex: "#123456"}}

	svc := NewAnalyticsService(logging.Global(), seededStore(), cfg)
	points := svc.CompletionByStatus(context.Background())
	if points[0].Color != "#123456" {
		t.Errorf("color = %q, want override #123456", points[0].Color)
	}
}
