package services

import (
	"context"
	"testing"
	"time"

	"github.com/bidpulse/bidpulse/internal/config"
	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/store"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestForecastService_Execute(t *testing.T) {
	s := store.NewRecordStore()
	now := time.Now()

	// Completed bids in each of the last three months give a non-trivial
	// completion-rate series to fit.
	for i := 3; i >= 1; i-- {
		created := now.AddDate(0, -i, 0)
		done := created.AddDate(0, 0, 2)
		s.AddCompletions(
			models.BidCompletionRecord{Status: "Awarded", CreatedAt: created,
				CompletedAt: timePtr(done), CompletionHours: hoursPtr(48)},
			models.BidCompletionRecord{Status: "Published", CreatedAt: created},
		)
	}

	svc := NewForecastService(logging.Global(), s, config.DefaultConfig().Analytics)
	resp, err := svc.Execute(context.Background(), &ForecastRequest{Periods: 3, Horizon: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Method != "linear" {
		t.Errorf("method = %q, want linear default", resp.Method)
	}
	if len(resp.History) != 3 {
		t.Errorf("history = %d points, want 3", len(resp.History))
	}
	if len(resp.Projection) != 2 {
		t.Fatalf("projection = %d points, want 2", len(resp.Projection))
	}
	for i, p := range resp.Projection {
		if p.Forecast == nil || !p.Forecast.IsForecast {
			t.Errorf("projection %d missing forecast metadata", i)
		}
	}
}

func TestForecastService_UnknownMethod(t *testing.T) {
	svc := NewForecastService(logging.Global(), store.NewRecordStore(), config.DefaultConfig().Analytics)

	_, err := svc.Execute(context.Background(), &ForecastRequest{Method: "oracle"})
	if err == nil {
		t.Fatal("expected error for unknown method")
	}
	svcErr, ok := err.(*ServiceError)
	if !ok || svcErr.Code != "INVALID_METHOD" {
		t.Errorf("error = %v, want INVALID_METHOD ServiceError", err)
	}
	if svcErr.Details["available_methods"] == nil {
		t.Error("expected available_methods in error details")
	}
}

func TestForecastService_EmptyStoreYieldsEmptyProjection(t *testing.T) {
	svc := NewForecastService(logging.Global(), store.NewRecordStore(), config.DefaultConfig().Analytics)

	resp, err := svc.Execute(context.Background(), &ForecastRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Six months of zero-rate history still fits a flat line at zero
	if len(resp.History) != 6 {
		t.Errorf("history = %d points, want configured 6", len(resp.History))
	}
	for i, p := range resp.Projection {
		if p.Value != 0 {
			t.Errorf("projection %d = %v, want 0 for empty store", i, p.Value)
		}
	}
}
