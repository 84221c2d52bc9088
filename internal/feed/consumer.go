package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/models"
	"github.com/bidpulse/bidpulse/internal/store"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// Consumer decodes bid events from the feed subjects and loads them into
// the record store. Durations may arrive pre-computed in hours or as raw
// interval strings ("3 days 04:30:00"), which are parsed on ingest.
type Consumer struct {
	store *store.RecordStore
	log   *logging.Logger
}

// NewConsumer creates a Consumer writing into the given store.
func NewConsumer(recordStore *store.RecordStore) *Consumer {
	return &Consumer{
		store: recordStore,
		log:   logging.Global().With("component", "feed.consumer"),
	}
}

// Start subscribes the consumer to all three record subjects.
func (c *Consumer) Start(ctx context.Context, sub Subscriber) error {
	subjects := map[string]MessageHandler{
		SubjectCompletions: c.handleCompletion,
		SubjectResponses:   c.handleResponse,
		SubjectStatuses:    c.handleStatus,
	}

	for subject, handler := range subjects {
		if err := sub.Subscribe(ctx, subject, handler); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
	}

	c.log.Info("Feed consumer started", "subjects", len(subjects))
	return nil
}

// completionEvent is the wire form of a bid completion.
type completionEvent struct {
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	CompletionHours    *float64   `json:"completion_hours"`
	CompletionInterval string     `json:"completion_interval"`
	CompletionStatus   string     `json:"completion_status"`
}

// responseEvent is the wire form of a vendor solicitation outcome.
type responseEvent struct {
	VendorID            int       `json:"vendor_id"`
	CompanyName         string    `json:"company_name"`
	EmailSentDate       time.Time `json:"email_sent_date"`
	ResponseStatus      string    `json:"response_status"`
	ResponseHours       *float64  `json:"response_hours"`
	ResponseInterval    string    `json:"response_interval"`
	TargetResponseHours *float64  `json:"target_response_hours"`
}

// statusEvent is the wire form of a bid status transition.
type statusEvent struct {
	BidID            int       `json:"bid_id"`
	BidTitle         string    `json:"bid_title"`
	StatusSequence   int       `json:"status_sequence"`
	NewStatus        string    `json:"new_status"`
	ChangedAt        time.Time `json:"changed_at"`
	DurationHours    *float64  `json:"duration_hours"`
	DurationInterval string    `json:"duration_interval"`
}

// resolveHours prefers a pre-computed hours value and falls back to
// parsing the raw interval string. Absent both, nil is returned so the
// aggregations apply their skip policies.
func resolveHours(hours *float64, interval string) *float64 {
	if hours != nil {
		return hours
	}
	if interval == "" {
		return nil
	}
	parsed := utils.ParseIntervalHours(interval)
	return &parsed
}

func (c *Consumer) handleCompletion(ctx context.Context, subject string, data []byte) error {
	var event completionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("invalid completion event: %w", err)
	}
	if event.CreatedAt.IsZero() {
		return fmt.Errorf("completion event missing created_at")
	}

	c.store.AddCompletions(models.BidCompletionRecord{
		Status:           event.Status,
		CreatedAt:        event.CreatedAt,
		CompletedAt:      event.CompletedAt,
		CompletionHours:  resolveHours(event.CompletionHours, event.CompletionInterval),
		CompletionStatus: models.CompletionStatus(event.CompletionStatus),
	})

	logging.FromContext(ctx).Debug("Completion record ingested", "subject", subject, "status", event.Status)
	return nil
}

func (c *Consumer) handleResponse(ctx context.Context, subject string, data []byte) error {
	var event responseEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("invalid response event: %w", err)
	}
	if event.CompanyName == "" {
		return fmt.Errorf("response event missing company_name")
	}

	c.store.AddResponses(models.VendorResponseRecord{
		VendorID:            event.VendorID,
		CompanyName:         event.CompanyName,
		EmailSentDate:       event.EmailSentDate,
		ResponseStatus:      models.ResponseStatus(event.ResponseStatus),
		ResponseHours:       resolveHours(event.ResponseHours, event.ResponseInterval),
		TargetResponseHours: event.TargetResponseHours,
	})

	logging.FromContext(ctx).Debug("Response record ingested", "subject", subject, "vendor", event.CompanyName)
	return nil
}

func (c *Consumer) handleStatus(ctx context.Context, subject string, data []byte) error {
	var event statusEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("invalid status event: %w", err)
	}
	if event.NewStatus == "" {
		return fmt.Errorf("status event missing new_status")
	}
	if event.ChangedAt.IsZero() {
		return fmt.Errorf("status event missing changed_at")
	}

	c.store.AddStatusDurations(models.StatusDurationRecord{
		BidID:          event.BidID,
		BidTitle:       event.BidTitle,
		StatusSequence: event.StatusSequence,
		NewStatus:      event.NewStatus,
		ChangedAt:      event.ChangedAt,
		DurationHours:  resolveHours(event.DurationHours, event.DurationInterval),
	})

	logging.FromContext(ctx).Debug("Status record ingested", "subject", subject, "bid_id", event.BidID)
	return nil
}
