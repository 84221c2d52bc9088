// Package models defines the record types flowing through the analytics
// engine and the request/response envelopes of the HTTP API.
//
// Optional record fields use pointer types so absence stays explicit; each
// aggregation states its own policy for absent values (skip, zero, or fault)
// instead of coercing silently.
package models

import "time"

// CompletionStatus classifies how a bid completed relative to its deadline.
type CompletionStatus string

const (
	CompletionOnTime CompletionStatus = "On Time"
	CompletionLate   CompletionStatus = "Late"
)

// ResponseStatus classifies a vendor's reaction to a solicitation.
type ResponseStatus string

const (
	ResponseResponded  ResponseStatus = "Responded"
	ResponseNoResponse ResponseStatus = "No Response"
)

// BidCompletionRecord captures one bid-completion lifecycle event.
type BidCompletionRecord struct {
	Status           string           `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	CompletionHours  *float64         `json:"completion_hours,omitempty"`
	CompletionStatus CompletionStatus `json:"completion_status,omitempty"`
}

// VendorResponseRecord captures one vendor solicitation event.
type VendorResponseRecord struct {
	VendorID            int            `json:"vendor_id"`
	CompanyName         string         `json:"company_name"`
	EmailSentDate       time.Time      `json:"email_sent_date"`
	ResponseStatus      ResponseStatus `json:"response_status"`
	ResponseHours       *float64       `json:"response_hours,omitempty"`
	TargetResponseHours *float64       `json:"target_response_hours,omitempty"`
}

// StatusDurationRecord captures one status transition of a bid.
// StatusSequence is unique and monotonically increasing per BidID; sorted by
// it, a bid's transitions define a non-overlapping, gapless timeline.
type StatusDurationRecord struct {
	BidID          int       `json:"bid_id"`
	BidTitle       string    `json:"bid_title,omitempty"`
	StatusSequence int       `json:"status_sequence"`
	NewStatus      string    `json:"new_status"`
	ChangedAt      time.Time `json:"changed_at"`
	DurationHours  *float64  `json:"duration_hours,omitempty"`
}
