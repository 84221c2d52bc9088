// Package feed consumes bid-event streams from a message broker and loads
// them into the record store. Four transports are supported: NATS
// JetStream, Kafka, Redis Streams, and an in-process broker for tests.
package feed

import (
	"context"
)

// Subjects carrying the three record families.
const (
	SubjectCompletions = "bids.completions"
	SubjectResponses   = "vendors.responses"
	SubjectStatuses    = "bids.status"
)

// MessageHandler processes one raw message from a subject.
type MessageHandler func(ctx context.Context, subject string, data []byte) error

// Subscriber is a transport-agnostic subscription to broker subjects.
type Subscriber interface {
	// Subscribe attaches a handler to a subject. The subscription lives
	// until Unsubscribe, Close, or ctx cancellation.
	Subscribe(ctx context.Context, subject string, handler MessageHandler) error

	// Unsubscribe detaches from a subject.
	Unsubscribe(subject string) error

	// Close tears down all subscriptions and the broker connection.
	Close() error
}
