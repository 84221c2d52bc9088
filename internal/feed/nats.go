package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/utils"
)

var natsLog = logging.Global().With("component", "feed.nats")

// NATSSubscriber implements Subscriber over NATS JetStream with durable
// consumers, so a restarted analytics node resumes where it left off.
type NATSSubscriber struct {
	conn          *nats.Conn
	js            nats.JetStreamContext
	nodeID        string
	consumerGroup string
	subscriptions map[string]*nats.Subscription
	mu            sync.Mutex
}

// NewNATSSubscriber connects to NATS and prepares a JetStream context.
func NewNATSSubscriber(url, nodeID, consumerGroup string) (*NATSSubscriber, error) {
	opts := []nats.Option{
		nats.Name(fmt.Sprintf("bidpulse-feed-%s", nodeID)),
		nats.Timeout(utils.FeedConnectTimeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				natsLog.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			natsLog.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &NATSSubscriber{
		conn:          conn,
		js:            js,
		nodeID:        nodeID,
		consumerGroup: consumerGroup,
		subscriptions: make(map[string]*nats.Subscription),
	}, nil
}

// Subscribe attaches a durable JetStream consumer to the subject.
func (s *NATSSubscriber) Subscribe(ctx context.Context, subject string, handler MessageHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.subscriptions[subject]; exists {
		return fmt.Errorf("already subscribed to subject: %s", subject)
	}

	if err := s.ensureStream(subject); err != nil {
		return err
	}

	// Durable names cannot contain dots
	durableName := fmt.Sprintf("%s-%s-%s", s.consumerGroup, s.nodeID, sanitizeSubject(subject))

	sub, err := s.js.Subscribe(subject, func(msg *nats.Msg) {
		if ctx.Err() != nil {
			_ = msg.Nak()
			return
		}

		if err := handler(ctx, msg.Subject, msg.Data); err != nil {
			natsLog.Error("Failed to handle message", "subject", msg.Subject, "error", err)
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	},
		nats.Durable(durableName),
		nats.ManualAck(),
		nats.MaxAckPending(100),
		nats.AckWait(30*time.Second),
		nats.MaxDeliver(3),
		nats.DeliverAll(),
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	s.subscriptions[subject] = sub
	natsLog.Info("Subscribed to subject", "subject", subject, "durable", durableName)
	return nil
}

// ensureStream creates the backing stream if no stream covers the subject.
func (s *NATSSubscriber) ensureStream(subject string) error {
	if name, err := s.js.StreamNameBySubject(subject); err == nil && name != "" {
		return nil
	}

	streamName := fmt.Sprintf("FEED_%s", sanitizeSubject(subject))
	if _, err := s.js.StreamInfo(streamName); err == nil {
		return nil
	}

	_, err := s.js.AddStream(&nats.StreamConfig{
		Name:      streamName,
		Subjects:  []string{subject},
		Retention: nats.WorkQueuePolicy,
		MaxAge:    24 * time.Hour,
		Storage:   nats.FileStorage,
		Replicas:  1,
	})
	if err != nil && err != nats.ErrStreamNameAlreadyInUse {
		return fmt.Errorf("failed to create stream %s: %w", streamName, err)
	}

	return nil
}

func sanitizeSubject(subject string) string {
	sanitized := strings.ReplaceAll(subject, ".", "_")
	return strings.ReplaceAll(sanitized, "-", "_")
}

// Unsubscribe detaches from a subject.
func (s *NATSSubscriber) Unsubscribe(subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, exists := s.subscriptions[subject]
	if !exists {
		return fmt.Errorf("not subscribed to subject: %s", subject)
	}

	if err := sub.Unsubscribe(); err != nil {
		return fmt.Errorf("failed to unsubscribe from %s: %w", subject, err)
	}

	delete(s.subscriptions, subject)
	natsLog.Info("Unsubscribed from subject", "subject", subject)
	return nil
}

// Close drops all subscriptions and the connection.
func (s *NATSSubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for subject, sub := range s.subscriptions {
		if err := sub.Unsubscribe(); err != nil {
			natsLog.Warn("Failed to unsubscribe", "subject", subject, "error", err)
		}
	}
	s.subscriptions = make(map[string]*nats.Subscription)

	s.conn.Close()
	natsLog.Info("NATS feed closed")
	return nil
}
