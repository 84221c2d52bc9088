package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/utils"
)

var kafkaLog = logging.Global().With("component", "feed.kafka")

// KafkaSubscriber implements Subscriber for Kafka. One reader per topic;
// offsets commit only after the handler succeeds, so failed events are
// redelivered.
type KafkaSubscriber struct {
	brokers       []string
	consumerGroup string
	readers       map[string]*kafka.Reader
	cancels       map[string]context.CancelFunc
	mu            sync.Mutex
}

// NewKafkaSubscriber creates a Kafka subscriber for the given brokers.
func NewKafkaSubscriber(brokers []string, consumerGroup string) (*KafkaSubscriber, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}

	return &KafkaSubscriber{
		brokers:       brokers,
		consumerGroup: consumerGroup,
		readers:       make(map[string]*kafka.Reader),
		cancels:       make(map[string]context.CancelFunc),
	}, nil
}

// Subscribe starts consuming the topic named after the subject.
func (s *KafkaSubscriber) Subscribe(ctx context.Context, subject string, handler MessageHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.readers[subject]; exists {
		return fmt.Errorf("already subscribed to topic: %s", subject)
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:               s.brokers,
		GroupID:               s.consumerGroup,
		Topic:                 subject,
		Dialer:                &kafka.Dialer{Timeout: utils.FeedConnectTimeout, DualStack: true},
		MinBytes:              1,
		MaxBytes:              10e6,
		MaxWait:               3 * time.Second,
		CommitInterval:        time.Second,
		StartOffset:           kafka.LastOffset,
		HeartbeatInterval:     3 * time.Second,
		SessionTimeout:        30 * time.Second,
		RebalanceTimeout:      60 * time.Second,
		WatchPartitionChanges: true,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			kafkaLog.Debug(fmt.Sprintf(msg, args...))
		}),
	})

	s.readers[subject] = reader

	subCtx, cancel := context.WithCancel(ctx)
	s.cancels[subject] = cancel

	go s.consume(subCtx, reader, subject, handler)

	kafkaLog.Info("Subscribed to Kafka topic", "topic", subject, "group", s.consumerGroup)
	return nil
}

func (s *KafkaSubscriber) consume(ctx context.Context, reader *kafka.Reader, subject string, handler MessageHandler) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			kafkaLog.Error("Failed to fetch message", "topic", subject, "error", err)
			time.Sleep(time.Second)
			continue
		}

		if err := handler(ctx, subject, msg.Value); err != nil {
			kafkaLog.Error("Failed to handle message", "topic", subject, "offset", msg.Offset, "error", err)
			// No commit: message will be reprocessed
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			kafkaLog.Error("Failed to commit message", "topic", subject, "offset", msg.Offset, "error", err)
		}
	}
}

// Unsubscribe stops consuming a topic.
func (s *KafkaSubscriber) Unsubscribe(subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancel, exists := s.cancels[subject]
	if !exists {
		return fmt.Errorf("not subscribed to topic: %s", subject)
	}

	cancel()
	delete(s.cancels, subject)

	if reader, ok := s.readers[subject]; ok {
		if err := reader.Close(); err != nil {
			kafkaLog.Warn("Failed to close reader", "topic", subject, "error", err)
		}
		delete(s.readers, subject)
	}

	kafkaLog.Info("Unsubscribed from Kafka topic", "topic", subject)
	return nil
}

// Close stops all readers.
func (s *KafkaSubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = make(map[string]context.CancelFunc)

	var lastErr error
	for subject, reader := range s.readers {
		if err := reader.Close(); err != nil {
			kafkaLog.Warn("Failed to close reader", "topic", subject, "error", err)
			lastErr = err
		}
	}
	s.readers = make(map[string]*kafka.Reader)

	kafkaLog.Info("Kafka feed closed")
	return lastErr
}
