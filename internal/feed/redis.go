package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bidpulse/bidpulse/internal/logging"
	"github.com/bidpulse/bidpulse/internal/utils"
)

var redisLog = logging.Global().With("component", "feed.redis")

// RedisSubscriber implements Subscriber over Redis Streams with consumer
// groups. Messages ACK only after the handler succeeds.
type RedisSubscriber struct {
	client        *redis.Client
	streamPrefix  string
	consumerGroup string
	consumerID    string
	subscriptions map[string]context.CancelFunc
	mu            sync.Mutex
}

// NewRedisSubscriber connects to Redis and verifies the connection.
func NewRedisSubscriber(addr, password string, db int, streamPrefix, consumerGroup, consumerID string) (*RedisSubscriber, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  utils.FeedConnectTimeout,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), utils.FeedConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if streamPrefix == "" {
		streamPrefix = "bidpulse"
	}

	return &RedisSubscriber{
		client:        client,
		streamPrefix:  streamPrefix,
		consumerGroup: consumerGroup,
		consumerID:    consumerID,
		subscriptions: make(map[string]context.CancelFunc),
	}, nil
}

// Subscribe joins the consumer group on the subject's stream.
func (s *RedisSubscriber) Subscribe(ctx context.Context, subject string, handler MessageHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	streamName := s.streamName(subject)

	if _, exists := s.subscriptions[streamName]; exists {
		return fmt.Errorf("already subscribed to stream: %s", streamName)
	}

	err := s.client.XGroupCreateMkStream(ctx, streamName, s.consumerGroup, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	s.subscriptions[streamName] = cancel

	go s.consume(subCtx, streamName, subject, handler)

	redisLog.Info("Subscribed to Redis stream", "stream", streamName, "group", s.consumerGroup, "consumer", s.consumerID)
	return nil
}

func (s *RedisSubscriber) consume(ctx context.Context, streamName, subject string, handler MessageHandler) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		streams, err := s.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    s.consumerGroup,
			Consumer: s.consumerID,
			Streams:  []string{streamName, ">"},
			Count:    100,
			Block:    time.Second,
		}).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			redisLog.Error("Failed to read from stream", "stream", streamName, "error", err)
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range streams {
			for _, message := range stream.Messages {
				data, ok := message.Values["data"].(string)
				if !ok {
					redisLog.Warn("Invalid message format", "stream", streamName, "id", message.ID)
					s.client.XAck(ctx, streamName, s.consumerGroup, message.ID)
					continue
				}

				if err := handler(ctx, subject, []byte(data)); err != nil {
					redisLog.Error("Failed to handle message", "stream", streamName, "id", message.ID, "error", err)
					// No ACK: message will be redelivered
					continue
				}

				if err := s.client.XAck(ctx, streamName, s.consumerGroup, message.ID).Err(); err != nil {
					redisLog.Error("Failed to ACK message", "stream", streamName, "id", message.ID, "error", err)
				}
			}
		}
	}
}

func (s *RedisSubscriber) streamName(subject string) string {
	return fmt.Sprintf("%s:%s", s.streamPrefix, subject)
}

// Unsubscribe leaves a stream.
func (s *RedisSubscriber) Unsubscribe(subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	streamName := s.streamName(subject)
	cancel, exists := s.subscriptions[streamName]
	if !exists {
		return fmt.Errorf("not subscribed to stream: %s", streamName)
	}

	cancel()
	delete(s.subscriptions, streamName)
	redisLog.Info("Unsubscribed from Redis stream", "stream", streamName)
	return nil
}

// Close drops all subscriptions and the connection.
func (s *RedisSubscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cancel := range s.subscriptions {
		cancel()
	}
	s.subscriptions = make(map[string]context.CancelFunc)

	if err := s.client.Close(); err != nil {
		return fmt.Errorf("failed to close Redis client: %w", err)
	}

	redisLog.Info("Redis feed closed")
	return nil
}
