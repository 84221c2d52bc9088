package feed

import (
	"fmt"
	"strings"

	"github.com/bidpulse/bidpulse/internal/config"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// NewSubscriber creates a Subscriber for the configured feed transport.
func NewSubscriber(cfg config.FeedConfig) (Subscriber, error) {
	feedType := utils.FeedType(strings.ToLower(cfg.Type))

	// Default to NATS if not specified
	if feedType == "" {
		feedType = utils.FeedTypeNATS
	}

	switch feedType {
	case utils.FeedTypeNATS:
		return NewNATSSubscriber(cfg.URL, cfg.NodeID, cfg.ConsumerGroup)
	case utils.FeedTypeRedis:
		addr := cfg.URL
		if addr == "" {
			addr = "localhost:6379"
		}
		return NewRedisSubscriber(addr, cfg.Password, cfg.RedisDB, cfg.RedisStream, cfg.ConsumerGroup, cfg.NodeID)
	case utils.FeedTypeKafka:
		return NewKafkaSubscriber(cfg.KafkaBrokers, cfg.ConsumerGroup)
	case utils.FeedTypeMemory:
		return NewMemorySubscriber()
	default:
		return nil, fmt.Errorf("unsupported feed type: %s", feedType)
	}
}
