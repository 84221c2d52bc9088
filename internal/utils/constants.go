package utils

import "time"

// =============================================================================
// Timeout Constants
// =============================================================================

const (
	// DefaultRequestTimeout bounds how long the server reads a request
	DefaultRequestTimeout = 30 * time.Second

	// FeedConnectTimeout is the timeout for establishing feed connections
	FeedConnectTimeout = 10 * time.Second
)

// =============================================================================
// Analytics Constants
// =============================================================================

const (
	// DefaultTrendPeriods is the default number of calendar months covered
	// by completion-trend derivations
	DefaultTrendPeriods = 6

	// DefaultForecastHorizon is the default number of projected periods
	DefaultForecastHorizon = 3

	// DefaultVendorMinRequests is the statistical-significance floor for
	// vendor aggregations: vendors with fewer total requests are excluded
	DefaultVendorMinRequests = 2

	// HoursPerDay is the number of hours in a day
	HoursPerDay = 24.0
)

// =============================================================================
// Batch Size Constants
// =============================================================================

const (
	// MaxBatchSize is the maximum allowed batch size
	MaxBatchSize = 10000
)

// =============================================================================
// Feed Type Constants
// =============================================================================

// FeedType represents the transport backing the record feed
type FeedType string

const (
	// FeedTypeNATS represents NATS JetStream (default)
	FeedTypeNATS FeedType = "nats"

	// FeedTypeRedis represents Redis Streams
	FeedTypeRedis FeedType = "redis"

	// FeedTypeKafka represents Apache Kafka
	FeedTypeKafka FeedType = "kafka"

	// FeedTypeMemory represents the in-memory broker (for testing)
	FeedTypeMemory FeedType = "memory"
)
