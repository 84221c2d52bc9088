package config

import (
	"fmt"
	"math"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Feed      FeedConfig      `mapstructure:"feed"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host     string `mapstructure:"host"`      // Bind address (e.g., 0.0.0.0 for all interfaces)
	HTTPPort int    `mapstructure:"http_port"` // HTTP server port
}

// Addr returns the listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Enabled bool     `mapstructure:"enabled"`  // Enable/disable API key authentication
	APIKeys []string `mapstructure:"api_keys"` // List of valid API keys
}

// FeedConfig represents record feed (message broker) configuration
type FeedConfig struct {
	Type     string `mapstructure:"type"`     // Feed type: nats (default), redis, kafka, memory
	URL      string `mapstructure:"url"`      // Broker URL (e.g., nats://localhost:4222)
	Username string `mapstructure:"username"` // Optional authentication
	Password string `mapstructure:"password"` // Optional authentication

	ConsumerGroup string `mapstructure:"consumer_group"` // Consumer group name
	NodeID        string `mapstructure:"node_id"`        // Unique consumer identity

	// Redis-specific options
	RedisDB     int    `mapstructure:"redis_db"`     // Redis database number (default: 0)
	RedisStream string `mapstructure:"redis_stream"` // Redis stream prefix (default: "bidpulse")

	// Kafka-specific options
	KafkaBrokers []string `mapstructure:"kafka_brokers"` // Kafka broker addresses
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// AnalyticsConfig tunes the computation engine. The weights and ratios
// default to the established business heuristics; overriding them changes
// scoring across the whole service.
type AnalyticsConfig struct {
	VendorMinRequests int     `mapstructure:"vendor_min_requests"` // Minimum solicitations before a vendor is ranked
	TrendPeriods      int     `mapstructure:"trend_periods"`       // Months of completion-trend history
	ForecastHorizon   int     `mapstructure:"forecast_horizon"`    // Months to project forward
	ScoreWeights      Weights `mapstructure:"score_weights"`       // Composite performance-score weights
	BottleneckMedium  float64 `mapstructure:"bottleneck_medium"`   // Mean/median ratio flagging a medium bottleneck
	BottleneckHigh    float64 `mapstructure:"bottleneck_high"`     // Mean/median ratio flagging a high bottleneck
	StatusColors      []Color `mapstructure:"status_colors"`       // Chart color overrides per status
	FallbackColor     string  `mapstructure:"fallback_color"`      // Color for statuses without an override
}

// Weights are the composite-score weights; they must sum to 1.
type Weights struct {
	ResponseRate float64 `mapstructure:"response_rate"`
	ResponseTime float64 `mapstructure:"response_time"`
	OnTimeRate   float64 `mapstructure:"on_time_rate"`
}

// Color binds one status label to a hex color.
type Color struct {
	Status string `mapstructure:"status"`
	Hex    string `mapstructure:"hex"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := c.Analytics.Validate(); err != nil {
		return fmt.Errorf("analytics config: %w", err)
	}

	return nil
}

// Validate validates server configuration
func (c *ServerConfig) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.HTTPPort)
	}

	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}

// Validate validates analytics configuration
func (c *AnalyticsConfig) Validate() error {
	if c.VendorMinRequests < 1 {
		return fmt.Errorf("analytics.vendor_min_requests must be at least 1")
	}

	if c.TrendPeriods < 1 {
		return fmt.Errorf("analytics.trend_periods must be at least 1")
	}

	if c.ForecastHorizon < 1 {
		return fmt.Errorf("analytics.forecast_horizon must be at least 1")
	}

	sum := c.ScoreWeights.ResponseRate + c.ScoreWeights.ResponseTime + c.ScoreWeights.OnTimeRate
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("analytics.score_weights must sum to 1, got %v", sum)
	}

	if c.BottleneckMedium <= 1 {
		return fmt.Errorf("analytics.bottleneck_medium must exceed 1")
	}

	if c.BottleneckHigh < c.BottleneckMedium {
		return fmt.Errorf("analytics.bottleneck_high cannot be below analytics.bottleneck_medium")
	}

	return nil
}
