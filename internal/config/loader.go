package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/bidpulse/bidpulse/internal/analytics"
	"github.com/bidpulse/bidpulse/internal/analytics/insights"
	"github.com/bidpulse/bidpulse/internal/utils"
)

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/bidpulse")
	}

	setDefaults(v)

	// Enable environment variable overrides
	v.SetEnvPrefix("BIDPULSE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; use defaults
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults registers every default with viper so partial config files
// inherit the rest. Values come from DefaultConfig, the single source of
// truth for defaults.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("server.host", def.Server.Host)
	v.SetDefault("server.http_port", def.Server.HTTPPort)

	v.SetDefault("feed.type", def.Feed.Type)
	v.SetDefault("feed.url", def.Feed.URL)
	v.SetDefault("feed.consumer_group", def.Feed.ConsumerGroup)
	v.SetDefault("feed.node_id", def.Feed.NodeID)
	v.SetDefault("feed.redis_stream", def.Feed.RedisStream)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output_path", def.Logging.OutputPath)

	v.SetDefault("analytics.vendor_min_requests", def.Analytics.VendorMinRequests)
	v.SetDefault("analytics.trend_periods", def.Analytics.TrendPeriods)
	v.SetDefault("analytics.forecast_horizon", def.Analytics.ForecastHorizon)
	v.SetDefault("analytics.score_weights.response_rate", def.Analytics.ScoreWeights.ResponseRate)
	v.SetDefault("analytics.score_weights.response_time", def.Analytics.ScoreWeights.ResponseTime)
	v.SetDefault("analytics.score_weights.on_time_rate", def.Analytics.ScoreWeights.OnTimeRate)
	v.SetDefault("analytics.bottleneck_medium", def.Analytics.BottleneckMedium)
	v.SetDefault("analytics.bottleneck_high", def.Analytics.BottleneckHigh)
	v.SetDefault("analytics.fallback_color", def.Analytics.FallbackColor)
}

// parseConfig parses viper config into Config struct
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from file or returns default config
func LoadOrDefault(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// DefaultConfig returns default configuration. Analytics defaults come
// from the analytics packages themselves so tuning a threshold in one
// place changes both the engine default and the config default.
func DefaultConfig() *Config {
	weights := insights.DefaultScoreWeights()
	thresholds := insights.DefaultBottleneckThresholds()

	return &Config{
		Server: ServerConfig{
			Host:     "0.0.0.0",
			HTTPPort: 8080,
		},
		Feed: FeedConfig{
			Type:          "nats",
			URL:           "nats://localhost:4222",
			ConsumerGroup: "bidpulse-analytics",
			NodeID:        "analytics-1",
			RedisStream:   "bidpulse",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stdout",
		},
		Analytics: AnalyticsConfig{
			VendorMinRequests: utils.DefaultVendorMinRequests,
			TrendPeriods:      utils.DefaultTrendPeriods,
			ForecastHorizon:   utils.DefaultForecastHorizon,
			ScoreWeights: Weights{
				ResponseRate: weights.ResponseRate,
				ResponseTime: weights.ResponseTime,
				OnTimeRate:   weights.OnTimeRate,
			},
			BottleneckMedium: thresholds.Medium,
			BottleneckHigh:   thresholds.High,
			FallbackColor:    analytics.DefaultFallbackColor,
		},
	}
}
