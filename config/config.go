package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Source   SourceConfig
	Cache    CacheConfig
	Matching MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds the retailer catalog source. With an empty file the
// built-in seed is used.
type CatalogConfig struct {
	File string `mapstructure:"file"`
}

// SourceConfig holds retailer source adapter configuration
type SourceConfig struct {
	AHBaseURL    string        `mapstructure:"ah_base_url"`
	RateLimit    float64       `mapstructure:"rate_limit"` // requests per second per adapter
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	DemoMode     bool          `mapstructure:"demo_mode"` // serve seeded offers instead of live APIs
}

// CacheConfig holds search-response cache configuration
type CacheConfig struct {
	Type          string        `mapstructure:"type"` // "memory" or "redis"
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds product matching configuration
type MatchingConfig struct {
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	EnableDebugLogging  bool    `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricecompare/")

	v.SetEnvPrefix("PRICECOMPARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults suffice
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Catalog defaults: empty file means built-in seed
	v.SetDefault("catalog.file", "")

	// Source defaults
	v.SetDefault("source.ah_base_url", "https://www.ah.nl")
	v.SetDefault("source.rate_limit", 0.5)
	v.SetDefault("source.max_retries", 3)
	v.SetDefault("source.retry_backoff", "500ms")
	v.SetDefault("source.demo_mode", true)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "15m")

	// Matching defaults
	v.SetDefault("matching.similarity_threshold", 0.7)
	v.SetDefault("matching.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisAddr == "" {
		return fmt.Errorf("Redis address is required when cache type is 'redis'")
	}

	if t := config.Matching.SimilarityThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("similarity threshold must be in (0, 1], got: %v", t)
	}

	if config.Source.MaxRetries < 1 {
		return fmt.Errorf("source max retries must be at least 1, got: %d", config.Source.MaxRetries)
	}

	return nil
}
