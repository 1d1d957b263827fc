package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cleanupEnv := func() {
		os.Unsetenv("PRICECOMPARE_SERVER_PORT")
		os.Unsetenv("PRICECOMPARE_SERVER_ENVIRONMENT")
		os.Unsetenv("PRICECOMPARE_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("PRICECOMPARE_CATALOG_FILE")
		os.Unsetenv("PRICECOMPARE_SOURCE_AH_BASE_URL")
		os.Unsetenv("PRICECOMPARE_SOURCE_RATE_LIMIT")
		os.Unsetenv("PRICECOMPARE_SOURCE_MAX_RETRIES")
		os.Unsetenv("PRICECOMPARE_SOURCE_DEMO_MODE")
		os.Unsetenv("PRICECOMPARE_CACHE_TYPE")
		os.Unsetenv("PRICECOMPARE_CACHE_REDIS_ADDR")
		os.Unsetenv("PRICECOMPARE_CACHE_TTL")
		os.Unsetenv("PRICECOMPARE_MATCHING_SIMILARITY_THRESHOLD")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Catalog.File != "" {
			t.Errorf("Catalog.File = %s, want empty (built-in seed)", cfg.Catalog.File)
		}
		if cfg.Source.AHBaseURL != "https://www.ah.nl" {
			t.Errorf("Source.AHBaseURL = %s, want https://www.ah.nl", cfg.Source.AHBaseURL)
		}
		if cfg.Source.RateLimit != 0.5 {
			t.Errorf("Source.RateLimit = %v, want 0.5", cfg.Source.RateLimit)
		}
		if cfg.Source.MaxRetries != 3 {
			t.Errorf("Source.MaxRetries = %d, want 3", cfg.Source.MaxRetries)
		}
		if cfg.Source.RetryBackoff != 500*time.Millisecond {
			t.Errorf("Source.RetryBackoff = %v, want 500ms", cfg.Source.RetryBackoff)
		}
		if !cfg.Source.DemoMode {
			t.Error("Source.DemoMode = false, want true by default")
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 15*time.Minute {
			t.Errorf("Cache.TTL = %v, want 15m", cfg.Cache.TTL)
		}
		if cfg.Matching.SimilarityThreshold != 0.7 {
			t.Errorf("Matching.SimilarityThreshold = %v, want 0.7", cfg.Matching.SimilarityThreshold)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICECOMPARE_SERVER_PORT", "9090")
		os.Setenv("PRICECOMPARE_SERVER_ENVIRONMENT", "production")
		os.Setenv("PRICECOMPARE_SOURCE_AH_BASE_URL", "https://ah.test.local")
		os.Setenv("PRICECOMPARE_SOURCE_DEMO_MODE", "false")
		os.Setenv("PRICECOMPARE_CACHE_TYPE", "redis")
		os.Setenv("PRICECOMPARE_CACHE_REDIS_ADDR", "localhost:6379")
		os.Setenv("PRICECOMPARE_CACHE_TTL", "1h")
		os.Setenv("PRICECOMPARE_MATCHING_SIMILARITY_THRESHOLD", "0.85")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Source.AHBaseURL != "https://ah.test.local" {
			t.Errorf("Source.AHBaseURL = %s", cfg.Source.AHBaseURL)
		}
		if cfg.Source.DemoMode {
			t.Error("Source.DemoMode = true, want false")
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisAddr != "localhost:6379" {
			t.Errorf("Cache.RedisAddr = %s", cfg.Cache.RedisAddr)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Matching.SimilarityThreshold != 0.85 {
			t.Errorf("Matching.SimilarityThreshold = %v, want 0.85", cfg.Matching.SimilarityThreshold)
		}
	})

	t.Run("fails for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICECOMPARE_CACHE_TYPE", "invalid")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails for redis cache without address", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICECOMPARE_CACHE_TYPE", "redis")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for missing redis address")
		}
	})

	t.Run("fails for out-of-range similarity threshold", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICECOMPARE_MATCHING_SIMILARITY_THRESHOLD", "1.5")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for threshold > 1")
		}
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Cache:    CacheConfig{Type: "memory"},
			Source:   SourceConfig{MaxRetries: 3},
			Matching: MatchingConfig{SimilarityThreshold: 0.7},
		}
	}

	t.Run("accepts a valid configuration", func(t *testing.T) {
		if err := validate(base()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("accepts redis cache with address", func(t *testing.T) {
		cfg := base()
		cfg.Cache.Type = "redis"
		cfg.Cache.RedisAddr = "localhost:6379"
		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("rejects unknown cache type", func(t *testing.T) {
		cfg := base()
		cfg.Cache.Type = "memcached"
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})

	t.Run("rejects zero similarity threshold", func(t *testing.T) {
		cfg := base()
		cfg.Matching.SimilarityThreshold = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})

	t.Run("rejects zero max retries", func(t *testing.T) {
		cfg := base()
		cfg.Source.MaxRetries = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})
}
