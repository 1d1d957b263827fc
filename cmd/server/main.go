package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/digitalrebelz/supermarket-price-compare/config"
	"github.com/digitalrebelz/supermarket-price-compare/internal/catalog"
	httpDelivery "github.com/digitalrebelz/supermarket-price-compare/internal/delivery/http"
	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
	"github.com/digitalrebelz/supermarket-price-compare/internal/infrastructure/ah"
	"github.com/digitalrebelz/supermarket-price-compare/internal/infrastructure/cache"
	"github.com/digitalrebelz/supermarket-price-compare/internal/infrastructure/source"
	"github.com/digitalrebelz/supermarket-price-compare/internal/infrastructure/staticsource"
	"github.com/digitalrebelz/supermarket-price-compare/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting supermarket-price-compare v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	store, err := buildCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load retailer catalog: %v", err)
	}

	orchestrator, err := buildOrchestrator(cfg, store)
	if err != nil {
		log.Fatalf("Failed to wire source adapters: %v", err)
	}

	engine := usecase.NewEngine(orchestrator, store, usecase.EngineConfig{
		SimilarityThreshold: cfg.Matching.SimilarityThreshold,
		EnableDebugLogging:  cfg.Matching.EnableDebugLogging,
	})
	log.Printf("Matching: threshold=%.2f, debug=%v",
		cfg.Matching.SimilarityThreshold, cfg.Matching.EnableDebugLogging)

	responseCache, err := buildCache(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	log.Printf("Cache: type=%s, ttl=%s", cfg.Cache.Type, cfg.Cache.TTL)

	handler := httpDelivery.NewHandler(engine, responseCache, cfg.Cache.TTL)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildCatalog loads the retailer catalog from the configured file, or the
// built-in seed when no file is configured.
func buildCatalog(cfg *config.Config) (*catalog.Store, error) {
	if cfg.Catalog.File != "" {
		return catalog.LoadFile(cfg.Catalog.File)
	}
	log.Printf("No catalog file configured, using built-in seed")
	return catalog.NewSeededStore(), nil
}

// buildOrchestrator registers one source adapter per cataloged retailer,
// each wrapped in the retry policy. In demo mode every retailer serves
// seeded offers; otherwise Albert Heijn uses its live API and the rest fall
// back to seeded offers until they grow adapters of their own.
func buildOrchestrator(cfg *config.Config, store *catalog.Store) (*usecase.Orchestrator, error) {
	retailers, err := store.All(context.Background())
	if err != nil {
		return nil, err
	}

	policy := source.RetryPolicy{
		MaxAttempts:    cfg.Source.MaxRetries,
		InitialBackoff: cfg.Source.RetryBackoff,
	}

	orchestrator := usecase.NewOrchestrator(nil)
	for _, retailer := range retailers {
		var adapter domain.SourceAdapter

		if !cfg.Source.DemoMode && retailer.Name == ah.RetailerName {
			client := ah.NewClient(cfg.Source.AHBaseURL, cfg.Source.RateLimit)
			if cfg.Server.Environment == "development" {
				client.SetDebug(true)
			}
			adapter = client
			log.Printf("Source %s: live API (%s)", retailer.Name, cfg.Source.AHBaseURL)
		} else {
			adapter = staticsource.NewAdapter(retailer.Name)
		}

		orchestrator.Register(retailer.Name, source.WithRetry(retailer.Name, adapter, policy))
	}

	return orchestrator, nil
}

// buildCache constructs the search-response cache per configuration.
func buildCache(cfg *config.Config) (domain.CacheRepository, error) {
	if cfg.Cache.Type == "redis" {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
	}
	return cache.NewMemoryCache(), nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
