package domain

import (
	"context"
	"time"
)

// SourceAdapter is the per-retailer search capability. Implementations talk
// to one retailer's API or data set and must never let that retailer's
// failure escape as anything other than an error return: the orchestrator
// converts errors into empty offer lists.
type SourceAdapter interface {
	Search(ctx context.Context, query string) ([]ProductOffer, error)
	GetDetails(ctx context.Context, url string) (*ProductOffer, error)
}

// RetailerStore provides read access to retailer profiles. The engine takes
// one snapshot per comparison call and never writes.
type RetailerStore interface {
	All(ctx context.Context) ([]RetailerProfile, error)
	GetByName(ctx context.Context, name string) (*RetailerProfile, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
