package domain

import "errors"

var (
	// ErrSourceUnavailable is returned when a retailer source call fails;
	// the orchestrator recovers it into an empty offer list
	ErrSourceUnavailable = errors.New("retailer source unavailable")

	// ErrRetailerNotFound is returned when a retailer is missing from the catalog
	ErrRetailerNotFound = errors.New("retailer not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
