package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/viper"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

// Store is an in-memory retailer catalog. It is populated once at startup —
// from the built-in seed or a catalog file — and read-only afterwards, so
// comparisons need no locking.
type Store struct {
	retailers []domain.RetailerProfile
	byName    map[string]*domain.RetailerProfile
}

// NewStore creates a catalog over the given profiles.
func NewStore(retailers []domain.RetailerProfile) *Store {
	byName := make(map[string]*domain.RetailerProfile, len(retailers))
	for i := range retailers {
		byName[retailers[i].Name] = &retailers[i]
	}
	return &Store{retailers: retailers, byName: byName}
}

// NewSeededStore creates a catalog with the built-in Dutch retailer seed.
func NewSeededStore() *Store {
	return NewStore(Seed())
}

// retailerEntry is the catalog file shape for one retailer.
type retailerEntry struct {
	ID                    int      `mapstructure:"id"`
	Name                  string   `mapstructure:"name"`
	DisplayName           string   `mapstructure:"display_name"`
	BaseURL               string   `mapstructure:"base_url"`
	SearchURL             string   `mapstructure:"search_url"`
	DeliveryCost          float64  `mapstructure:"delivery_cost"`
	FreeDeliveryThreshold *float64 `mapstructure:"free_delivery_threshold"`
	PickupAvailable       bool     `mapstructure:"pickup_available"`
	PickupCost            float64  `mapstructure:"pickup_cost"`
	HasLoyaltyProgram     bool     `mapstructure:"has_loyalty_program"`
	LoyaltyProgramName    string   `mapstructure:"loyalty_program_name"`
}

// LoadFile reads retailer profiles from a yaml catalog file holding a
// single `retailers:` list.
func LoadFile(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file struct {
		Retailers []retailerEntry `mapstructure:"retailers"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("unable to decode catalog: %w", err)
	}

	retailers := make([]domain.RetailerProfile, 0, len(file.Retailers))
	for _, e := range file.Retailers {
		retailers = append(retailers, domain.RetailerProfile{
			ID:                    e.ID,
			Name:                  e.Name,
			DisplayName:           e.DisplayName,
			BaseURL:               e.BaseURL,
			SearchURL:             e.SearchURL,
			DeliveryCost:          e.DeliveryCost,
			FreeDeliveryThreshold: e.FreeDeliveryThreshold,
			PickupAvailable:       e.PickupAvailable,
			PickupCost:            e.PickupCost,
			HasLoyaltyProgram:     e.HasLoyaltyProgram,
			LoyaltyProgramName:    e.LoyaltyProgramName,
		})
	}

	if err := validate(retailers); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	log.Printf("[CATALOG] loaded %d retailers from %s", len(retailers), path)
	return NewStore(retailers), nil
}

// validate enforces the profile invariants: fees are non-negative and a
// free-delivery threshold, when present, is strictly positive.
func validate(retailers []domain.RetailerProfile) error {
	seen := make(map[string]bool, len(retailers))
	for _, r := range retailers {
		if r.Name == "" {
			return fmt.Errorf("retailer with empty name")
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate retailer name: %s", r.Name)
		}
		seen[r.Name] = true

		if r.DeliveryCost < 0 {
			return fmt.Errorf("%s: negative delivery cost", r.Name)
		}
		if r.PickupCost < 0 {
			return fmt.Errorf("%s: negative pickup cost", r.Name)
		}
		if r.FreeDeliveryThreshold != nil && *r.FreeDeliveryThreshold <= 0 {
			return fmt.Errorf("%s: free delivery threshold must be positive", r.Name)
		}
	}
	return nil
}

// All returns a snapshot of every retailer profile.
func (s *Store) All(ctx context.Context) ([]domain.RetailerProfile, error) {
	out := make([]domain.RetailerProfile, len(s.retailers))
	copy(out, s.retailers)
	return out, nil
}

// GetByName returns the profile for one retailer.
func (s *Store) GetByName(ctx context.Context, name string) (*domain.RetailerProfile, error) {
	r, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRetailerNotFound, name)
	}
	profile := *r
	return &profile, nil
}
