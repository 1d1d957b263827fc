package usecase

import (
	"context"
	"fmt"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

// EngineConfig holds configuration for the comparison engine
type EngineConfig struct {
	SimilarityThreshold float64
	EnableDebugLogging  bool
}

// Engine is the composition root of the comparison core: it sequences the
// orchestrator, the matcher and the calculator per query and per shopping
// list. All collaborators are injected at construction; the engine holds no
// ambient global state.
type Engine struct {
	orchestrator *Orchestrator
	matcher      *Matcher
	calculator   *Calculator
	catalog      domain.RetailerStore
}

// NewEngine creates a comparison engine with its dependencies
func NewEngine(orchestrator *Orchestrator, catalog domain.RetailerStore, config EngineConfig) *Engine {
	return &Engine{
		orchestrator: orchestrator,
		matcher: NewMatcher(MatcherConfig{
			SimilarityThreshold: config.SimilarityThreshold,
			EnableDebugLogging:  config.EnableDebugLogging,
		}),
		calculator: NewCalculator(),
		catalog:    catalog,
	}
}

// SearchAndCompare searches every retailer for the query and projects the
// best-matching offer per retailer into a price quote. Retailers without a
// match above threshold map to nil. Quotes price the loyalty tier in: the
// best price assumes the shopper holds a loyalty card.
func (e *Engine) SearchAndCompare(ctx context.Context, query string) map[string]*domain.PriceQuote {
	results := e.orchestrator.SearchAll(ctx, query)
	matches := e.matcher.MatchAcrossRetailers(query, results)

	comparison := make(map[string]*domain.PriceQuote, len(matches))
	for retailer, match := range matches {
		if match == nil {
			comparison[retailer] = nil
			continue
		}
		comparison[retailer] = &domain.PriceQuote{
			Name:         match.Name,
			RegularPrice: match.RegularPrice,
			SalePrice:    match.SalePrice,
			LoyaltyPrice: match.LoyaltyPrice,
			BestPrice:    e.calculator.BestPrice(*match, true),
			URL:          match.URL,
		}
	}
	return comparison
}

// CompareShoppingList resolves every item against all retailers and ranks
// the feasible fulfillment options for the whole list. Items are resolved
// strictly sequentially and independently — two items sharing a product name
// each get their own search, with no caching or deduplication between them.
func (e *Engine) CompareShoppingList(ctx context.Context, items []domain.ShoppingListItem, hasLoyaltyCard bool) ([]domain.ComparisonOption, error) {
	retailers, err := e.catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching retailer catalog: %w", err)
	}

	resolved := make([]domain.ShoppingListItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			item.Quantity = 1
		}

		results := e.orchestrator.SearchAll(ctx, item.ProductName)
		matches := e.matcher.MatchAcrossRetailers(item.ProductName, results)

		prices := make(map[string]float64, len(matches))
		for retailer, match := range matches {
			if match != nil {
				prices[retailer] = e.calculator.BestPrice(*match, hasLoyaltyCard)
			}
		}
		item.PerRetailerPrice = prices
		resolved = append(resolved, item)
	}

	return e.calculator.CompareAllOptions(resolved, retailers, hasLoyaltyCard), nil
}

// ItemSavings reports the price spread for a single already-priced item.
func (e *Engine) ItemSavings(item domain.ShoppingListItem, retailerNames []string) domain.ItemSavings {
	return e.calculator.ItemSavings(item, retailerNames)
}

// Retailers returns the catalog snapshot the engine compares against.
func (e *Engine) Retailers(ctx context.Context) ([]domain.RetailerProfile, error) {
	return e.catalog.All(ctx)
}
