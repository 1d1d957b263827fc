package usecase

import (
	"context"
	"log"
	"sync"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

// Orchestrator fans a query out to every registered source adapter
// concurrently and joins the results into a per-retailer map. A failing,
// panicking or slow adapter degrades to an empty offer list for that
// retailer and never disturbs its siblings.
type Orchestrator struct {
	adapters map[string]domain.SourceAdapter
}

// NewOrchestrator creates an orchestrator over the given adapters, keyed by
// retailer name.
func NewOrchestrator(adapters map[string]domain.SourceAdapter) *Orchestrator {
	if adapters == nil {
		adapters = make(map[string]domain.SourceAdapter)
	}
	return &Orchestrator{adapters: adapters}
}

// Register adds or replaces the adapter for a retailer. Not safe to call
// concurrently with searches; wire adapters up before serving.
func (o *Orchestrator) Register(retailerName string, adapter domain.SourceAdapter) {
	o.adapters[retailerName] = adapter
}

// RetailerNames returns the registered retailer set.
func (o *Orchestrator) RetailerNames() []string {
	names := make([]string, 0, len(o.adapters))
	for name := range o.adapters {
		names = append(names, name)
	}
	return names
}

// SearchAll queries every registered adapter concurrently and returns after
// all of them have completed or failed — a full join, not a race. The result
// map keys are exactly the registered retailers; a failed adapter's value is
// an empty list, indistinguishable from "no offers found". Each task writes
// only its own slot, so no shared state is mutated across tasks.
func (o *Orchestrator) SearchAll(ctx context.Context, query string) map[string][]domain.ProductOffer {
	names := make([]string, 0, len(o.adapters))
	for name := range o.adapters {
		names = append(names, name)
	}

	slots := make([][]domain.ProductOffer, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string, adapter domain.SourceAdapter) {
			defer wg.Done()
			slots[i] = o.searchAdapter(ctx, name, adapter, query)
		}(i, name, o.adapters[name])
	}
	wg.Wait()

	results := make(map[string][]domain.ProductOffer, len(names))
	for i, name := range names {
		results[name] = slots[i]
	}
	return results
}

// SearchOne queries a single retailer. An unknown retailer name yields an
// empty list and a logged warning, not an error.
func (o *Orchestrator) SearchOne(ctx context.Context, retailerName, query string) []domain.ProductOffer {
	adapter, ok := o.adapters[retailerName]
	if !ok {
		log.Printf("[ORCH] unknown retailer: %s", retailerName)
		return []domain.ProductOffer{}
	}
	return o.searchAdapter(ctx, retailerName, adapter, query)
}

// searchAdapter runs one adapter call with the failure boundary: errors and
// panics are logged and converted into an empty offer list.
func (o *Orchestrator) searchAdapter(ctx context.Context, name string, adapter domain.SourceAdapter, query string) (offers []domain.ProductOffer) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ORCH] %s: adapter panic recovered: %v", name, r)
			offers = []domain.ProductOffer{}
		}
	}()

	found, err := adapter.Search(ctx, query)
	if err != nil {
		log.Printf("[ORCH] %s: search failed: %v", name, err)
		return []domain.ProductOffer{}
	}
	if found == nil {
		found = []domain.ProductOffer{}
	}

	log.Printf("[ORCH] %s: %d results", name, len(found))
	return found
}
