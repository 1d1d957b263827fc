// Package staticsource serves seeded product offers so the full comparison
// pipeline runs without network access, for retailers without an API
// adapter and for demo deployments.
package staticsource

import (
	"context"
	"strings"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

// Adapter is a SourceAdapter over the static demo catalog, scoped to one
// retailer.
type Adapter struct {
	retailerName string
	offers       map[string][]domain.ProductOffer // keyword -> offers
}

// NewAdapter creates an adapter serving the demo offers of one retailer.
func NewAdapter(retailerName string) *Adapter {
	byKeyword := make(map[string][]domain.ProductOffer)
	for keyword, offers := range demoOffers {
		for _, offer := range offers {
			if offer.RetailerName == retailerName {
				byKeyword[keyword] = append(byKeyword[keyword], offer)
			}
		}
	}
	return &Adapter{retailerName: retailerName, offers: byKeyword}
}

// Search returns the seeded offers whose keyword overlaps the query.
// Matching is bidirectional substring on the lowercased query, mirroring
// how category keywords behave ("halfvolle melk" hits the "melk" shelf).
func (a *Adapter) Search(ctx context.Context, query string) ([]domain.ProductOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var results []domain.ProductOffer
	for keyword, offers := range a.offers {
		if strings.Contains(q, keyword) || strings.Contains(keyword, q) {
			results = append(results, offers...)
		}
	}
	return results, nil
}

// GetDetails looks an offer up by its URL.
func (a *Adapter) GetDetails(ctx context.Context, url string) (*domain.ProductOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, offers := range a.offers {
		for i := range offers {
			if offers[i].URL == url {
				offer := offers[i]
				return &offer, nil
			}
		}
	}
	return nil, domain.ErrSourceUnavailable
}
