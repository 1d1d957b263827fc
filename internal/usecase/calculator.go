package usecase

import (
	"math"
	"sort"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

// Calculator computes fulfillment totals for shopping lists. Every method is
// a pure transformation of its inputs; infeasible options carry a +Inf total
// and are filtered before results leave CompareAllOptions.
type Calculator struct{}

// NewCalculator creates a cost calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// BestPrice returns the lowest price available for an offer: the minimum of
// the regular price, the sale price when present, and the loyalty price when
// present and the shopper holds the retailer's loyalty card. RegularPrice is
// always a candidate, so the result never exceeds it.
func (c *Calculator) BestPrice(offer domain.ProductOffer, hasLoyaltyCard bool) float64 {
	best := offer.RegularPrice

	if offer.SalePrice != nil && *offer.SalePrice < best {
		best = *offer.SalePrice
	}
	if hasLoyaltyCard && offer.LoyaltyPrice != nil && *offer.LoyaltyPrice < best {
		best = *offer.LoyaltyPrice
	}

	return best
}

// ProductTotal sums price × quantity over the items for one retailer.
// An item with no matched price at this retailer contributes zero; it does
// not exclude the retailer. Totals for retailers missing items are therefore
// understated rather than absent.
func (c *Calculator) ProductTotal(items []domain.ShoppingListItem, retailerName string) float64 {
	total := 0.0

	for _, item := range items {
		price, ok := item.PerRetailerPrice[retailerName]
		if !ok {
			continue
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		total += price * float64(quantity)
	}

	return total
}

// DeliveryCost returns the fee for fulfilling productTotal via the given
// method. Pickup at a retailer without pickup is infeasible and returns
// +Inf. Delivery is free once productTotal reaches the retailer's
// free-delivery threshold; the boundary is inclusive.
func (c *Calculator) DeliveryCost(retailer domain.RetailerProfile, productTotal float64, method domain.FulfillmentMethod) float64 {
	if method == domain.FulfillmentPickup {
		if retailer.PickupAvailable {
			return retailer.PickupCost
		}
		return math.Inf(1)
	}

	if retailer.FreeDeliveryThreshold != nil && productTotal >= *retailer.FreeDeliveryThreshold {
		return 0
	}
	return retailer.DeliveryCost
}

// TotalCost prices the full list at one retailer for one fulfillment method.
// Product total and delivery cost are rounded to cents before they are
// summed into the (also rounded) total. Savings stays zero here; it is
// finalized by CompareAllOptions over the whole result set.
func (c *Calculator) TotalCost(items []domain.ShoppingListItem, retailer domain.RetailerProfile, method domain.FulfillmentMethod) domain.ComparisonOption {
	productTotal := round2(c.ProductTotal(items, retailer.Name))
	deliveryCost := round2(c.DeliveryCost(retailer, productTotal, method))

	return domain.ComparisonOption{
		RetailerDisplayName: retailer.DisplayName,
		FulfillmentMethod:   method,
		ProductTotal:        productTotal,
		DeliveryCost:        deliveryCost,
		Total:               round2(productTotal + deliveryCost),
		Items:               items,
		Savings:             0,
	}
}

// CompareAllOptions computes every feasible retailer × fulfillment option
// for the list, ranked ascending by total. The sort is stable, so equal
// totals preserve the retailer input order. Exactly one option — the first —
// is marked cheapest, and each option's savings is the gap to the most
// expensive included option. No feasible option anywhere yields an empty
// slice, not an error.
// hasLoyaltyCard has no effect here: loyalty pricing is already baked into
// the per-retailer prices when items are resolved.
func (c *Calculator) CompareAllOptions(items []domain.ShoppingListItem, retailers []domain.RetailerProfile, hasLoyaltyCard bool) []domain.ComparisonOption {
	var options []domain.ComparisonOption

	for _, retailer := range retailers {
		delivery := c.TotalCost(items, retailer, domain.FulfillmentDelivery)
		if !math.IsInf(delivery.Total, 1) {
			options = append(options, delivery)
		}

		if retailer.PickupAvailable {
			pickup := c.TotalCost(items, retailer, domain.FulfillmentPickup)
			if !math.IsInf(pickup.Total, 1) {
				options = append(options, pickup)
			}
		}
	}

	if len(options) == 0 {
		return options
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Total < options[j].Total
	})

	maxTotal := options[0].Total
	for _, opt := range options {
		if opt.Total > maxTotal {
			maxTotal = opt.Total
		}
	}

	for i := range options {
		options[i].Savings = round2(maxTotal - options[i].Total)
		options[i].IsCheapest = false
	}
	options[0].IsCheapest = true

	return options
}

// ItemSavings reports the price spread for one item across the named
// retailers. It needs at least two retailers with a present price; with
// fewer it returns the zero-valued sentinel rather than failing. Ties on
// the minimum resolve to the first retailer in the given order.
func (c *Calculator) ItemSavings(item domain.ShoppingListItem, retailerNames []string) domain.ItemSavings {
	var (
		priced   int
		minPrice float64
		maxPrice float64
		cheapest string
	)

	for _, name := range retailerNames {
		price, ok := item.PerRetailerPrice[name]
		if !ok {
			continue
		}
		if priced == 0 || price < minPrice {
			minPrice = price
			cheapest = name
		}
		if priced == 0 || price > maxPrice {
			maxPrice = price
		}
		priced++
	}

	if priced < 2 {
		return domain.ItemSavings{}
	}

	return domain.ItemSavings{
		MinPrice:         minPrice,
		MaxPrice:         maxPrice,
		Savings:          round2(maxPrice - minPrice),
		CheapestRetailer: cheapest,
	}
}

// round2 rounds to two decimal places. Inf stays Inf, which keeps
// infeasible totals recognizable until they are filtered.
func round2(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*100) / 100
}
