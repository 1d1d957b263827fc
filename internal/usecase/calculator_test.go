package usecase

import (
	"math"
	"testing"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func testItems() []domain.ShoppingListItem {
	return []domain.ShoppingListItem{
		{ProductName: "Melk", Quantity: 2, PerRetailerPrice: map[string]float64{"albert_heijn": 1.49, "jumbo": 1.59}},
		{ProductName: "Brood", Quantity: 1, PerRetailerPrice: map[string]float64{"albert_heijn": 2.19, "jumbo": 1.99}},
		{ProductName: "Kaas", Quantity: 1, PerRetailerPrice: map[string]float64{"albert_heijn": 4.99, "jumbo": 5.29}},
	}
}

func testRetailer(name string) domain.RetailerProfile {
	switch name {
	case "albert_heijn":
		return domain.RetailerProfile{
			Name: "albert_heijn", DisplayName: "Albert Heijn",
			DeliveryCost: 5.95, PickupAvailable: true, PickupCost: 0,
		}
	case "jumbo":
		return domain.RetailerProfile{
			Name: "jumbo", DisplayName: "Jumbo",
			DeliveryCost: 7.95, FreeDeliveryThreshold: floatPtr(75.0),
			PickupAvailable: true, PickupCost: 0,
		}
	case "flink":
		return domain.RetailerProfile{
			Name: "flink", DisplayName: "Flink",
			DeliveryCost: 2.99, PickupAvailable: false,
		}
	default:
		return domain.RetailerProfile{Name: name, DisplayName: name}
	}
}

func TestBestPrice(t *testing.T) {
	c := NewCalculator()

	t.Run("regular price when nothing else is set", func(t *testing.T) {
		offer := domain.ProductOffer{RegularPrice: 1.99}
		if got := c.BestPrice(offer, true); got != 1.99 {
			t.Errorf("BestPrice = %v, want 1.99", got)
		}
	})

	t.Run("sale price wins when lower", func(t *testing.T) {
		offer := domain.ProductOffer{RegularPrice: 1.99, SalePrice: floatPtr(1.49)}
		if got := c.BestPrice(offer, false); got != 1.49 {
			t.Errorf("BestPrice = %v, want 1.49", got)
		}
	})

	t.Run("loyalty price needs the card", func(t *testing.T) {
		offer := domain.ProductOffer{RegularPrice: 1.99, LoyaltyPrice: floatPtr(1.29)}
		if got := c.BestPrice(offer, false); got != 1.99 {
			t.Errorf("BestPrice without card = %v, want 1.99", got)
		}
		if got := c.BestPrice(offer, true); got != 1.29 {
			t.Errorf("BestPrice with card = %v, want 1.29", got)
		}
	})

	t.Run("never exceeds regular price", func(t *testing.T) {
		offer := domain.ProductOffer{RegularPrice: 1.19, SalePrice: floatPtr(1.49), LoyaltyPrice: floatPtr(1.99)}
		if got := c.BestPrice(offer, true); got != 1.19 {
			t.Errorf("BestPrice = %v, want 1.19", got)
		}
	})
}

func TestProductTotal(t *testing.T) {
	c := NewCalculator()

	t.Run("sums price times quantity", func(t *testing.T) {
		// 2*1.49 + 2.19 + 4.99 = 10.16
		got := c.ProductTotal(testItems(), "albert_heijn")
		if math.Abs(got-10.16) > 1e-9 {
			t.Errorf("ProductTotal = %v, want 10.16", got)
		}
	})

	t.Run("missing price contributes zero", func(t *testing.T) {
		items := []domain.ShoppingListItem{
			{ProductName: "Melk", Quantity: 1, PerRetailerPrice: map[string]float64{"jumbo": 1.59}},
			{ProductName: "Brood", Quantity: 1, PerRetailerPrice: map[string]float64{"albert_heijn": 2.19}},
		}
		got := c.ProductTotal(items, "albert_heijn")
		if math.Abs(got-2.19) > 1e-9 {
			t.Errorf("ProductTotal = %v, want 2.19", got)
		}
	})

	t.Run("quantity below one counts as one", func(t *testing.T) {
		items := []domain.ShoppingListItem{
			{ProductName: "Melk", Quantity: 0, PerRetailerPrice: map[string]float64{"albert_heijn": 1.49}},
		}
		got := c.ProductTotal(items, "albert_heijn")
		if math.Abs(got-1.49) > 1e-9 {
			t.Errorf("ProductTotal = %v, want 1.49", got)
		}
	})

	t.Run("empty list totals zero", func(t *testing.T) {
		if got := c.ProductTotal(nil, "albert_heijn"); got != 0 {
			t.Errorf("ProductTotal = %v, want 0", got)
		}
	})
}

func TestDeliveryCost(t *testing.T) {
	c := NewCalculator()

	t.Run("flat delivery fee without threshold", func(t *testing.T) {
		got := c.DeliveryCost(testRetailer("albert_heijn"), 200.0, domain.FulfillmentDelivery)
		if got != 5.95 {
			t.Errorf("DeliveryCost = %v, want 5.95", got)
		}
	})

	t.Run("free delivery threshold is inclusive", func(t *testing.T) {
		jumbo := testRetailer("jumbo")
		testCases := []struct {
			total float64
			want  float64
		}{
			{50.0, 7.95},
			{74.99, 7.95},
			{75.0, 0},
			{100.0, 0},
		}
		for _, tc := range testCases {
			if got := c.DeliveryCost(jumbo, tc.total, domain.FulfillmentDelivery); got != tc.want {
				t.Errorf("DeliveryCost(total=%v) = %v, want %v", tc.total, got, tc.want)
			}
		}
	})

	t.Run("pickup uses the pickup fee", func(t *testing.T) {
		got := c.DeliveryCost(testRetailer("albert_heijn"), 10.0, domain.FulfillmentPickup)
		if got != 0 {
			t.Errorf("DeliveryCost = %v, want 0", got)
		}
	})

	t.Run("pickup at a delivery-only retailer is infeasible", func(t *testing.T) {
		got := c.DeliveryCost(testRetailer("flink"), 10.0, domain.FulfillmentPickup)
		if !math.IsInf(got, 1) {
			t.Errorf("DeliveryCost = %v, want +Inf", got)
		}
	})
}

func TestTotalCost(t *testing.T) {
	c := NewCalculator()

	t.Run("delivery option sums products and fee", func(t *testing.T) {
		opt := c.TotalCost(testItems(), testRetailer("albert_heijn"), domain.FulfillmentDelivery)

		if opt.RetailerDisplayName != "Albert Heijn" {
			t.Errorf("RetailerDisplayName = %q, want Albert Heijn", opt.RetailerDisplayName)
		}
		if opt.FulfillmentMethod != domain.FulfillmentDelivery {
			t.Errorf("FulfillmentMethod = %q, want delivery", opt.FulfillmentMethod)
		}
		if opt.ProductTotal != 10.16 {
			t.Errorf("ProductTotal = %v, want 10.16", opt.ProductTotal)
		}
		if opt.DeliveryCost != 5.95 {
			t.Errorf("DeliveryCost = %v, want 5.95", opt.DeliveryCost)
		}
		if opt.Total != 16.11 {
			t.Errorf("Total = %v, want 16.11", opt.Total)
		}
		if opt.Savings != 0 {
			t.Errorf("Savings = %v, want 0 before ranking", opt.Savings)
		}
	})

	t.Run("amounts come back rounded to cents", func(t *testing.T) {
		items := []domain.ShoppingListItem{
			{ProductName: "Melk", Quantity: 3, PerRetailerPrice: map[string]float64{"albert_heijn": 1.333}},
		}
		opt := c.TotalCost(items, testRetailer("albert_heijn"), domain.FulfillmentPickup)
		if opt.ProductTotal != 4.0 {
			t.Errorf("ProductTotal = %v, want 4.0", opt.ProductTotal)
		}
		if opt.Total != 4.0 {
			t.Errorf("Total = %v, want 4.0", opt.Total)
		}
	})

	t.Run("infeasible pickup carries an infinite total", func(t *testing.T) {
		opt := c.TotalCost(testItems(), testRetailer("flink"), domain.FulfillmentPickup)
		if !math.IsInf(opt.Total, 1) {
			t.Errorf("Total = %v, want +Inf", opt.Total)
		}
	})
}

func TestCompareAllOptions(t *testing.T) {
	c := NewCalculator()

	retailers := []domain.RetailerProfile{
		testRetailer("albert_heijn"),
		testRetailer("jumbo"),
		testRetailer("flink"),
	}

	t.Run("ranks ascending with exactly one cheapest", func(t *testing.T) {
		options := c.CompareAllOptions(testItems(), retailers, true)

		// ah delivery+pickup, jumbo delivery+pickup, flink delivery only
		if len(options) != 5 {
			t.Fatalf("len(options) = %d, want 5", len(options))
		}

		cheapestCount := 0
		for i, opt := range options {
			if i > 0 && opt.Total < options[i-1].Total {
				t.Errorf("options not sorted ascending at index %d: %v < %v", i, opt.Total, options[i-1].Total)
			}
			if opt.IsCheapest {
				cheapestCount++
			}
			if math.IsInf(opt.Total, 1) {
				t.Errorf("infeasible option leaked into results: %+v", opt)
			}
		}
		if cheapestCount != 1 {
			t.Errorf("cheapestCount = %d, want 1", cheapestCount)
		}
		if !options[0].IsCheapest {
			t.Error("first option should be marked cheapest")
		}
	})

	t.Run("savings measures the gap to the most expensive option", func(t *testing.T) {
		options := c.CompareAllOptions(testItems(), retailers, true)

		maxTotal := options[len(options)-1].Total
		for _, opt := range options {
			want := round2(maxTotal - opt.Total)
			if opt.Savings != want {
				t.Errorf("%s %s: Savings = %v, want %v", opt.RetailerDisplayName, opt.FulfillmentMethod, opt.Savings, want)
			}
		}
		if options[len(options)-1].Savings != 0 {
			t.Errorf("most expensive option should have zero savings, got %v", options[len(options)-1].Savings)
		}
	})

	t.Run("pickup is skipped where unavailable", func(t *testing.T) {
		options := c.CompareAllOptions(testItems(), []domain.RetailerProfile{testRetailer("flink")}, true)
		if len(options) != 1 {
			t.Fatalf("len(options) = %d, want 1", len(options))
		}
		if options[0].FulfillmentMethod != domain.FulfillmentDelivery {
			t.Errorf("FulfillmentMethod = %q, want delivery", options[0].FulfillmentMethod)
		}
	})

	t.Run("no retailers yields an empty result", func(t *testing.T) {
		options := c.CompareAllOptions(testItems(), nil, true)
		if len(options) != 0 {
			t.Errorf("len(options) = %d, want 0", len(options))
		}
	})

	t.Run("equal totals keep retailer input order", func(t *testing.T) {
		a := domain.RetailerProfile{Name: "a", DisplayName: "A", DeliveryCost: 1.0}
		b := domain.RetailerProfile{Name: "b", DisplayName: "B", DeliveryCost: 1.0}
		items := []domain.ShoppingListItem{
			{ProductName: "Melk", Quantity: 1, PerRetailerPrice: map[string]float64{"a": 2.0, "b": 2.0}},
		}

		options := c.CompareAllOptions(items, []domain.RetailerProfile{a, b}, true)
		if len(options) != 2 {
			t.Fatalf("len(options) = %d, want 2", len(options))
		}
		if options[0].RetailerDisplayName != "A" || options[1].RetailerDisplayName != "B" {
			t.Errorf("tied options reordered: %q then %q", options[0].RetailerDisplayName, options[1].RetailerDisplayName)
		}
	})
}

func TestItemSavings(t *testing.T) {
	c := NewCalculator()

	retailerNames := []string{"albert_heijn", "jumbo", "dirk"}

	t.Run("reports spread and cheapest retailer", func(t *testing.T) {
		item := domain.ShoppingListItem{
			ProductName: "Melk",
			PerRetailerPrice: map[string]float64{
				"albert_heijn": 1.49,
				"jumbo":        1.59,
				"dirk":         1.29,
			},
		}

		got := c.ItemSavings(item, retailerNames)
		if got.MinPrice != 1.29 {
			t.Errorf("MinPrice = %v, want 1.29", got.MinPrice)
		}
		if got.MaxPrice != 1.59 {
			t.Errorf("MaxPrice = %v, want 1.59", got.MaxPrice)
		}
		if got.Savings != 0.3 {
			t.Errorf("Savings = %v, want 0.3", got.Savings)
		}
		if got.CheapestRetailer != "dirk" {
			t.Errorf("CheapestRetailer = %q, want dirk", got.CheapestRetailer)
		}
	})

	t.Run("fewer than two prices yields the zero sentinel", func(t *testing.T) {
		item := domain.ShoppingListItem{
			ProductName:      "Melk",
			PerRetailerPrice: map[string]float64{"albert_heijn": 1.49},
		}

		got := c.ItemSavings(item, retailerNames)
		if got != (domain.ItemSavings{}) {
			t.Errorf("ItemSavings = %+v, want zero value", got)
		}
	})

	t.Run("tie on minimum resolves to first retailer in order", func(t *testing.T) {
		item := domain.ShoppingListItem{
			ProductName: "Melk",
			PerRetailerPrice: map[string]float64{
				"albert_heijn": 1.49,
				"jumbo":        1.49,
				"dirk":         1.99,
			},
		}

		got := c.ItemSavings(item, retailerNames)
		if got.CheapestRetailer != "albert_heijn" {
			t.Errorf("CheapestRetailer = %q, want albert_heijn", got.CheapestRetailer)
		}
	})
}
