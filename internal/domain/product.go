package domain

// ProductOffer is one retailer's listing for one product at query time.
// Offers are produced by source adapters and never persisted.
//
// SalePrice and LoyaltyPrice are pointers because absence carries meaning:
// a nil price is "not on offer", not "free". LoyaltyPrice requires the
// retailer's loyalty program and is not assumed cheaper than SalePrice;
// the lowest present price always wins.
type ProductOffer struct {
	Name          string   `json:"name"`
	Brand         string   `json:"brand,omitempty"`
	RegularPrice  float64  `json:"regularPrice"`
	SalePrice     *float64 `json:"salePrice,omitempty"`
	LoyaltyPrice  *float64 `json:"loyaltyPrice,omitempty"`
	PromotionText string   `json:"promotionText,omitempty"`
	Unit          string   `json:"unit"`     // stuk, kg, liter, ...
	UnitSize      float64  `json:"unitSize"` // 500 for grams, 1.5 for liters, ...
	URL           string   `json:"url"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	RetailerName  string   `json:"retailerName"`
}

// ShoppingListItem is a request for a quantity of a named product.
// PerRetailerPrice is populated by matching; a missing retailer key means
// "no matched offer at that retailer", never "free".
type ShoppingListItem struct {
	ProductName      string             `json:"productName"`
	Quantity         int                `json:"quantity"`
	PreferredBrand   string             `json:"preferredBrand,omitempty"`
	PerRetailerPrice map[string]float64 `json:"perRetailerPrice,omitempty"`
}

// PriceQuote is the per-retailer projection returned by a product search:
// the matched offer's prices plus the best achievable price.
type PriceQuote struct {
	Name         string   `json:"name"`
	RegularPrice float64  `json:"regularPrice"`
	SalePrice    *float64 `json:"salePrice,omitempty"`
	LoyaltyPrice *float64 `json:"loyaltyPrice,omitempty"`
	BestPrice    float64  `json:"bestPrice"`
	URL          string   `json:"url"`
}

// ItemSavings reports the price spread for a single item across retailers.
// With fewer than two priced retailers all fields stay zero.
type ItemSavings struct {
	MinPrice         float64 `json:"minPrice"`
	MaxPrice         float64 `json:"maxPrice"`
	Savings          float64 `json:"savings"`
	CheapestRetailer string  `json:"cheapestRetailer,omitempty"`
}
