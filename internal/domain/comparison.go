package domain

// FulfillmentMethod is how an order leaves the store.
type FulfillmentMethod string

const (
	FulfillmentDelivery FulfillmentMethod = "delivery"
	FulfillmentPickup   FulfillmentMethod = "pickup"
)

// ComparisonOption is one fully priced retailer + fulfillment choice.
// Within a ranked result set exactly one option carries IsCheapest, and
// Savings is measured against the most expensive included option.
type ComparisonOption struct {
	RetailerDisplayName string             `json:"retailer"`
	FulfillmentMethod   FulfillmentMethod  `json:"fulfillmentMethod"`
	ProductTotal        float64            `json:"productTotal"`
	DeliveryCost        float64            `json:"deliveryCost"`
	Total               float64            `json:"total"`
	Items               []ShoppingListItem `json:"items"`
	Savings             float64            `json:"savings"`
	IsCheapest          bool               `json:"isCheapest"`
}
