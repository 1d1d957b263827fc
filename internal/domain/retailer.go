package domain

// RetailerProfile holds the static fee schedule and capabilities of one
// retailer. Profiles are seeded by the catalog package and read-only during
// a comparison.
type RetailerProfile struct {
	ID                    int      `json:"id"`
	Name                  string   `json:"name"`        // internal key, e.g. "albert_heijn"
	DisplayName           string   `json:"displayName"` // e.g. "Albert Heijn"
	BaseURL               string   `json:"baseUrl,omitempty"`
	SearchURL             string   `json:"searchUrl,omitempty"` // template with {query} placeholder
	DeliveryCost          float64  `json:"deliveryCost"`
	FreeDeliveryThreshold *float64 `json:"freeDeliveryThreshold,omitempty"` // strictly positive when set
	PickupAvailable       bool     `json:"pickupAvailable"`
	PickupCost            float64  `json:"pickupCost"`
	HasLoyaltyProgram     bool     `json:"hasLoyaltyProgram"`
	LoyaltyProgramName    string   `json:"loyaltyProgramName,omitempty"`
}
