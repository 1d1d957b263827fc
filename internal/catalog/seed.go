package catalog

import "github.com/digitalrebelz/supermarket-price-compare/internal/domain"

func threshold(v float64) *float64 { return &v }

// Seed returns the built-in Dutch retailer profiles: fee schedules,
// free-delivery thresholds and loyalty programs as published by the
// retailers. A catalog file overrides this seed entirely.
func Seed() []domain.RetailerProfile {
	return []domain.RetailerProfile{
		{
			ID:                 1,
			Name:               "albert_heijn",
			DisplayName:        "Albert Heijn",
			BaseURL:            "https://www.ah.nl",
			SearchURL:          "https://www.ah.nl/zoeken?query={query}",
			DeliveryCost:       5.95,
			PickupAvailable:    true,
			PickupCost:         0.0,
			HasLoyaltyProgram:  true,
			LoyaltyProgramName: "Bonuskaart",
		},
		{
			ID:                    2,
			Name:                  "jumbo",
			DisplayName:           "Jumbo",
			BaseURL:               "https://www.jumbo.com",
			SearchURL:             "https://www.jumbo.com/zoeken?searchTerms={query}",
			DeliveryCost:          7.95,
			FreeDeliveryThreshold: threshold(75.0),
			PickupAvailable:       true,
			PickupCost:            0.0,
			HasLoyaltyProgram:     true,
			LoyaltyProgramName:    "Extra's",
		},
		{
			ID:              3,
			Name:            "dirk",
			DisplayName:     "Dirk",
			BaseURL:         "https://www.dirk.nl",
			SearchURL:       "https://www.dirk.nl/zoeken?q={query}",
			DeliveryCost:    5.95,
			PickupAvailable: true,
			PickupCost:      0.0,
		},
		{
			ID:                 4,
			Name:               "plus",
			DisplayName:        "Plus",
			BaseURL:            "https://www.plus.nl",
			SearchURL:          "https://www.plus.nl/zoeken?q={query}",
			DeliveryCost:       6.95,
			PickupAvailable:    true,
			PickupCost:         0.0,
			HasLoyaltyProgram:  true,
			LoyaltyProgramName: "Plus-punten",
		},
		{
			ID:           5,
			Name:         "flink",
			DisplayName:  "Flink",
			BaseURL:      "https://www.goflink.com",
			SearchURL:    "https://www.goflink.com/nl/search?q={query}",
			DeliveryCost: 2.99,
		},
		{
			ID:                    6,
			Name:                  "picnic",
			DisplayName:           "Picnic",
			BaseURL:               "https://picnic.app",
			SearchURL:             "https://picnic.app/nl/search/{query}",
			DeliveryCost:          0.0,
			FreeDeliveryThreshold: threshold(35.0),
		},
	}
}
