package staticsource

import "github.com/digitalrebelz/supermarket-price-compare/internal/domain"

func price(v float64) *float64 { return &v }

func offer(name, brand string, regular float64, loyalty *float64, retailer string) domain.ProductOffer {
	return domain.ProductOffer{
		Name:         name,
		Brand:        brand,
		RegularPrice: regular,
		LoyaltyPrice: loyalty,
		Unit:         "stuk",
		UnitSize:     1.0,
		URL:          "https://demo.local/" + retailer + "/" + slug(name),
		RetailerName: retailer,
	}
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}

// demoOffers holds realistic Dutch supermarket listings per search keyword.
// Loyalty prices are only present where the retailer runs a loyalty program.
var demoOffers = map[string][]domain.ProductOffer{
	"cola": {
		offer("Coca-Cola Regular 1.5L", "Coca-Cola", 2.29, price(1.79), "albert_heijn"),
		offer("Pepsi Cola Regular 1.5L", "Pepsi", 1.99, nil, "albert_heijn"),
		offer("Coca-Cola Original Taste 1.5L", "Coca-Cola", 2.39, nil, "jumbo"),
		offer("Coca-Cola Zero Sugar 1.5L", "Coca-Cola", 2.39, price(1.89), "jumbo"),
		offer("Coca-Cola Regular 1.5L", "Coca-Cola", 2.19, nil, "dirk"),
		offer("River Cola 1.5L", "River", 0.69, nil, "dirk"),
		offer("Coca-Cola Original 1.5L", "Coca-Cola", 2.35, price(1.99), "plus"),
		offer("Coca-Cola 1.5L", "Coca-Cola", 2.49, nil, "flink"),
		offer("Coca-Cola Regular 1.5L", "Coca-Cola", 2.19, nil, "picnic"),
	},
	"melk": {
		offer("Campina Halfvolle Melk 1L", "Campina", 1.39, price(0.99), "albert_heijn"),
		offer("AH Halfvolle Melk 1L", "AH", 1.15, nil, "albert_heijn"),
		offer("Campina Halfvolle Melk 1L", "Campina", 1.45, price(1.09), "jumbo"),
		offer("Jumbo Halfvolle Melk 1L", "Jumbo", 1.09, nil, "jumbo"),
		offer("Dirk Halfvolle Melk 1L", "Dirk", 0.99, nil, "dirk"),
		offer("Campina Halfvolle Melk 1L", "Campina", 1.42, price(1.19), "plus"),
		offer("Campina Halfvolle Melk 1L", "Campina", 1.49, nil, "flink"),
		offer("Campina Halfvolle Melk 1L", "Campina", 1.35, nil, "picnic"),
	},
	"brood": {
		offer("Heel Bruin Brood", "AH", 1.89, price(1.49), "albert_heijn"),
		offer("Heel Bruin Brood", "Jumbo", 1.79, price(1.39), "jumbo"),
		offer("Bruin Brood Heel", "Dirk", 1.49, nil, "dirk"),
		offer("Boeren Bruin Brood", "Plus", 1.89, price(1.59), "plus"),
		offer("Bruin Brood", "Flink", 2.19, nil, "flink"),
		offer("Heel Bruin Brood", "Picnic", 1.69, nil, "picnic"),
	},
	"kaas": {
		offer("Goudse Kaas Jong 48+ 400g", "AH", 4.99, price(3.99), "albert_heijn"),
		offer("Goudse Jong 48+ 400g", "Jumbo", 4.79, price(3.79), "jumbo"),
		offer("Goudse Kaas Jong 400g", "Dirk", 4.29, nil, "dirk"),
		offer("Goudse Kaas Jong Belegen 400g", "Plus", 4.89, price(3.99), "plus"),
		offer("Goudse Kaas Jong 400g", "Flink", 5.29, nil, "flink"),
		offer("Goudse Jong 48+ 400g", "Picnic", 4.49, nil, "picnic"),
	},
	"eieren": {
		offer("Scharreleieren 10 stuks", "AH", 3.29, price(2.49), "albert_heijn"),
		offer("Scharrel Eieren 10 stuks", "Jumbo", 3.19, price(2.39), "jumbo"),
		offer("Scharreleieren 10 stuks", "Dirk", 2.89, nil, "dirk"),
		offer("Scharrel Eieren 10 stuks", "Plus", 3.15, price(2.69), "plus"),
		offer("Scharreleieren 10 stuks", "Flink", 3.49, nil, "flink"),
		offer("Scharreleieren 10 stuks", "Picnic", 2.99, nil, "picnic"),
	},
}
