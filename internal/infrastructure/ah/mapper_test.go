package ah

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapProduct_RegularPrice(t *testing.T) {
	offer := mapProduct(searchProduct{
		Title:        "AH Halfvolle melk",
		Brand:        "AH",
		WebshopID:    json.Number("58444"),
		CurrentPrice: 1.15,
		UnitSize:     "1 l",
	})

	assert.Equal(t, 1.15, offer.RegularPrice)
	assert.Nil(t, offer.LoyaltyPrice)
	assert.Equal(t, "https://www.ah.nl/producten/product/58444", offer.URL)
	assert.Equal(t, RetailerName, offer.RetailerName)
}

func TestMapProduct_BonusPrice(t *testing.T) {
	offer := mapProduct(searchProduct{
		Title:            "Campina Halfvolle melk",
		WebshopID:        json.Number("185843"),
		PriceBeforeBonus: 1.59,
		CurrentPrice:     1.19,
		DiscountLabel:    "25% korting",
	})

	assert.Equal(t, 1.59, offer.RegularPrice)
	require.NotNil(t, offer.LoyaltyPrice)
	assert.Equal(t, 1.19, *offer.LoyaltyPrice)
	assert.Equal(t, "25% korting", offer.PromotionText)
}

func TestMapProduct_NoWebshopID(t *testing.T) {
	offer := mapProduct(searchProduct{
		Title:        "Naamloos",
		CurrentPrice: 0.99,
	})

	assert.Empty(t, offer.URL)
}

func TestWebshopIDFromURL(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.ah.nl/producten/product/58444", "58444"},
		{"https://www.ah.nl/producten/product/58444/", ""},
		{"no-slashes", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, webshopIDFromURL(tt.url), tt.url)
	}
}

func TestParseUnitInfo(t *testing.T) {
	tests := []struct {
		text         string
		expectedUnit string
		expectedSize float64
	}{
		{"1 l", "liter", 1.0},
		{"1,5 l", "liter", 1.5},
		{"0.75 liter", "liter", 0.75},
		{"250 ml", "ml", 250},
		{"500 g", "gram", 500},
		{"1 kg", "kg", 1},
		{"2,5 kg", "kg", 2.5},
		{"4 stuks", "stuk", 4},
		{"per stuk", "stuk", 1.0},
		{"", "stuk", 1.0},
		{"onbekend", "stuk", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			unit, size := parseUnitInfo(tt.text)
			assert.Equal(t, tt.expectedUnit, unit, "unit for %q", tt.text)
			assert.Equal(t, tt.expectedSize, size, "size for %q", tt.text)
		})
	}
}
