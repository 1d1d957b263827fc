package ah

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

// mapProduct converts one AH API product into a ProductOffer.
//
// AH reports priceBeforeBonus only for products on a Bonuskaart promotion;
// currentPrice is then the loyalty price. Without a promotion currentPrice
// is the regular price.
func mapProduct(p searchProduct) domain.ProductOffer {
	regular := p.CurrentPrice
	var loyalty *float64
	if p.PriceBeforeBonus > 0 {
		regular = p.PriceBeforeBonus
		bonus := p.CurrentPrice
		loyalty = &bonus
	}

	productURL := ""
	if p.WebshopID.String() != "" {
		productURL = fmt.Sprintf("https://www.ah.nl/producten/product/%s", p.WebshopID.String())
	}

	imageURL := ""
	if len(p.Images) > 0 {
		imageURL = p.Images[0].URL
	}

	unit, unitSize := parseUnitInfo(p.UnitSize)

	return domain.ProductOffer{
		Name:          p.Title,
		Brand:         p.Brand,
		RegularPrice:  regular,
		LoyaltyPrice:  loyalty,
		PromotionText: p.DiscountLabel,
		Unit:          unit,
		UnitSize:      unitSize,
		URL:           productURL,
		ImageURL:      imageURL,
		RetailerName:  RetailerName,
	}
}

// webshopIDFromURL extracts the trailing product id from an AH product URL.
func webshopIDFromURL(productURL string) string {
	idx := strings.LastIndex(productURL, "/")
	if idx < 0 || idx == len(productURL)-1 {
		return ""
	}
	return productURL[idx+1:]
}

var unitPatterns = []struct {
	re   *regexp.Regexp
	unit string
}{
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:ml)\b`), "ml"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:l|liter)\b`), "liter"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:kg)\b`), "kg"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:g|gram)\b`), "gram"},
	{regexp.MustCompile(`(\d+)\s*(?:st|stuks?)\b`), "stuk"},
}

// parseUnitInfo extracts unit type and size from a sales-unit label like
// "1,5 l" or "500 g". Unrecognized labels fall back to a single piece.
func parseUnitInfo(text string) (string, float64) {
	lower := strings.ToLower(text)

	for _, p := range unitPatterns {
		match := p.re.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		size, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
		if err != nil {
			continue
		}
		return p.unit, size
	}

	return "stuk", 1.0
}
