package ah

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

// RetailerName is the catalog key this adapter serves.
const RetailerName = "albert_heijn"

const defaultPageSize = 10

// Client is a source adapter over the Albert Heijn mobile product API.
// It performs a single attempt per call; retry behavior is layered on by
// the source package's retry policy wrapper.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates an AH API client. requestsPerSecond throttles outgoing
// calls so scraping stays polite; a burst of a few requests is allowed.
func NewClient(baseURL string, requestsPerSecond float64) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 0.5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 5),
	}
}

// SetDebug toggles verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// searchResponse mirrors the relevant slice of the AH search payload
type searchResponse struct {
	Products []searchProduct `json:"products"`
}

type searchProduct struct {
	Title            string         `json:"title"`
	Brand            string         `json:"brand"`
	WebshopID        json.Number    `json:"webshopId"`
	PriceBeforeBonus float64        `json:"priceBeforeBonus"`
	CurrentPrice     float64        `json:"currentPrice"`
	DiscountLabel    string         `json:"discountLabel"`
	UnitSize         string         `json:"salesUnitSize"`
	Images           []productImage `json:"images"`
}

type productImage struct {
	URL string `json:"url"`
}

// Search queries the AH product search endpoint and maps the results into
// product offers.
func (c *Client) Search(ctx context.Context, query string) ([]domain.ProductOffer, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/mobile-services/product/search/v2", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("size", fmt.Sprintf("%d", defaultPageSize))
	params.Add("page", "0")

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())
	if c.debug {
		log.Printf("[AH] GET %s", reqURL)
	}

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	offers := make([]domain.ProductOffer, 0, len(resp.Products))
	for _, p := range resp.Products {
		offers = append(offers, mapProduct(p))
	}

	if c.debug {
		log.Printf("[AH] %d products for %q", len(offers), query)
	}
	return offers, nil
}

// GetDetails fetches a single product page by its webshop URL. The AH API
// has no per-URL lookup, so details are resolved by re-searching the
// product id embedded in the URL and matching on URL.
func (c *Client) GetDetails(ctx context.Context, productURL string) (*domain.ProductOffer, error) {
	id := webshopIDFromURL(productURL)
	if id == "" {
		return nil, fmt.Errorf("%w: no product id in url %q", domain.ErrInvalidRequest, productURL)
	}

	offers, err := c.Search(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if offers[i].URL == productURL {
			return &offers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: product %s", domain.ErrSourceUnavailable, id)
}

// doRequest executes a GET with the mobile-app headers AH expects and
// returns the body on a 200.
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Appie/8.22.3")
	req.Header.Set("X-Application", "AHWEBSHOP")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrSourceUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[AH] status %d: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}

	return body, nil
}
