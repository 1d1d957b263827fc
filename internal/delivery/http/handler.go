package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

// Comparer is the engine surface the HTTP layer serializes.
type Comparer interface {
	SearchAndCompare(ctx context.Context, query string) map[string]*domain.PriceQuote
	CompareShoppingList(ctx context.Context, items []domain.ShoppingListItem, hasLoyaltyCard bool) ([]domain.ComparisonOption, error)
	ItemSavings(item domain.ShoppingListItem, retailerNames []string) domain.ItemSavings
	Retailers(ctx context.Context) ([]domain.RetailerProfile, error)
}

// Handler holds dependencies for HTTP handlers. The response cache lives
// here, not in the engine: comparison stays cache-free while repeated
// identical searches are served cheaply.
type Handler struct {
	engine   Comparer
	cache    domain.CacheRepository
	cacheTTL time.Duration
}

// NewHandler creates a new HTTP handler. cache may be nil to disable
// search-response caching.
func NewHandler(engine Comparer, cache domain.CacheRepository, cacheTTL time.Duration) *Handler {
	return &Handler{
		engine:   engine,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "supermarket-price-compare",
		"version": "1.0.0",
	})
}

// ListRetailers returns the retailer catalog snapshot
func (h *Handler) ListRetailers(c *gin.Context) {
	retailers, err := h.engine.Retailers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, retailers)
}

type searchRequest struct {
	Query string `json:"query" binding:"required"`
}

type searchResponse struct {
	Query   string                        `json:"query"`
	Results map[string]*domain.PriceQuote `json:"results"`
}

// SearchProducts compares one product's price across all retailers
func (h *Handler) SearchProducts(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	ctx := c.Request.Context()
	cacheKey := "search:" + normalizeCacheKey(req.Query)

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, cacheKey); err == nil {
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	resp := searchResponse{
		Query:   req.Query,
		Results: h.engine.SearchAndCompare(ctx, req.Query),
	}

	body, err := json.Marshal(resp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, cacheKey, body, h.cacheTTL); err != nil {
			log.Printf("[HTTP] caching search response failed: %v", err)
		}
	}

	c.Data(http.StatusOK, "application/json", body)
}

type compareRequest struct {
	Items          []domain.ShoppingListItem `json:"items" binding:"required"`
	HasLoyaltyCard *bool                     `json:"hasLoyaltyCard"`
}

// CompareShoppingList ranks the fulfillment options for a shopping list.
// hasLoyaltyCard defaults to true when omitted.
func (h *Handler) CompareShoppingList(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items are required"})
		return
	}

	hasLoyaltyCard := true
	if req.HasLoyaltyCard != nil {
		hasLoyaltyCard = *req.HasLoyaltyCard
	}

	options, err := h.engine.CompareShoppingList(c.Request.Context(), req.Items, hasLoyaltyCard)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"options": options}
	if len(options) > 0 {
		resp["cheapest"] = options[0]
	} else {
		resp["cheapest"] = nil
	}
	c.JSON(http.StatusOK, resp)
}

type itemSavingsRequest struct {
	Item      domain.ShoppingListItem `json:"item" binding:"required"`
	Retailers []string                `json:"retailers" binding:"required"`
}

// ItemSavings reports the price spread of one priced item across retailers
func (h *Handler) ItemSavings(c *gin.Context) {
	var req itemSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item and retailers are required"})
		return
	}

	c.JSON(http.StatusOK, h.engine.ItemSavings(req.Item, req.Retailers))
}

var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9 ]`)
var multipleSpacesRegex = regexp.MustCompile(`\s+`)

// normalizeCacheKey lowercases and strips punctuation so "Melk!" and "melk"
// share a cache entry.
func normalizeCacheKey(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
