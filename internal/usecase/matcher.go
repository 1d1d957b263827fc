package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/digitalrebelz/supermarket-price-compare/internal/domain"
)

// DefaultSimilarityThreshold is the minimum token-sort ratio for an offer
// to count as a match for a query.
const DefaultSimilarityThreshold = 0.7

// MatcherConfig holds configuration for the matcher
type MatcherConfig struct {
	SimilarityThreshold float64
	EnableDebugLogging  bool
}

// Matcher resolves which offers from different retailers represent the same
// product, using token-sort similarity on offer names.
type Matcher struct {
	similarityThreshold float64
	enableDebugLogging  bool
}

// NewMatcher creates a matcher with the given configuration
func NewMatcher(config MatcherConfig) *Matcher {
	threshold := config.SimilarityThreshold
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}

	return &Matcher{
		similarityThreshold: threshold,
		enableDebugLogging:  config.EnableDebugLogging,
	}
}

// Similarity computes the token-sort ratio between two product names.
// Both strings are lowercased, split into whitespace tokens, sorted
// alphabetically and rejoined before a normalized Levenshtein ratio is
// taken. Word order therefore never matters ("halfvolle melk" equals
// "melk halfvolle") while token-level spelling differences still do.
// The result is in [0,1]; identical strings score 1.0.
func (m *Matcher) Similarity(a, b string) float64 {
	na := tokenSortNormalize(a)
	nb := tokenSortNormalize(b)

	if na == nb {
		return 1.0
	}

	ra := []rune(na)
	rb := []rune(nb)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(levenshteinDistance(na, nb))/float64(longest)
}

// tokenSortNormalize lowercases, splits on whitespace, sorts the tokens
// alphabetically and rejoins with single spaces.
func tokenSortNormalize(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// BestMatch returns the single offer whose name scores highest against the
// query, or nil when no offer reaches the similarity threshold. Ties on the
// top score resolve to the first offer in input order.
func (m *Matcher) BestMatch(query string, offers []domain.ProductOffer) *domain.ProductOffer {
	if len(offers) == 0 {
		return nil
	}

	var best *domain.ProductOffer
	bestScore := 0.0

	for i := range offers {
		score := m.Similarity(query, offers[i].Name)
		if score > bestScore {
			bestScore = score
			best = &offers[i]
		}
	}

	if bestScore >= m.similarityThreshold {
		return best
	}
	return nil
}

// MatchAcrossRetailers applies BestMatch independently per retailer. Every
// key of offersByRetailer appears in the result; a retailer with no offers,
// or none above threshold, maps to nil rather than an error.
func (m *Matcher) MatchAcrossRetailers(query string, offersByRetailer map[string][]domain.ProductOffer) map[string]*domain.ProductOffer {
	matches := make(map[string]*domain.ProductOffer, len(offersByRetailer))

	for retailer, offers := range offersByRetailer {
		match := m.BestMatch(query, offers)
		matches[retailer] = match

		if match != nil && m.enableDebugLogging {
			log.Printf("[MATCH] %s: matched %q -> %q", retailer, query, match.Name)
		}
	}

	return matches
}

// GroupSimilar clusters offers into similarity groups with a single greedy
// pass. Each unvisited offer anchors a new group; every later unvisited
// offer joins when its similarity to the anchor reaches the threshold.
// Candidates are compared to the anchor only, never pairwise among group
// members, so two offers can share a group without being similar to each
// other. Downstream grouping sizes depend on this; do not tighten it to
// transitive clustering.
func (m *Matcher) GroupSimilar(offers []domain.ProductOffer) [][]domain.ProductOffer {
	if len(offers) == 0 {
		return nil
	}

	var groups [][]domain.ProductOffer
	visited := make([]bool, len(offers))

	for i := range offers {
		if visited[i] {
			continue
		}

		group := []domain.ProductOffer{offers[i]}
		visited[i] = true

		for j := i + 1; j < len(offers); j++ {
			if visited[j] {
				continue
			}
			if m.Similarity(offers[i].Name, offers[j].Name) >= m.similarityThreshold {
				group = append(group, offers[j])
				visited[j] = true
			}
		}

		groups = append(groups, group)
	}

	return groups
}

// ExactMatch finds an offer whose name equals the given name ignoring case.
// Brand narrows the match only when both the argument and the offer carry a
// brand; otherwise brand is not a discriminator.
func (m *Matcher) ExactMatch(name, brand string, offers []domain.ProductOffer) *domain.ProductOffer {
	for i := range offers {
		if !strings.EqualFold(offers[i].Name, name) {
			continue
		}
		if brand != "" && offers[i].Brand != "" && !strings.EqualFold(offers[i].Brand, brand) {
			continue
		}
		return &offers[i]
	}
	return nil
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Use two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
