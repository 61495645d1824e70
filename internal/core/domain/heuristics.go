package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Default keyword sets. These are data, not control flow: overrides can be
// supplied from configuration without touching any predicate.
var (
	DefaultResidentialIndicators = []string{
		"bedroom", "bathroom", "family home", "house", "residential",
		"villa", "townhouse", "apartment", "unit", "duplex", "cottage",
	}

	DefaultAuctionKeywords = []string{
		"auction", "bidding", "auctioneer", "bid",
		"going under the hammer", "auction on site", "auction at",
		"submit your bid", "reserve price", "auction day",
	}

	DefaultAuctionPricePatterns = []string{
		`(?i)auction`,
		`(?i)contact agent`,
		`(?i)by negotiation`,
		`(?i)expressions of interest`,
		`(?i)\beoi\b`,
	}
)

// KeywordHeuristics holds the compiled keyword sets used for best-effort
// classification where the upstream API provides no trustworthy signal.
// False positives and negatives are expected and accepted; a miss is never
// an error.
type KeywordHeuristics struct {
	residential     []string
	auctionKeywords []string
	pricePatterns   []*regexp.Regexp
}

// NewKeywordHeuristics compiles the supplied keyword sets. Empty slices
// fall back to the defaults so the predicates are never inert.
func NewKeywordHeuristics(residential, auctionKeywords, pricePatterns []string) (*KeywordHeuristics, error) {
	if len(residential) == 0 {
		residential = DefaultResidentialIndicators
	}
	if len(auctionKeywords) == 0 {
		auctionKeywords = DefaultAuctionKeywords
	}
	if len(pricePatterns) == 0 {
		pricePatterns = DefaultAuctionPricePatterns
	}

	h := &KeywordHeuristics{
		residential:     lowerAll(residential),
		auctionKeywords: lowerAll(auctionKeywords),
	}
	for _, p := range pricePatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("heuristics: invalid auction price pattern %q: %w", p, err)
		}
		h.pricePatterns = append(h.pricePatterns, re)
	}
	return h, nil
}

// DefaultKeywordHeuristics builds the heuristics from the compiled-in sets.
func DefaultKeywordHeuristics() *KeywordHeuristics {
	h, err := NewKeywordHeuristics(nil, nil, nil)
	if err != nil {
		// Default patterns are compile-time constants.
		panic(err)
	}
	return h
}

// MatchedResidentialIndicator scans a listing's heading, description,
// address and category tags for residential-indicator keywords and returns
// the first match. This backs the soft correction that excludes mistagged
// residential properties from commercial results.
func (h *KeywordHeuristics) MatchedResidentialIndicator(l Listing) (string, bool) {
	return containsAny(l.SearchBlob(), h.residential)
}

// HasResidentialIndicators reports whether any residential keyword matches.
func (h *KeywordHeuristics) HasResidentialIndicators(l Listing) bool {
	_, ok := h.MatchedResidentialIndicator(l)
	return ok
}

// IsAuctionCandidate classifies a listing as an auction when auction
// keywords appear in its price text, description or heading, or when the
// price text matches one of the auction price patterns.
func (h *KeywordHeuristics) IsAuctionCandidate(l Listing) bool {
	blob := strings.ToLower(l.Price + " " + l.Description + " " + l.Heading)
	if _, ok := containsAny(blob, h.auctionKeywords); ok {
		return true
	}
	for _, re := range h.pricePatterns {
		if re.MatchString(l.Price) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
