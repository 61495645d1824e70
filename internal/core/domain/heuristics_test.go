package domain

import "testing"

func TestMatchedResidentialIndicator(t *testing.T) {
	h := DefaultKeywordHeuristics()

	tests := []struct {
		name    string
		listing Listing
		wantKW  string
		wantHit bool
	}{
		{
			name:    "bedroom in description",
			listing: Listing{Heading: "CBD Office", Description: "Four bedroom layout upstairs"},
			wantKW:  "bedroom",
			wantHit: true,
		},
		{
			name:    "family home in heading",
			listing: Listing{Heading: "Stunning Family Home"},
			wantKW:  "family home",
			wantHit: true,
		},
		{
			name:    "category tag",
			listing: Listing{Heading: "Prime site", Categories: []string{"Townhouse"}},
			wantKW:  "house",
			wantHit: true,
		},
		{
			name:    "genuine commercial",
			listing: Listing{Heading: "Industrial shed", Description: "High clearance shed with office space"},
			wantHit: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kw, hit := h.MatchedResidentialIndicator(tt.listing)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && kw != tt.wantKW {
				t.Errorf("keyword = %q, want %q", kw, tt.wantKW)
			}
		})
	}
}

func TestIsAuctionCandidate(t *testing.T) {
	h := DefaultKeywordHeuristics()

	tests := []struct {
		name    string
		listing Listing
		want    bool
	}{
		{"auction price text", Listing{Price: "Auction"}, true},
		{"contact agent price", Listing{Price: "Contact Agent"}, true},
		{"by negotiation", Listing{Price: "By Negotiation"}, true},
		{"eoi", Listing{Price: "EOI closing soon"}, true},
		{"keyword in description", Listing{Price: "$500,000", Description: "Going under the hammer this Saturday"}, true},
		{"plain sale", Listing{Price: "$650,000", Description: "Neat three bedroom home"}, false},
		{"eoi not a word boundary", Listing{Price: "Geoid surveys included"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.IsAuctionCandidate(tt.listing); got != tt.want {
				t.Errorf("IsAuctionCandidate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewKeywordHeuristicsInvalidPattern(t *testing.T) {
	if _, err := NewKeywordHeuristics(nil, nil, []string{"("}); err == nil {
		t.Fatal("expected error for invalid regexp")
	}
}

func TestNewKeywordHeuristicsOverrides(t *testing.T) {
	h, err := NewKeywordHeuristics([]string{"granny flat"}, []string{"tender"}, []string{`(?i)\btender\b`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.HasResidentialIndicators(Listing{Description: "Includes a Granny Flat"}) {
		t.Error("override residential keyword did not match")
	}
	if h.HasResidentialIndicators(Listing{Description: "Four bedroom home"}) {
		t.Error("default keywords should be replaced by overrides")
	}
	if !h.IsAuctionCandidate(Listing{Price: "For sale by tender"}) {
		t.Error("override auction keyword did not match")
	}
}
