package domain

import (
	"testing"
)

func TestParsePriceValue(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"$650,000", 650000, true},
		{"Offers over $1,250,000", 1250000, true},
		{"$449.50 per week", 449.50, true},
		{"Contact Agent", 0, false},
		{"Auction", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePriceValue(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParsePriceValue(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDedupeListingsKeepsFirst(t *testing.T) {
	in := []Listing{
		{ListingID: "A", Heading: "first"},
		{ListingID: "B"},
		{ListingID: "A", Heading: "second"},
		{ID: "C"},
		{},
	}
	out := DedupeListings(in)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[0].Heading != "first" {
		t.Errorf("dedupe kept %q, want the first occurrence", out[0].Heading)
	}
	if out[2].Key() != "C" {
		t.Errorf("ID fallback key = %q, want C", out[2].Key())
	}
}

func TestSlicePage(t *testing.T) {
	tests := []struct {
		name           string
		total, page    int
		perPage        int
		wantStart      int
		wantEnd        int
		wantTotalPages int
		wantNext       bool
	}{
		{"first of many", 25, 1, 10, 0, 10, 3, true},
		{"middle", 25, 2, 10, 10, 20, 3, true},
		{"last partial", 25, 3, 10, 20, 25, 3, false},
		{"past the end", 25, 9, 10, 25, 25, 3, false},
		{"empty set still one page", 0, 1, 10, 0, 0, 1, false},
		{"page zero clamps to one", 5, 0, 10, 0, 5, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, p := SlicePage(tt.total, tt.page, tt.perPage)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("bounds = [%d:%d], want [%d:%d]", start, end, tt.wantStart, tt.wantEnd)
			}
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if (p.NextPage != nil) != tt.wantNext {
				t.Errorf("NextPage set = %v, want %v", p.NextPage != nil, tt.wantNext)
			}
		})
	}
}

func TestPaginateListingsSliceLaw(t *testing.T) {
	set := make([]Listing, 23)
	for i := range set {
		set[i].ListingID = string(rune('a' + i))
	}

	var collected int
	for page := 1; page <= 3; page++ {
		res := PaginateListings(set, page, 10)
		collected += len(res.Listings)
		if res.Pagination.TotalResults != 23 {
			t.Errorf("page %d TotalResults = %d, want 23", page, res.Pagination.TotalResults)
		}
	}
	if collected != 23 {
		t.Errorf("pages collect %d items, want the whole set of 23", collected)
	}
}

func TestCleanHeading(t *testing.T) {
	brands := []string{"Example Realty Mackay", "Example Realty"}
	tests := []struct {
		in   string
		want string
	}{
		{"Family Home - Example Realty Mackay", "Family Home"},
		{"Example Realty presents: big shed", "presents: big shed"},
		{"No branding here", "No branding here"},
		{"Example Realty", "Example Realty"}, // stripping everything keeps the original
	}
	for _, tt := range tests {
		if got := CleanHeading(tt.in, brands); got != tt.want {
			t.Errorf("CleanHeading(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHasOpenHome(t *testing.T) {
	if (Listing{}).HasOpenHome() {
		t.Error("listing without inspection times should not report an open home")
	}
	l := Listing{InspectionTimes: []InspectionTime{{Date: "2025-10-18"}}}
	if !l.HasOpenHome() {
		t.Error("listing with inspection times should report an open home")
	}
}
