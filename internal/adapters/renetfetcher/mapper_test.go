package renetfetcher

import (
	"testing"
)

func newTestAdapter(t *testing.T, opts Options) *RenetFetcherAdapter {
	t.Helper()
	a, err := NewRenetFetcherAdapter("https://api.example.com", "token", opts)
	if err != nil {
		t.Fatalf("NewRenetFetcherAdapter: %v", err)
	}
	return a
}

func TestMapListingIDCoalescing(t *testing.T) {
	a := newTestAdapter(t, Options{})

	onlyID := a.mapListing(listingDTO{ID: "42"})
	if onlyID.ListingID != "42" {
		t.Errorf("ListingID = %q, want fallback to ID", onlyID.ListingID)
	}
	onlyListingID := a.mapListing(listingDTO{ListingID: "L9"})
	if onlyListingID.ID != "L9" {
		t.Errorf("ID = %q, want fallback to ListingID", onlyListingID.ID)
	}
}

func TestMapListingUpgradesImageURLs(t *testing.T) {
	a := newTestAdapter(t, Options{})

	l := a.mapListing(listingDTO{
		ID:     "1",
		Images: []imageDTO{{URL: "http://cdn.example.com/a.jpg"}, {URL: "https://cdn.example.com/b.jpg"}, {}},
		Agents: []agentDTO{{ID: "AG1", Name: "Jo", Photo: "http://cdn.example.com/jo.jpg"}},
	})

	if len(l.Images) != 2 {
		t.Fatalf("images = %d, want 2 (empty URL dropped)", len(l.Images))
	}
	if l.Images[0].URL != "https://cdn.example.com/a.jpg" {
		t.Errorf("image URL = %q, want https upgrade", l.Images[0].URL)
	}
	if l.Agents[0].ImageURL != "https://cdn.example.com/jo.jpg" {
		t.Errorf("agent image = %q, want https upgrade of photo fallback", l.Agents[0].ImageURL)
	}
	if l.Agents[0].AgentID != "AG1" {
		t.Errorf("agent id = %q, want id fallback", l.Agents[0].AgentID)
	}
}

func TestMapListingCanonicalizesAttributes(t *testing.T) {
	a := newTestAdapter(t, Options{})

	fromFeatures := a.mapListing(listingDTO{
		ID: "1",
		BedBathCarLand: []featureDTO{
			{Key: "bedrooms", Label: "Bedrooms", Value: "4"},
			{Key: "bathrooms", Label: "Bathrooms", Value: "2"},
			{Key: "landSize", Label: "Land Size", Value: "650.5"},
		},
	})
	if fromFeatures.Bedrooms != 4 || fromFeatures.Bathrooms != 2 || fromFeatures.LandSize != 650.5 {
		t.Errorf("flat fields = %d/%d/%v, want populated from feature list",
			fromFeatures.Bedrooms, fromFeatures.Bathrooms, fromFeatures.LandSize)
	}

	fromFlat := a.mapListing(listingDTO{ID: "2", Bedrooms: "3", Bathrooms: "1", CarSpaces: "2"})
	if len(fromFlat.Features) != 3 {
		t.Fatalf("features = %d, want synthesized from flat fields", len(fromFlat.Features))
	}
	if fromFlat.Features[0].Key != "bedrooms" || fromFlat.Features[0].Value != "3" {
		t.Errorf("feature[0] = %+v", fromFlat.Features[0])
	}
}

func TestMapListingCleansHeading(t *testing.T) {
	a := newTestAdapter(t, Options{BrandNames: []string{"Example Realty"}})

	l := a.mapListing(listingDTO{ID: "1", Heading: "Big block - Example Realty"})
	if l.Heading != "Big block" {
		t.Errorf("heading = %q, want brand stripped", l.Heading)
	}
}

func TestMapListingJunkCountsZeroOut(t *testing.T) {
	a := newTestAdapter(t, Options{})

	l := a.mapListing(listingDTO{ID: "1", Bedrooms: "not-a-number", LandSize: "large"})
	if l.Bedrooms != 0 || l.LandSize != 0 {
		t.Errorf("junk counts = %d/%v, want zeroes", l.Bedrooms, l.LandSize)
	}
}
