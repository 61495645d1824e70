package usecase

import (
	"context"
	"testing"

	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port/usecases_port"
)

// fakeIndex serves a fixed candidate set, standing in for the listings
// gateway.
type fakeIndex struct {
	candidates []domain.Listing
	lastParams domain.FetchListingsParams
}

func (f *fakeIndex) Execute(ctx context.Context, params domain.FetchListingsParams) *domain.ListingsPage {
	f.lastParams = params
	return domain.PaginateListings(f.candidates, params.Page, params.ResultsPerPage)
}

func (f *fakeIndex) CandidateSet(ctx context.Context, params domain.FetchListingsParams) []domain.Listing {
	f.lastParams = params
	return f.candidates
}

func auctionFixture() []domain.Listing {
	return []domain.Listing{
		{ListingID: "A1", Price: "Auction", Description: "Auction: 20/11/2025 at 11:00am"},
		{ListingID: "A2", Price: "Contact Agent"},
		{ListingID: "S1", Price: "$650,000", Description: "Lovely three bedroom home"},
		{ListingID: "S2", Price: "$720,000", Description: "Move-in ready"},
	}
}

func TestFetchAuctionListingsClassifies(t *testing.T) {
	index := &fakeIndex{candidates: auctionFixture()}
	uc := NewFetchAuctionListingsUseCase(index, nil)

	page := uc.Execute(context.Background(), usecases_port.AuctionQuery{})

	if len(page.Listings) != 2 {
		t.Fatalf("auctions = %d, want 2", len(page.Listings))
	}
	for _, a := range page.Listings {
		if a.DisposalMethod != domain.DisposalAuction {
			t.Errorf("listing %s disposal = %q, want auction", a.ListingID, a.DisposalMethod)
		}
	}
	if page.Listings[0].Auction.AuctionTime != "11:00am" {
		t.Errorf("AuctionTime = %q, want extracted 11:00am", page.Listings[0].Auction.AuctionTime)
	}
	if page.Listings[1].Auction.AuctionLocation != "On Site" {
		t.Errorf("AuctionLocation = %q, want default On Site", page.Listings[1].Auction.AuctionLocation)
	}

	if index.lastParams.DisposalMethod != domain.DisposalForSale || !index.lastParams.FetchAll {
		t.Errorf("candidate params = %+v, want for-sale fetch-all", index.lastParams)
	}
}

func TestFetchAuctionListingsEmptyCandidates(t *testing.T) {
	index := &fakeIndex{}
	uc := NewFetchAuctionListingsUseCase(index, nil)

	page := uc.Execute(context.Background(), usecases_port.AuctionQuery{Page: 1})
	if len(page.Listings) != 0 {
		t.Errorf("auctions = %d, want 0", len(page.Listings))
	}
	if page.Pagination.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", page.Pagination.TotalPages)
	}
}

func TestFetchAuctionByID(t *testing.T) {
	index := &fakeIndex{candidates: auctionFixture()}
	uc := NewFetchAuctionByIDUseCase(index, nil)

	if got := uc.Execute(context.Background(), "A1"); got == nil {
		t.Error("expected auction for A1")
	}
	if got := uc.Execute(context.Background(), "S1"); got != nil {
		t.Error("S1 exists but is not an auction, want nil")
	}
	if got := uc.Execute(context.Background(), "NOPE"); got != nil {
		t.Error("unknown id, want nil")
	}
}

func TestFetchOpenHomes(t *testing.T) {
	index := &fakeIndex{candidates: []domain.Listing{
		{ListingID: "OH1", InspectionTimes: []domain.InspectionTime{{Date: "2025-10-18", StartTime: "10:00", EndTime: "10:30"}}},
		{ListingID: "NO1"},
		{ListingID: "OH2", InspectionTimes: []domain.InspectionTime{{Date: "2025-10-19"}}},
	}}
	uc := NewFetchOpenHomesUseCase(index)

	page := uc.Execute(context.Background(), usecases_port.OpenHomesQuery{})

	if len(page.Listings) != 2 {
		t.Fatalf("open homes = %d, want 2", len(page.Listings))
	}
	for _, l := range page.Listings {
		if !l.HasOpenHome() {
			t.Errorf("listing %s has no inspection times", l.ListingID)
		}
	}
}
