package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"listings-gateway/internal/core/domain"
)

// fakeSource serves canned pages keyed by the requested page number.
type fakeSource struct {
	pages map[int]*domain.ListingsPage
	err   error

	fetchCalls   int
	lastQueries  []domain.UpstreamQuery
	listingsByID map[string]*domain.Listing
}

func (f *fakeSource) FetchListingsPage(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingsPage, error) {
	f.fetchCalls++
	f.lastQueries = append(f.lastQueries, q)
	if f.err != nil {
		return nil, f.err
	}
	if page, ok := f.pages[q.Page]; ok {
		return page, nil
	}
	return &domain.ListingsPage{Listings: []domain.Listing{}}, nil
}

func (f *fakeSource) FetchListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.listingsByID[id], nil
}

func (f *fakeSource) FetchAgents(ctx context.Context, page int) ([]domain.Agent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Agent{}, nil
}

func (f *fakeSource) FetchAgentByID(ctx context.Context, id string) (*domain.Agent, error) {
	return nil, f.err
}

func (f *fakeSource) FetchAgentListings(ctx context.Context, agentID string, page, perPage int) (*domain.ListingsPage, error) {
	return f.FetchListingsPage(ctx, domain.UpstreamQuery{AgentID: agentID, Page: page, ResultsPerPage: perPage})
}

func singlePage(listings []domain.Listing) map[int]*domain.ListingsPage {
	return map[int]*domain.ListingsPage{
		1: {
			Listings: listings,
			Pagination: domain.Pagination{
				TotalResults: len(listings),
				CurrentPage:  1,
				TotalPages:   1,
			},
		},
	}
}

func commercialListing(id, heading, description string) domain.Listing {
	return domain.Listing{
		ListingID:   id,
		Heading:     heading,
		Description: description,
		Type:        domain.PropertyTypeCommercial,
		Price:       "$1,000,000",
	}
}

func TestExecuteCommercialExcludesResidentialIndicators(t *testing.T) {
	var listings []domain.Listing
	for i := 0; i < 10; i++ {
		listings = append(listings, commercialListing(
			fmt.Sprintf("C%d", i), "Industrial shed", "High clearance shed with hardstand"))
	}
	for i := 0; i < 20; i++ {
		listings = append(listings, commercialListing(
			fmt.Sprintf("R%d", i), "Great investment", "Four bedroom residence rented out"))
	}

	source := &fakeSource{pages: singlePage(listings)}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{})

	res := uc.Execute(context.Background(), domain.FetchListingsParams{
		DisposalMethod: domain.DisposalForSale,
		Type:           domain.PropertyTypeCommercial,
		ResultsPerPage: 50,
	})

	if got := len(res.Listings); got != 10 {
		t.Fatalf("commercial results = %d, want 10 after excluding mistagged residential", got)
	}
	for _, l := range res.Listings {
		if l.ListingID[0] != 'C' {
			t.Errorf("unexpected survivor %s", l.ListingID)
		}
	}
	if res.Pagination.TotalResults != 10 {
		t.Errorf("TotalResults = %d, want the filtered count 10", res.Pagination.TotalResults)
	}
}

func TestExecuteUpstreamFailureDegradesToEmptyPage(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{})

	res := uc.Execute(context.Background(), domain.FetchListingsParams{
		Type: domain.PropertyTypeCommercial,
		Page: 1,
	})

	if res == nil {
		t.Fatal("Execute must never return nil")
	}
	if len(res.Listings) != 0 {
		t.Errorf("listings = %d, want 0", len(res.Listings))
	}
	if res.Pagination.TotalResults != 0 {
		t.Errorf("TotalResults = %d, want 0", res.Pagination.TotalResults)
	}
	if res.Pagination.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1 even for an empty set", res.Pagination.TotalPages)
	}
}

func TestExecuteMidLoopFailureKeepsPartialSet(t *testing.T) {
	pageOne := &domain.ListingsPage{
		Listings:   []domain.Listing{{ListingID: "A", Type: domain.PropertyTypeResidential}},
		Pagination: domain.Pagination{TotalResults: 200, CurrentPage: 1, TotalPages: 3},
	}
	source := &fakeSource{pages: map[int]*domain.ListingsPage{1: pageOne}}
	// Page 2 is not in the map, so the fake returns an empty page and the
	// loop stops with what page 1 delivered.
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{})

	res := uc.Execute(context.Background(), domain.FetchListingsParams{
		Type: domain.PropertyTypeResidential,
	})
	if len(res.Listings) != 1 {
		t.Errorf("listings = %d, want the partial set of 1", len(res.Listings))
	}
}

func TestExecuteDeduplicatesAcrossPages(t *testing.T) {
	shared := domain.Listing{ListingID: "DUP", Type: domain.PropertyTypeResidential}
	source := &fakeSource{pages: map[int]*domain.ListingsPage{
		1: {
			Listings:   []domain.Listing{shared, {ListingID: "X", Type: domain.PropertyTypeResidential}},
			Pagination: domain.Pagination{TotalResults: 4, CurrentPage: 1, TotalPages: 2},
		},
		2: {
			Listings:   []domain.Listing{shared, {ListingID: "Y", Type: domain.PropertyTypeResidential}},
			Pagination: domain.Pagination{TotalResults: 4, CurrentPage: 2, TotalPages: 2},
		},
	}}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{})

	res := uc.Execute(context.Background(), domain.FetchListingsParams{
		Type:           domain.PropertyTypeResidential,
		ResultsPerPage: 10,
	})
	if len(res.Listings) != 3 {
		t.Errorf("listings = %d, want 3 after dedupe", len(res.Listings))
	}
}

func TestExecuteIsIdempotent(t *testing.T) {
	listings := []domain.Listing{
		{ListingID: "A", Type: domain.PropertyTypeResidential, Price: "$400,000"},
		{ListingID: "B", Type: domain.PropertyTypeResidential, Price: "$500,000"},
	}
	source := &fakeSource{pages: singlePage(listings)}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{})

	params := domain.FetchListingsParams{Type: domain.PropertyTypeResidential}
	first := uc.Execute(context.Background(), params)
	second := uc.Execute(context.Background(), params)

	if len(first.Listings) != len(second.Listings) {
		t.Fatalf("result sizes differ: %d vs %d", len(first.Listings), len(second.Listings))
	}
	for i := range first.Listings {
		if first.Listings[i].ListingID != second.Listings[i].ListingID {
			t.Errorf("order differs at %d: %s vs %s", i, first.Listings[i].ListingID, second.Listings[i].ListingID)
		}
	}
}

func TestExecutePriceFilterLeniency(t *testing.T) {
	listings := []domain.Listing{
		{ListingID: "CHEAP", Type: domain.PropertyTypeResidential, Price: "$300,000"},
		{ListingID: "DEAR", Type: domain.PropertyTypeResidential, Price: "$900,000"},
		{ListingID: "VAGUE", Type: domain.PropertyTypeResidential, Price: "Contact Agent"},
	}
	source := &fakeSource{pages: singlePage(listings)}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{})

	res := uc.Execute(context.Background(), domain.FetchListingsParams{
		Type:     domain.PropertyTypeResidential,
		MinPrice: 400000,
		MaxPrice: 950000,
	})

	ids := map[string]bool{}
	for _, l := range res.Listings {
		ids[l.ListingID] = true
	}
	if ids["CHEAP"] {
		t.Error("listing below MinPrice should be excluded")
	}
	if !ids["DEAR"] {
		t.Error("listing inside the range should pass")
	}
	if !ids["VAGUE"] {
		t.Error("unparseable price must pass the filter, not fail it")
	}
}

func TestExecuteCheapPathTrustsUpstreamPagination(t *testing.T) {
	source := &fakeSource{pages: map[int]*domain.ListingsPage{
		2: {
			Listings:   []domain.Listing{{ListingID: "S1"}},
			Pagination: domain.Pagination{TotalResults: 40, ResultsPerPage: 12, CurrentPage: 2, TotalPages: 4},
		},
	}}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{})

	res := uc.Execute(context.Background(), domain.FetchListingsParams{
		DisposalMethod: domain.DisposalSold,
		Page:           2,
		ResultsPerPage: 12,
	})

	if source.fetchCalls != 1 {
		t.Errorf("fetch calls = %d, want exactly 1 on the pass-through path", source.fetchCalls)
	}
	if res.Pagination.TotalResults != 40 || res.Pagination.TotalPages != 4 {
		t.Errorf("pagination = %+v, want upstream values passed through", res.Pagination)
	}
}

func TestExecuteFetchAllHonorsSafetyCeiling(t *testing.T) {
	pages := make(map[int]*domain.ListingsPage)
	for i := 1; i <= 100; i++ {
		pages[i] = &domain.ListingsPage{
			Listings:   []domain.Listing{{ListingID: fmt.Sprintf("P%d", i)}},
			Pagination: domain.Pagination{TotalResults: 100000, CurrentPage: i, TotalPages: 1000},
		}
	}
	source := &fakeSource{pages: pages}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{MaxFetchPages: 5})

	uc.Execute(context.Background(), domain.FetchListingsParams{FetchAll: true})

	if source.fetchCalls != 5 {
		t.Errorf("fetch calls = %d, want the ceiling of 5", source.fetchCalls)
	}
}

func TestExecuteAgencyFilter(t *testing.T) {
	listings := []domain.Listing{
		{ListingID: "OURS_ID", AgencyID: "10021353", Type: domain.PropertyTypeResidential},
		{ListingID: "OURS_AGENT", AgencyID: "99", Type: domain.PropertyTypeResidential,
			Agents: []domain.Agent{{Name: "Ben Kerrisk"}}},
		{ListingID: "THEIRS", AgencyID: "99", Type: domain.PropertyTypeResidential,
			Agents: []domain.Agent{{Name: "Somebody Else"}}},
	}
	source := &fakeSource{pages: singlePage(listings)}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{
		AgencyID:     "10021353",
		AgencyAgents: []string{"Kerrisk"},
	})

	res := uc.Execute(context.Background(), domain.FetchListingsParams{
		Type: domain.PropertyTypeResidential,
	})

	ids := map[string]bool{}
	for _, l := range res.Listings {
		ids[l.ListingID] = true
	}
	if !ids["OURS_ID"] || !ids["OURS_AGENT"] {
		t.Errorf("agency listings missing: %v", ids)
	}
	if ids["THEIRS"] {
		t.Error("foreign agency listing should be filtered out")
	}
}

func TestExecuteDropsInvalidCategoriesButServesValidOnes(t *testing.T) {
	listings := []domain.Listing{
		{ListingID: "H", Type: domain.PropertyTypeResidential, Categories: []string{"House"}},
		{ListingID: "U", Type: domain.PropertyTypeResidential, Categories: []string{"Unit"}},
	}
	source := &fakeSource{pages: singlePage(listings)}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{})

	res := uc.Execute(context.Background(), domain.FetchListingsParams{
		Categories: []string{"house", "made-up-category"},
	})

	if len(res.Listings) != 1 || res.Listings[0].ListingID != "H" {
		t.Fatalf("results = %v, want only the House listing; the bogus category is dropped, not fatal", res.Listings)
	}
}

func TestExecuteCategoryFilterRequiresTags(t *testing.T) {
	listings := []domain.Listing{
		{ListingID: "TAGGED", Type: domain.PropertyTypeResidential, Categories: []string{"Residential House"}},
		{ListingID: "UNTAGGED", Type: domain.PropertyTypeResidential},
	}
	source := &fakeSource{pages: singlePage(listings)}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{})

	res := uc.Execute(context.Background(), domain.FetchListingsParams{
		Categories: []string{"House"},
	})

	if len(res.Listings) != 1 || res.Listings[0].ListingID != "TAGGED" {
		t.Fatalf("results = %v, want only the tagged listing (substring match)", res.Listings)
	}
}

func TestBuildUpstreamQueryDefaultsOrdering(t *testing.T) {
	source := &fakeSource{pages: singlePage(nil)}
	uc := NewFetchListingsIndexUseCase(source, nil, GatewayOptions{})

	uc.Execute(context.Background(), domain.FetchListingsParams{DisposalMethod: domain.DisposalForRent})

	if len(source.lastQueries) == 0 {
		t.Fatal("no upstream query recorded")
	}
	q := source.lastQueries[0]
	if q.OrderBy != "dateListed" || q.OrderDirection != "desc" {
		t.Errorf("ordering = %s/%s, want dateListed/desc by default", q.OrderBy, q.OrderDirection)
	}
}
