package usecase

import (
	"context"

	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
	"listings-gateway/internal/core/port/usecases_port"
)

// FetchOpenHomesUseCase lists for-sale listings with at least one upstream
// inspection time. The rule is deterministic: a listing without inspection
// data simply has no open home.
type FetchOpenHomesUseCase struct {
	index usecases_port.FetchListingsIndexUseCase
}

func NewFetchOpenHomesUseCase(index usecases_port.FetchListingsIndexUseCase) *FetchOpenHomesUseCase {
	return &FetchOpenHomesUseCase{index: index}
}

func (uc *FetchOpenHomesUseCase) Execute(ctx context.Context, q usecases_port.OpenHomesQuery) *domain.ListingsPage {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchOpenHomes",
	})

	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.ResultsPerPage
	if perPage <= 0 {
		perPage = 12
	}

	candidates := uc.index.CandidateSet(ctx, domain.FetchListingsParams{
		DisposalMethod: domain.DisposalForSale,
		Suburb:         q.Suburb,
		FetchAll:       true,
	})

	withOpenHomes := make([]domain.Listing, 0)
	for _, l := range candidates {
		if l.HasOpenHome() {
			withOpenHomes = append(withOpenHomes, l)
		}
	}
	logger.Info("Open homes view assembled", port.Fields{
		"candidates": len(candidates),
		"open_homes": len(withOpenHomes),
	})
	return domain.PaginateListings(withOpenHomes, page, perPage)
}
