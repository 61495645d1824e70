package usecase

import (
	"context"

	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
	"listings-gateway/internal/core/port/usecases_port"
)

// FetchAuctionByIDUseCase looks one auction up by listing id. No per-id
// auction endpoint exists upstream, so this deliberately repeats the full
// fetch-and-classify pipeline and scans the whole candidate set.
type FetchAuctionByIDUseCase struct {
	index      usecases_port.FetchListingsIndexUseCase
	heuristics *domain.KeywordHeuristics
}

func NewFetchAuctionByIDUseCase(index usecases_port.FetchListingsIndexUseCase, heuristics *domain.KeywordHeuristics) *FetchAuctionByIDUseCase {
	if heuristics == nil {
		heuristics = domain.DefaultKeywordHeuristics()
	}
	return &FetchAuctionByIDUseCase{index: index, heuristics: heuristics}
}

func (uc *FetchAuctionByIDUseCase) Execute(ctx context.Context, id string) *domain.AuctionListing {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "FetchAuctionByID",
		"listing_id": id,
	})

	candidates := uc.index.CandidateSet(ctx, domain.FetchListingsParams{
		DisposalMethod: domain.DisposalForSale,
		FetchAll:       true,
	})

	for _, l := range candidates {
		if l.ListingID != id && l.ID != id {
			continue
		}
		if !uc.heuristics.IsAuctionCandidate(l) {
			logger.Debug("Listing found but not classified as auction", nil)
			return nil
		}
		auction := domain.NewAuctionListing(l)
		return &auction
	}
	logger.Debug("Auction listing not found in candidate set", nil)
	return nil
}
