package usecase

import (
	"context"

	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
	"listings-gateway/internal/core/port/usecases_port"
)

// FetchAuctionListingsUseCase is a derived view over the listings gateway:
// it re-fetches the full for-sale candidate set and heuristically
// reclassifies a subset as auctions. Misclassification either way is an
// accepted approximation, not a failure.
type FetchAuctionListingsUseCase struct {
	index      usecases_port.FetchListingsIndexUseCase
	heuristics *domain.KeywordHeuristics
}

func NewFetchAuctionListingsUseCase(index usecases_port.FetchListingsIndexUseCase, heuristics *domain.KeywordHeuristics) *FetchAuctionListingsUseCase {
	if heuristics == nil {
		heuristics = domain.DefaultKeywordHeuristics()
	}
	return &FetchAuctionListingsUseCase{index: index, heuristics: heuristics}
}

func (uc *FetchAuctionListingsUseCase) Execute(ctx context.Context, q usecases_port.AuctionQuery) *domain.AuctionPage {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchAuctionListings",
	})

	page := q.Page
	if page < 1 {
		page = 1
	}
	perPage := q.ResultsPerPage
	if perPage <= 0 {
		perPage = 50
	}

	candidates := uc.index.CandidateSet(ctx, domain.FetchListingsParams{
		DisposalMethod: domain.DisposalForSale,
		Type:           q.Type,
		Suburb:         q.Suburb,
		FetchAll:       true,
	})

	auctions := classifyAuctions(candidates, uc.heuristics)
	logger.Info("Auction candidates classified", port.Fields{
		"candidates": len(candidates),
		"auctions":   len(auctions),
	})
	return domain.PaginateAuctions(auctions, page, perPage)
}

func classifyAuctions(listings []domain.Listing, heuristics *domain.KeywordHeuristics) []domain.AuctionListing {
	auctions := make([]domain.AuctionListing, 0)
	for _, l := range listings {
		if heuristics.IsAuctionCandidate(l) {
			auctions = append(auctions, domain.NewAuctionListing(l))
		}
	}
	return auctions
}
