package usecase

import (
	"context"

	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
)

type FetchListingByIDUseCase struct {
	source port.ListingsSourcePort
}

func NewFetchListingByIDUseCase(source port.ListingsSourcePort) *FetchListingByIDUseCase {
	return &FetchListingByIDUseCase{source: source}
}

// Execute returns nil when the listing does not exist or the upstream call
// fails; only the failure case is logged as an error, which is what
// distinguishes the two for operators.
func (uc *FetchListingByIDUseCase) Execute(ctx context.Context, id string) *domain.Listing {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "FetchListingByID",
		"listing_id": id,
	})

	listing, err := uc.source.FetchListingByID(ctx, id)
	if err != nil {
		logger.Error("Upstream listing lookup failed", err, nil)
		return nil
	}
	if listing == nil {
		logger.Debug("Listing not found upstream", nil)
		return nil
	}
	return listing
}
