package usecases_port

import (
	"context"

	"listings-gateway/internal/core/domain"
)

// FetchAuctionByIDUseCase repeats the full fetch-and-classify pipeline and
// returns one match, or nil when the listing is absent or not an auction.
type FetchAuctionByIDUseCase interface {
	Execute(ctx context.Context, id string) *domain.AuctionListing
}
