package usecases_port

import (
	"context"

	"listings-gateway/internal/core/domain"
)

// AuctionQuery narrows the auction view. Pagination is always client-side:
// the upstream API has no auction disposal method to delegate to.
type AuctionQuery struct {
	Type           domain.PropertyType
	Suburb         string
	Page           int
	ResultsPerPage int
}

type FetchAuctionListingsUseCase interface {
	Execute(ctx context.Context, q AuctionQuery) *domain.AuctionPage
}
