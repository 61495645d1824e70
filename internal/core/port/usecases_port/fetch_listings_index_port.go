package usecases_port

import (
	"context"

	"listings-gateway/internal/core/domain"
)

// FetchListingsIndexUseCase is the listings gateway. Execute never fails:
// upstream errors degrade to an empty page and are logged, never propagated
// to the rendering layer.
type FetchListingsIndexUseCase interface {
	Execute(ctx context.Context, params domain.FetchListingsParams) *domain.ListingsPage

	// CandidateSet returns the full filtered, deduplicated, unpaginated
	// set. Derived views (auctions, open homes) build on this.
	CandidateSet(ctx context.Context, params domain.FetchListingsParams) []domain.Listing
}
