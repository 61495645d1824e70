package port

import (
	"context"

	"listings-gateway/internal/core/domain"
)

// ListingsSourcePort is the contract to the upstream real-estate listings
// API. Implementations normalize every record into the canonical domain
// shape before returning it.
type ListingsSourcePort interface {
	// FetchListingsPage retrieves one upstream page. Pagination metadata
	// comes from the upstream response headers where present.
	FetchListingsPage(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingsPage, error)

	// FetchListingByID returns (nil, nil) when the listing does not exist.
	FetchListingByID(ctx context.Context, id string) (*domain.Listing, error)

	FetchAgents(ctx context.Context, page int) ([]domain.Agent, error)

	// FetchAgentByID returns (nil, nil) when the agent does not exist.
	FetchAgentByID(ctx context.Context, id string) (*domain.Agent, error)

	FetchAgentListings(ctx context.Context, agentID string, page, perPage int) (*domain.ListingsPage, error)
}
