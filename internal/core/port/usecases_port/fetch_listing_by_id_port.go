package usecases_port

import (
	"context"

	"listings-gateway/internal/core/domain"
)

// FetchListingByIDUseCase returns nil both for "not found" and for upstream
// failure; only the latter produces an error log entry.
type FetchListingByIDUseCase interface {
	Execute(ctx context.Context, id string) *domain.Listing
}
