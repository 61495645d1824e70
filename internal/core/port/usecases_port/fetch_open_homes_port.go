package usecases_port

import (
	"context"

	"listings-gateway/internal/core/domain"
)

type OpenHomesQuery struct {
	Suburb         string
	Page           int
	ResultsPerPage int
}

// FetchOpenHomesUseCase lists for-sale listings that carry upstream
// inspection times. Availability is never sampled or guessed.
type FetchOpenHomesUseCase interface {
	Execute(ctx context.Context, q OpenHomesQuery) *domain.ListingsPage
}
