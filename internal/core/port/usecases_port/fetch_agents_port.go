package usecases_port

import (
	"context"

	"listings-gateway/internal/core/domain"
)

type FetchAgentsUseCase interface {
	Execute(ctx context.Context, page int) []domain.Agent
}

// FetchAgentByIDUseCase returns nil when the agent does not exist.
type FetchAgentByIDUseCase interface {
	Execute(ctx context.Context, id string) *domain.Agent
}
