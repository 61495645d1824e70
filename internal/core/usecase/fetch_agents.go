package usecase

import (
	"context"

	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
)

type FetchAgentsUseCase struct {
	source port.ListingsSourcePort
}

func NewFetchAgentsUseCase(source port.ListingsSourcePort) *FetchAgentsUseCase {
	return &FetchAgentsUseCase{source: source}
}

func (uc *FetchAgentsUseCase) Execute(ctx context.Context, page int) []domain.Agent {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchAgents",
		"page":     page,
	})
	if page < 1 {
		page = 1
	}

	agents, err := uc.source.FetchAgents(ctx, page)
	if err != nil {
		logger.Error("Upstream agents fetch failed, returning empty list", err, nil)
		return []domain.Agent{}
	}
	return agents
}

type FetchAgentByIDUseCase struct {
	source port.ListingsSourcePort
}

func NewFetchAgentByIDUseCase(source port.ListingsSourcePort) *FetchAgentByIDUseCase {
	return &FetchAgentByIDUseCase{source: source}
}

func (uc *FetchAgentByIDUseCase) Execute(ctx context.Context, id string) *domain.Agent {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FetchAgentByID",
		"agent_id": id,
	})

	agent, err := uc.source.FetchAgentByID(ctx, id)
	if err != nil {
		logger.Error("Upstream agent lookup failed", err, nil)
		return nil
	}
	return agent
}
