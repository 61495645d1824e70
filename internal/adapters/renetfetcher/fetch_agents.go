package renetfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"listings-gateway/internal/constants"
	"listings-gateway/internal/core/domain"
)

// FetchAgents retrieves one page of the agency's agent roster.
func (a *RenetFetcherAdapter) FetchAgents(ctx context.Context, page int) ([]domain.Agent, error) {
	u, err := url.Parse(a.baseURL + constants.PathAgents)
	if err != nil {
		return nil, fmt.Errorf("renet adapter: failed to build agents URL: %w", err)
	}
	if page > 0 {
		values := u.Query()
		values.Set(constants.ParamPage, strconv.Itoa(page))
		u.RawQuery = values.Encode()
	}

	result, err := a.fetchWithRetry(ctx, u.String())
	if err != nil {
		return nil, err
	}
	if result.statusCode == http.StatusNotFound {
		return []domain.Agent{}, nil
	}

	var dtos []agentDTO
	if err := json.Unmarshal(result.body, &dtos); err != nil {
		return nil, fmt.Errorf("renet adapter: failed to decode agents page: %w", err)
	}

	agents := make([]domain.Agent, 0, len(dtos))
	for _, dto := range dtos {
		agents = append(agents, a.mapAgent(dto))
	}
	return agents, nil
}

// FetchAgentByID returns (nil, nil) for an unknown agent.
func (a *RenetFetcherAdapter) FetchAgentByID(ctx context.Context, id string) (*domain.Agent, error) {
	targetURL := a.baseURL + constants.PathAgents + "/" + url.PathEscape(id)

	result, err := a.fetchWithRetry(ctx, targetURL)
	if err != nil {
		return nil, err
	}
	if result.statusCode == http.StatusNotFound {
		return nil, nil
	}

	var dto agentDTO
	if err := json.Unmarshal(result.body, &dto); err != nil {
		return nil, fmt.Errorf("renet adapter: failed to decode agent %s: %w", id, err)
	}

	agent := a.mapAgent(dto)
	if agent.AgentID == "" {
		return nil, nil
	}
	return &agent, nil
}

// FetchAgentListings retrieves the listings attributed to one agent.
func (a *RenetFetcherAdapter) FetchAgentListings(ctx context.Context, agentID string, page, perPage int) (*domain.ListingsPage, error) {
	return a.FetchListingsPage(ctx, domain.UpstreamQuery{
		AgentID:        agentID,
		Page:           page,
		ResultsPerPage: perPage,
	})
}
