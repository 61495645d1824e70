package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port/usecases_port"
)

type AgentsHandler struct {
	fetchAgentsUC    usecases_port.FetchAgentsUseCase
	fetchAgentByIDUC usecases_port.FetchAgentByIDUseCase
	fetchIndexUC     usecases_port.FetchListingsIndexUseCase

	defaultPerPage int
	maxPerPage     int
}

func NewAgentsHandler(
	fetchAgentsUC usecases_port.FetchAgentsUseCase,
	fetchAgentByIDUC usecases_port.FetchAgentByIDUseCase,
	fetchIndexUC usecases_port.FetchListingsIndexUseCase,
	defaultPerPage, maxPerPage int) *AgentsHandler {
	return &AgentsHandler{
		fetchAgentsUC:    fetchAgentsUC,
		fetchAgentByIDUC: fetchAgentByIDUC,
		fetchIndexUC:     fetchIndexUC,
		defaultPerPage:   defaultPerPage,
		maxPerPage:       maxPerPage,
	}
}

// GetAgents handles GET /api/v1/agents.
func (h *AgentsHandler) GetAgents(w http.ResponseWriter, r *http.Request) {
	agents := h.fetchAgentsUC.Execute(r.Context(), GetPageOrDefault(r.URL.Query()))

	out := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, toAgentResponse(a))
	}
	RespondWithJSON(w, http.StatusOK, map[string]interface{}{"agents": out})
}

// GetAgentByID handles GET /api/v1/agents/{agentID}.
func (h *AgentsHandler) GetAgentByID(w http.ResponseWriter, r *http.Request) {
	agentID := chi.URLParam(r, "agentID")
	if agentID == "" {
		WriteJSONError(w, http.StatusBadRequest, "agentID is required")
		return
	}

	agent := h.fetchAgentByIDUC.Execute(r.Context(), agentID)
	if agent == nil {
		WriteJSONError(w, http.StatusNotFound, "agent not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toAgentResponse(*agent))
}

// GetAgentListings handles GET /api/v1/agents/{agentID}/listings.
func (h *AgentsHandler) GetAgentListings(w http.ResponseWriter, r *http.Request) {
	agentID := chi.URLParam(r, "agentID")
	if agentID == "" {
		WriteJSONError(w, http.StatusBadRequest, "agentID is required")
		return
	}

	query := r.URL.Query()
	page := h.fetchIndexUC.Execute(r.Context(), domain.FetchListingsParams{
		AgentID:        agentID,
		Page:           GetPageOrDefault(query),
		ResultsPerPage: GetPerPageOrDefault(query, h.defaultPerPage, h.maxPerPage),
	})

	RespondWithJSON(w, http.StatusOK, PaginatedListingsResponse{
		Listings:   toListingResponses(page.Listings),
		Pagination: toPaginationResponse(page.Pagination),
	})
}
