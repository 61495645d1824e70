package rest

import (
	"net/http"

	"listings-gateway/internal/core/port/usecases_port"
)

type OpenHomesHandler struct {
	fetchOpenHomesUC usecases_port.FetchOpenHomesUseCase

	defaultPerPage int
	maxPerPage     int
}

func NewOpenHomesHandler(fetchOpenHomesUC usecases_port.FetchOpenHomesUseCase, defaultPerPage, maxPerPage int) *OpenHomesHandler {
	return &OpenHomesHandler{
		fetchOpenHomesUC: fetchOpenHomesUC,
		defaultPerPage:   defaultPerPage,
		maxPerPage:       maxPerPage,
	}
}

// GetOpenHomes handles GET /api/v1/open-homes.
func (h *OpenHomesHandler) GetOpenHomes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := h.fetchOpenHomesUC.Execute(r.Context(), usecases_port.OpenHomesQuery{
		Suburb:         query.Get("suburb"),
		Page:           GetPageOrDefault(query),
		ResultsPerPage: GetPerPageOrDefault(query, h.defaultPerPage, h.maxPerPage),
	})

	RespondWithJSON(w, http.StatusOK, PaginatedListingsResponse{
		Listings:   toListingResponses(page.Listings),
		Pagination: toPaginationResponse(page.Pagination),
	})
}
