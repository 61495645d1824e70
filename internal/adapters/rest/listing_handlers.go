package rest

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port/usecases_port"
)

type ListingsHandler struct {
	fetchIndexUC usecases_port.FetchListingsIndexUseCase
	fetchByIDUC  usecases_port.FetchListingByIDUseCase

	defaultPerPage int
	maxPerPage     int
}

func NewListingsHandler(
	fetchIndexUC usecases_port.FetchListingsIndexUseCase,
	fetchByIDUC usecases_port.FetchListingByIDUseCase,
	defaultPerPage, maxPerPage int) *ListingsHandler {
	return &ListingsHandler{
		fetchIndexUC:   fetchIndexUC,
		fetchByIDUC:    fetchByIDUC,
		defaultPerPage: defaultPerPage,
		maxPerPage:     maxPerPage,
	}
}

// GetListings handles GET /api/v1/listings.
func (h *ListingsHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := domain.FetchListingsParams{
		Suburb:         query.Get("suburb"),
		MinPrice:       parseFloat(query, "minPrice"),
		MaxPrice:       parseFloat(query, "maxPrice"),
		Bedrooms:       parseInt(query, "bedrooms"),
		Bathrooms:      parseInt(query, "bathrooms"),
		PropertyType:   query.Get("propertyType"),
		AgentID:        firstNonEmpty(query.Get("agent"), query.Get("agentID")),
		Page:           GetPageOrDefault(query),
		ResultsPerPage: GetPerPageOrDefault(query, h.defaultPerPage, h.maxPerPage),
		OrderBy:        query.Get("orderBy"),
		OrderDirection: query.Get("orderDirection"),
		FetchAll:       query.Get("fetchAll") == "true",
	}

	if dm := query.Get("disposalMethod"); dm != "" {
		parsed, ok := domain.ParseDisposalMethod(dm)
		if !ok {
			WriteJSONError(w, http.StatusBadRequest, "unknown disposalMethod: "+dm)
			return
		}
		params.DisposalMethod = parsed
	}
	if t := query.Get("type"); t != "" {
		params.Type = domain.PropertyType(t)
	}
	if c := query.Get("category"); c != "" {
		params.Categories = append(params.Categories, c)
	}
	if raw := query.Get("categories"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				params.Categories = append(params.Categories, c)
			}
		}
	}

	page := h.fetchIndexUC.Execute(r.Context(), params)

	RespondWithJSON(w, http.StatusOK, PaginatedListingsResponse{
		Listings:   toListingResponses(page.Listings),
		Pagination: toPaginationResponse(page.Pagination),
	})
}

// GetListingByID handles GET /api/v1/listings/{listingID}.
func (h *ListingsHandler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingID")
	if listingID == "" {
		WriteJSONError(w, http.StatusBadRequest, "listingID is required")
		return
	}

	listing := h.fetchByIDUC.Execute(r.Context(), listingID)
	if listing == nil {
		WriteJSONError(w, http.StatusNotFound, "listing not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(*listing))
}
