package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port/usecases_port"
)

type AuctionsHandler struct {
	fetchAuctionsUC usecases_port.FetchAuctionListingsUseCase
	fetchByIDUC     usecases_port.FetchAuctionByIDUseCase

	maxPerPage int
}

func NewAuctionsHandler(
	fetchAuctionsUC usecases_port.FetchAuctionListingsUseCase,
	fetchByIDUC usecases_port.FetchAuctionByIDUseCase,
	maxPerPage int) *AuctionsHandler {
	return &AuctionsHandler{
		fetchAuctionsUC: fetchAuctionsUC,
		fetchByIDUC:     fetchByIDUC,
		maxPerPage:      maxPerPage,
	}
}

// GetAuctions handles GET /api/v1/auctions.
func (h *AuctionsHandler) GetAuctions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := usecases_port.AuctionQuery{
		Suburb:         query.Get("suburb"),
		Page:           GetPageOrDefault(query),
		ResultsPerPage: GetPerPageOrDefault(query, 50, h.maxPerPage),
	}
	if t := query.Get("type"); t != "" {
		q.Type = domain.PropertyType(t)
	}

	page := h.fetchAuctionsUC.Execute(r.Context(), q)

	listings := make([]AuctionListingResponse, 0, len(page.Listings))
	for _, a := range page.Listings {
		listings = append(listings, toAuctionListingResponse(a))
	}

	RespondWithJSON(w, http.StatusOK, PaginatedAuctionsResponse{
		Listings:   listings,
		Pagination: toPaginationResponse(page.Pagination),
	})
}

// GetAuctionByID handles GET /api/v1/auctions/{listingID}.
func (h *AuctionsHandler) GetAuctionByID(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingID")
	if listingID == "" {
		WriteJSONError(w, http.StatusBadRequest, "listingID is required")
		return
	}

	auction := h.fetchByIDUC.Execute(r.Context(), listingID)
	if auction == nil {
		WriteJSONError(w, http.StatusNotFound, "auction listing not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toAuctionListingResponse(*auction))
}
