package rest

import (
	"net/http"

	"listings-gateway/internal/core/domain"
)

type CategoriesHandler struct{}

func NewCategoriesHandler() *CategoriesHandler {
	return &CategoriesHandler{}
}

// GetCategories handles GET /api/v1/categories. The category vocabulary is
// fixed, so the response is computed without touching the upstream API.
func (h *CategoriesHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories := domain.AllCategories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}

	groups := domain.CategoryGroups()
	groupResponses := make([]CategoryGroupResponse, 0, len(groups))
	for _, g := range groups {
		members := make([]string, 0, len(g.Categories))
		for _, c := range g.Categories {
			members = append(members, string(c))
		}
		groupResponses = append(groupResponses, CategoryGroupResponse{
			Key:        g.Key,
			Label:      g.Label,
			Categories: members,
		})
	}

	RespondWithJSON(w, http.StatusOK, CategoriesResponse{
		Categories: names,
		Groups:     groupResponses,
	})
}
