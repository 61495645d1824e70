package usecase

import (
	"context"
	"strings"

	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
)

// GatewayOptions is the injected per-process configuration of the gateway.
// It is constructed once at startup and never read from ambient state, so
// tests can substitute a fixture configuration.
type GatewayOptions struct {
	// AgencyID and AgencyAgents restrict results to the agency's own
	// stock: a listing passes when its agencyID matches, or when one of
	// its agents' names contains an allow-listed name. Both empty means
	// no agency filtering.
	AgencyID     string
	AgencyAgents []string

	DefaultPageSize int
	MaxPageSize     int

	// MaxFetchPages caps the candidate-set loop so a lying upstream
	// pagination header cannot cause an unbounded crawl.
	MaxFetchPages int
}

func (o GatewayOptions) withDefaults() GatewayOptions {
	if o.DefaultPageSize <= 0 {
		o.DefaultPageSize = 12
	}
	if o.MaxPageSize <= 0 {
		o.MaxPageSize = 100
	}
	if o.MaxFetchPages <= 0 {
		o.MaxFetchPages = 10
	}
	return o
}

// FetchListingsIndexUseCase fetches pages of listings from the upstream
// API, applies the local post-filtering the upstream cannot perform,
// deduplicates, and re-paginates the filtered result set.
type FetchListingsIndexUseCase struct {
	source     port.ListingsSourcePort
	heuristics *domain.KeywordHeuristics
	opts       GatewayOptions
}

func NewFetchListingsIndexUseCase(source port.ListingsSourcePort, heuristics *domain.KeywordHeuristics, opts GatewayOptions) *FetchListingsIndexUseCase {
	if heuristics == nil {
		heuristics = domain.DefaultKeywordHeuristics()
	}
	return &FetchListingsIndexUseCase{
		source:     source,
		heuristics: heuristics,
		opts:       opts.withDefaults(),
	}
}

// Execute assembles one page of the listings index. It never fails: any
// upstream error degrades to an empty page with zeroed pagination.
func (uc *FetchListingsIndexUseCase) Execute(ctx context.Context, params domain.FetchListingsParams) *domain.ListingsPage {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":        "FetchListingsIndex",
		"disposal_method": string(params.DisposalMethod),
	})

	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.ResultsPerPage
	if perPage <= 0 {
		perPage = uc.opts.DefaultPageSize
	}

	catResult := domain.ValidateAndNormalizeCategories(params.Categories)
	if catResult.HasErrors {
		logger.Warn("Dropping unrecognized category filters", port.Fields{
			"invalid": catResult.Invalid,
			"detail":  catResult.Message,
		})
	}

	if !params.FetchAll && !params.RequiresLocalFiltering() {
		// Cheap path: no local correction needed, trust upstream
		// pagination directly.
		return uc.fetchUpstreamPage(ctx, logger, params, catResult.Valid, page, perPage)
	}

	candidates := uc.candidateSet(ctx, logger, params, catResult.Valid)
	filtered := uc.applyLocalFilters(ctx, logger, candidates, params, catResult.Valid)
	result := domain.PaginateListings(filtered, page, perPage)

	logger.Info("Listings index assembled", port.Fields{
		"candidates":    len(candidates),
		"after_filters": len(filtered),
		"page":          page,
		"items_on_page": len(result.Listings),
	})
	return result
}

// CandidateSet returns the full filtered, deduplicated set without
// pagination. Derived views (auctions, open homes) consume this.
func (uc *FetchListingsIndexUseCase) CandidateSet(ctx context.Context, params domain.FetchListingsParams) []domain.Listing {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":        "FetchListingsIndex",
		"disposal_method": string(params.DisposalMethod),
	})
	catResult := domain.ValidateAndNormalizeCategories(params.Categories)
	if catResult.HasErrors {
		logger.Warn("Dropping unrecognized category filters", port.Fields{
			"invalid": catResult.Invalid,
			"detail":  catResult.Message,
		})
	}
	candidates := uc.candidateSet(ctx, logger, params, catResult.Valid)
	return uc.applyLocalFilters(ctx, logger, candidates, params, catResult.Valid)
}

// fetchUpstreamPage is the pass-through path used by pages that do not need
// the type-correction heuristic (sold listings, plain rent/sale indexes).
func (uc *FetchListingsIndexUseCase) fetchUpstreamPage(ctx context.Context, logger port.LoggerPort, params domain.FetchListingsParams, categories []domain.PropertyCategory, page, perPage int) *domain.ListingsPage {
	q := uc.buildUpstreamQuery(params, categories, page, perPage)
	res, err := uc.source.FetchListingsPage(ctx, q)
	if err != nil {
		logger.Error("Upstream fetch failed, returning empty result set", err, port.Fields{"page": page})
		return domain.EmptyListingsPage(page, perPage)
	}

	listings := domain.DedupeListings(uc.filterToAgency(res.Listings))
	pagination := res.Pagination
	if pagination.CurrentPage == 0 {
		pagination.CurrentPage = page
	}
	if pagination.ResultsPerPage == 0 {
		pagination.ResultsPerPage = perPage
	}
	logger.Debug("Upstream page passed through", port.Fields{
		"items_on_page": len(listings),
		"total_results": pagination.TotalResults,
	})
	return &domain.ListingsPage{Listings: listings, Pagination: pagination}
}

// candidateSet retrieves the unfiltered superset page by page, up to the
// safety ceiling. A failure mid-loop keeps what was already fetched; a
// failure on the first page yields an empty set.
func (uc *FetchListingsIndexUseCase) candidateSet(ctx context.Context, logger port.LoggerPort, params domain.FetchListingsParams, categories []domain.PropertyCategory) []domain.Listing {
	var all []domain.Listing

	for currentPage := 1; currentPage <= uc.opts.MaxFetchPages; currentPage++ {
		q := uc.buildUpstreamQuery(params, categories, currentPage, uc.opts.MaxPageSize)
		res, err := uc.source.FetchListingsPage(ctx, q)
		if err != nil {
			logger.Error("Upstream fetch failed while building candidate set", err, port.Fields{
				"page":           currentPage,
				"fetched_so_far": len(all),
			})
			break
		}
		if len(res.Listings) == 0 {
			break
		}
		all = append(all, uc.filterToAgency(res.Listings)...)

		if res.Pagination.TotalPages > 0 && currentPage >= res.Pagination.TotalPages {
			break
		}
		if res.Pagination.TotalPages == 0 && res.Pagination.NextPage == nil {
			break
		}
	}
	return all
}

func (uc *FetchListingsIndexUseCase) applyLocalFilters(ctx context.Context, logger port.LoggerPort, listings []domain.Listing, params domain.FetchListingsParams, categories []domain.PropertyCategory) []domain.Listing {
	filtered := listings
	if params.Type != "" {
		filtered = uc.filterByType(logger, filtered, params.Type)
	}
	if len(categories) > 0 {
		filtered = filterByCategories(filtered, categories)
	}
	filtered = filterByPriceRange(filtered, params.MinPrice, params.MaxPrice)
	return domain.DedupeListings(filtered)
}

// filterByType keeps records whose type field equals the requested type.
// For commercial requests a second stage excludes records whose free text
// carries residential indicators even when the type field claims
// Commercial: a soft correction against upstream misclassification, logged
// per exclusion for later audit.
func (uc *FetchListingsIndexUseCase) filterByType(logger port.LoggerPort, listings []domain.Listing, requested domain.PropertyType) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Type != requested {
			continue
		}
		if requested == domain.PropertyTypeCommercial {
			if kw, ok := uc.heuristics.MatchedResidentialIndicator(l); ok {
				logger.Warn("Excluding likely residential property from commercial results", port.Fields{
					"listing_id": l.Key(),
					"heading":    l.Heading,
					"indicator":  kw,
				})
				continue
			}
		}
		out = append(out, l)
	}
	return out
}

func filterByCategories(listings []domain.Listing, categories []domain.PropertyCategory) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if listingMatchesAnyCategory(l, categories) {
			out = append(out, l)
		}
	}
	return out
}

func listingMatchesAnyCategory(l domain.Listing, categories []domain.PropertyCategory) bool {
	if len(l.Categories) == 0 {
		return false
	}
	for _, want := range categories {
		for _, have := range l.Categories {
			if strings.Contains(strings.ToLower(have), strings.ToLower(string(want))) {
				return true
			}
		}
	}
	return false
}

// filterByPriceRange compares the numeric part of the free-text price
// against the requested bounds. Unparseable prices ("Contact Agent",
// "Auction") pass the filter rather than failing it.
func filterByPriceRange(listings []domain.Listing, minPrice, maxPrice float64) []domain.Listing {
	if minPrice <= 0 && maxPrice <= 0 {
		return listings
	}
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		value, ok := domain.ParsePriceValue(l.Price)
		if !ok {
			out = append(out, l)
			continue
		}
		if minPrice > 0 && value < minPrice {
			continue
		}
		if maxPrice > 0 && value > maxPrice {
			continue
		}
		out = append(out, l)
	}
	return out
}

// filterToAgency keeps listings belonging to the configured agency, either
// by agency id or by agent-name allow-list. With no agency configured the
// upstream result is passed through untouched.
func (uc *FetchListingsIndexUseCase) filterToAgency(listings []domain.Listing) []domain.Listing {
	if uc.opts.AgencyID == "" && len(uc.opts.AgencyAgents) == 0 {
		return listings
	}
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if uc.opts.AgencyID != "" && l.AgencyID == uc.opts.AgencyID {
			out = append(out, l)
			continue
		}
		if uc.listingHasAllowedAgent(l) {
			out = append(out, l)
		}
	}
	return out
}

func (uc *FetchListingsIndexUseCase) listingHasAllowedAgent(l domain.Listing) bool {
	for _, agent := range l.Agents {
		name := strings.ToLower(agent.Name)
		for _, allowed := range uc.opts.AgencyAgents {
			if allowed != "" && strings.Contains(name, strings.ToLower(allowed)) {
				return true
			}
		}
	}
	return false
}

func (uc *FetchListingsIndexUseCase) buildUpstreamQuery(params domain.FetchListingsParams, categories []domain.PropertyCategory, page, perPage int) domain.UpstreamQuery {
	var sanitized []string
	for _, c := range categories {
		if token, ok := domain.SanitizeCategoryForAPI(string(c)); ok {
			sanitized = append(sanitized, token)
		}
	}

	orderBy := params.OrderBy
	if orderBy == "" {
		orderBy = "dateListed"
	}
	orderDirection := params.OrderDirection
	if orderDirection == "" {
		orderDirection = "desc"
	}

	return domain.UpstreamQuery{
		Page:           page,
		ResultsPerPage: perPage,
		DisposalMethod: params.DisposalMethod,
		Suburb:         params.Suburb,
		MinPrice:       params.MinPrice,
		MaxPrice:       params.MaxPrice,
		Bedrooms:       params.Bedrooms,
		Bathrooms:      params.Bathrooms,
		PropertyType:   params.PropertyType,
		AgentID:        params.AgentID,
		Category:       strings.Join(sanitized, ","),
		OrderBy:        orderBy,
		OrderDirection: orderDirection,
	}
}
