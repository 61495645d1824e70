package renetfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gocolly/colly/v2"

	"listings-gateway/internal/constants"
	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
)

func (a *RenetFetcherAdapter) buildListingsURL(q domain.UpstreamQuery) (string, error) {
	u, err := url.Parse(a.baseURL + constants.PathListings)
	if err != nil {
		return "", err
	}

	values := u.Query()
	if q.Page > 0 {
		values.Set(constants.ParamPage, strconv.Itoa(q.Page))
	}
	if q.ResultsPerPage > 0 {
		values.Set(constants.ParamResultsPerPage, strconv.Itoa(q.ResultsPerPage))
	}
	if q.DisposalMethod != "" {
		values.Set(constants.ParamDisposalMethod, string(q.DisposalMethod))
	}
	if q.Suburb != "" {
		values.Set(constants.ParamSuburb, q.Suburb)
	}
	if q.MinPrice > 0 {
		values.Set(constants.ParamMinPrice, strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		values.Set(constants.ParamMaxPrice, strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}
	if q.Bedrooms > 0 {
		values.Set(constants.ParamBedrooms, strconv.Itoa(q.Bedrooms))
	}
	if q.Bathrooms > 0 {
		values.Set(constants.ParamBathrooms, strconv.Itoa(q.Bathrooms))
	}
	if q.PropertyType != "" {
		values.Set(constants.ParamPropertyType, q.PropertyType)
	}
	if q.AgentID != "" {
		values.Set(constants.ParamAgentID, q.AgentID)
	}
	if q.Category != "" {
		values.Set(constants.ParamCategory, q.Category)
	}
	if q.OrderBy != "" {
		values.Set(constants.ParamOrderBy, q.OrderBy)
		values.Set(constants.ParamOrderDirection, q.OrderDirection)
	}

	u.RawQuery = values.Encode()
	return u.String(), nil
}

// fetchResult is what one upstream round trip produces: the raw body plus
// the response headers carrying pagination metadata.
type fetchResult struct {
	body       []byte
	headers    http.Header
	statusCode int
}

// fetchWithRetry visits targetURL with a bounded retry loop. Each attempt
// uses a fresh clone so handlers never leak between requests. A 404 is
// returned as a result, not an error, so callers can map it to "not found".
func (a *RenetFetcherAdapter) fetchWithRetry(ctx context.Context, targetURL string) (*fetchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= a.opts.RetryAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		collector := a.newCollector()

		var result *fetchResult
		var responseErr error

		collector.OnResponse(func(r *colly.Response) {
			headers := http.Header{}
			if r.Headers != nil {
				headers = *r.Headers
			}
			result = &fetchResult{body: r.Body, headers: headers, statusCode: r.StatusCode}
		})
		collector.OnError(func(r *colly.Response, err error) {
			if r.StatusCode == http.StatusNotFound {
				result = &fetchResult{statusCode: r.StatusCode}
				return
			}
			responseErr = fmt.Errorf("renet adapter: request to %s failed with status %d: %w", r.Request.URL, r.StatusCode, err)
		})

		if err := collector.Visit(targetURL); err != nil {
			responseErr = fmt.Errorf("renet adapter: failed to visit %s: %w", targetURL, err)
		}
		collector.Wait()

		if responseErr == nil && result != nil {
			return result, nil
		}
		lastErr = responseErr

		if attempt < a.opts.RetryAttempts {
			logger.Warn("upstream request failed, retrying", port.Fields{
				"url":     targetURL,
				"attempt": attempt,
				"error":   fmt.Sprint(responseErr),
			})
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(a.opts.RetryBackoff * time.Duration(attempt)):
			}
		}
	}
	return nil, lastErr
}

func headerInt(h http.Header, key string) (int, bool) {
	v := h.Get(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// paginationFromHeaders reads the X-total* response headers, falling back to
// values derived from the request and the returned page size when a header
// is missing.
func paginationFromHeaders(h http.Header, q domain.UpstreamQuery, got int) domain.Pagination {
	p := domain.Pagination{
		TotalResults:   got,
		ResultsPerPage: q.ResultsPerPage,
		CurrentPage:    q.Page,
		TotalPages:     1,
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.ResultsPerPage < 1 {
		p.ResultsPerPage = got
	}

	if n, ok := headerInt(h, constants.HeaderTotalResults); ok {
		p.TotalResults = n
	}
	if n, ok := headerInt(h, constants.HeaderResultsPerPage); ok {
		p.ResultsPerPage = n
	}
	if n, ok := headerInt(h, constants.HeaderCurrentPage); ok {
		p.CurrentPage = n
	}
	if n, ok := headerInt(h, constants.HeaderTotalPages); ok {
		p.TotalPages = n
	} else if p.ResultsPerPage > 0 {
		p.TotalPages = (p.TotalResults + p.ResultsPerPage - 1) / p.ResultsPerPage
		if p.TotalPages < 1 {
			p.TotalPages = 1
		}
	}
	if n, ok := headerInt(h, constants.HeaderNextPage); ok && n > p.CurrentPage {
		p.NextPage = &n
	} else if p.CurrentPage < p.TotalPages {
		next := p.CurrentPage + 1
		p.NextPage = &next
	}
	return p
}

// FetchListingsPage retrieves one page of listings from the upstream API.
func (a *RenetFetcherAdapter) FetchListingsPage(ctx context.Context, q domain.UpstreamQuery) (*domain.ListingsPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	targetURL, err := a.buildListingsURL(q)
	if err != nil {
		return nil, fmt.Errorf("renet adapter: failed to build listings URL: %w", err)
	}

	result, err := a.fetchWithRetry(ctx, targetURL)
	if err != nil {
		return nil, err
	}
	if result.statusCode == http.StatusNotFound {
		return &domain.ListingsPage{Listings: []domain.Listing{}, Pagination: paginationFromHeaders(http.Header{}, q, 0)}, nil
	}

	var dtos []listingDTO
	if err := json.Unmarshal(result.body, &dtos); err != nil {
		return nil, fmt.Errorf("renet adapter: failed to decode listings page %s: %w", targetURL, err)
	}

	listings := make([]domain.Listing, 0, len(dtos))
	for _, dto := range dtos {
		listings = append(listings, a.mapListing(dto))
	}

	page := &domain.ListingsPage{
		Listings:   listings,
		Pagination: paginationFromHeaders(result.headers, q, len(listings)),
	}

	logger.Debug("fetched upstream listings page", port.Fields{
		"url":           targetURL,
		"listings":      len(listings),
		"total_results": page.Pagination.TotalResults,
		"total_pages":   page.Pagination.TotalPages,
	})
	return page, nil
}

// FetchListingByID retrieves a single listing. A missing listing is not an
// error: the result is (nil, nil).
func (a *RenetFetcherAdapter) FetchListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	targetURL := a.baseURL + constants.PathListings + "/" + url.PathEscape(id)

	result, err := a.fetchWithRetry(ctx, targetURL)
	if err != nil {
		return nil, err
	}
	if result.statusCode == http.StatusNotFound {
		return nil, nil
	}

	var dto listingDTO
	if err := json.Unmarshal(result.body, &dto); err != nil {
		// Some deployments wrap single records in a one-element array.
		var dtos []listingDTO
		if arrErr := json.Unmarshal(result.body, &dtos); arrErr != nil || len(dtos) == 0 {
			return nil, fmt.Errorf("renet adapter: failed to decode listing %s: %w", id, err)
		}
		dto = dtos[0]
	}

	listing := a.mapListing(dto)
	if listing.Key() == "" {
		return nil, nil
	}
	return &listing, nil
}
