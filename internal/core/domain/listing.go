package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DisposalMethod is the transaction state of a listing as exposed upstream.
type DisposalMethod string

const (
	DisposalForSale DisposalMethod = "forSale"
	DisposalForRent DisposalMethod = "forRent"
	DisposalSold    DisposalMethod = "sold"

	// DisposalAuction is derived locally by the auction detector.
	// The upstream API has no native auction disposal method.
	DisposalAuction DisposalMethod = "auction"
)

// ParseDisposalMethod maps a query-string value onto a known disposal method.
func ParseDisposalMethod(s string) (DisposalMethod, bool) {
	switch DisposalMethod(s) {
	case DisposalForSale, DisposalForRent, DisposalSold:
		return DisposalMethod(s), true
	}
	return "", false
}

// PropertyType is the coarse upstream classification of a listing.
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "Residential"
	PropertyTypeCommercial  PropertyType = "Commercial"
	PropertyTypeLand        PropertyType = "Land"
)

type Image struct {
	URL string
	Alt string
}

type Floorplan struct {
	URL         string
	Description string
}

// Feature is one entry of the bedBathCarLand list the upstream API
// sometimes returns instead of discrete attribute fields.
type Feature struct {
	Key   string
	Label string
	Value string
}

type Address struct {
	Street         string
	Suburb         string
	State          string
	Postcode       string
	DisplayAddress string
}

type InspectionTime struct {
	Date      string
	StartTime string
	EndTime   string
}

type Agent struct {
	AgentID     string
	Name        string
	Title       string
	Email       string
	Mobile      string
	Phone       string
	ImageURL    string
	Profile     string
	Specialties []string
}

// Listing is the canonical local shape of one upstream property record.
// After mapping, both the flat attribute fields and the Features list are
// always populated regardless of which shape the upstream response used.
type Listing struct {
	ID             string
	ListingID      string
	Heading        string
	Description    string
	Price          string // free text: "$650,000", "Auction", "Contact Agent", ...
	DisposalMethod DisposalMethod
	Type           PropertyType
	Categories     []string
	AgencyID       string

	Bedrooms  int
	Bathrooms int
	CarSpaces int
	LandSize  float64
	Area      float64

	Address         Address
	Images          []Image
	Floorplans      []Floorplan
	Features        []Feature
	Agents          []Agent
	InspectionTimes []InspectionTime
	DateListed      string
}

// Key returns the identity used for deduplication.
func (l Listing) Key() string {
	if l.ListingID != "" {
		return l.ListingID
	}
	return l.ID
}

// SearchBlob is the lower-cased free text scanned by the keyword heuristics:
// heading, description, display address and category tags.
func (l Listing) SearchBlob() string {
	var b strings.Builder
	b.WriteString(l.Heading)
	b.WriteString(" ")
	b.WriteString(l.Description)
	b.WriteString(" ")
	b.WriteString(l.Address.DisplayAddress)
	for _, c := range l.Categories {
		b.WriteString(" ")
		b.WriteString(c)
	}
	return strings.ToLower(b.String())
}

// HasOpenHome reports whether the upstream payload carried at least one
// inspection time. This is the only signal used for the open-homes view;
// availability is never sampled or guessed.
func (l Listing) HasOpenHome() bool {
	return len(l.InspectionTimes) > 0
}

type Pagination struct {
	TotalResults   int
	ResultsPerPage int
	CurrentPage    int
	TotalPages     int
	NextPage       *int
}

type ListingsPage struct {
	Listings   []Listing
	Pagination Pagination
}

// FetchListingsParams is the gateway's query contract. Zero values mean
// "not filtered". Type is advisory only: the upstream API does not honor
// it, so requesting a type forces local re-filtering.
type FetchListingsParams struct {
	DisposalMethod DisposalMethod
	Type           PropertyType
	Suburb         string
	MinPrice       float64
	MaxPrice       float64
	Bedrooms       int
	Bathrooms      int
	PropertyType   string
	AgentID        string
	Categories     []string

	Page           int
	ResultsPerPage int
	OrderBy        string
	OrderDirection string

	// FetchAll forces retrieval of the full candidate set before
	// pagination, up to the configured safety ceiling.
	FetchAll bool
}

// RequiresLocalFiltering reports whether any requested predicate cannot be
// trusted to the upstream API and therefore needs the candidate-set path.
func (p FetchListingsParams) RequiresLocalFiltering() bool {
	return p.Type != "" || len(p.Categories) > 0 || p.MinPrice > 0 || p.MaxPrice > 0
}

// UpstreamQuery is the subset of parameters actually sent upstream,
// one logical page at a time.
type UpstreamQuery struct {
	Page           int
	ResultsPerPage int
	DisposalMethod DisposalMethod
	Suburb         string
	MinPrice       float64
	MaxPrice       float64
	Bedrooms       int
	Bathrooms      int
	PropertyType   string
	AgentID        string
	Category       string
	OrderBy        string
	OrderDirection string
}

var priceValueRe = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// ParsePriceValue extracts the first numeric value from a free-text price.
// The second return is false for prices like "Contact Agent" that carry no
// number; callers must treat those as passing any price filter.
func ParsePriceValue(price string) (float64, bool) {
	match := priceValueRe.FindString(price)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// DedupeListings removes repeated records by listing identity, keeping the
// first occurrence. The upstream API has been observed to return the same
// listing on more than one page when over-fetched.
func DedupeListings(in []Listing) []Listing {
	seen := make(map[string]struct{}, len(in))
	out := make([]Listing, 0, len(in))
	for _, l := range in {
		key := l.Key()
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	return out
}

// SlicePage computes slice bounds and pagination metadata for a filtered
// set of the given size: start = (page-1)*perPage, totalPages = ceil(n/perPage).
func SlicePage(total, page, perPage int) (start, end int, p Pagination) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages < 1 {
		totalPages = 1
	}
	start = (page - 1) * perPage
	end = start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	p = Pagination{
		TotalResults:   total,
		ResultsPerPage: perPage,
		CurrentPage:    page,
		TotalPages:     totalPages,
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	return start, end, p
}

// PaginateListings slices a filtered, deduplicated set into one page.
func PaginateListings(listings []Listing, page, perPage int) *ListingsPage {
	start, end, p := SlicePage(len(listings), page, perPage)
	return &ListingsPage{Listings: listings[start:end], Pagination: p}
}

// EmptyListingsPage is the degraded result every public read entry point
// falls back to on upstream failure.
func EmptyListingsPage(page, perPage int) *ListingsPage {
	_, _, p := SlicePage(0, page, perPage)
	return &ListingsPage{Listings: []Listing{}, Pagination: p}
}

// CleanHeading strips duplicated agency branding from a listing heading.
func CleanHeading(heading string, brands []string) string {
	cleaned := heading
	for _, brand := range brands {
		if brand == "" {
			continue
		}
		for {
			idx := strings.Index(strings.ToLower(cleaned), strings.ToLower(brand))
			if idx < 0 {
				break
			}
			cleaned = cleaned[:idx] + cleaned[idx+len(brand):]
		}
	}
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = strings.Trim(cleaned, " -")
	if cleaned == "" {
		return heading
	}
	return cleaned
}
