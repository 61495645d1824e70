package constants

// Endpoint paths of the upstream listings API.
const (
	PathListings = "/Website/Listings"
	PathAgents   = "/Website/Agents"
)

// Query parameters the upstream listings API honors. The property type
// filter is deliberately absent: upstream accepts a "type" parameter but
// does not apply it, so type filtering happens locally.
const (
	ParamPage           = "page"
	ParamResultsPerPage = "resultsPerPage"
	ParamDisposalMethod = "disposalMethod"
	ParamOrderBy        = "orderBy"
	ParamOrderDirection = "orderDirection"
	ParamSuburb         = "suburb"
	ParamMinPrice       = "minPrice"
	ParamMaxPrice       = "maxPrice"
	ParamBedrooms       = "bedrooms"
	ParamBathrooms      = "bathrooms"
	ParamCategory       = "category"
	ParamPropertyType   = "propertyType"
	ParamAgentID        = "agentID"
)

// Pagination response headers. Header lookup is case-insensitive, but the
// upstream has been observed sending both X- and x- spellings.
const (
	HeaderTotalResults   = "X-totalResults"
	HeaderResultsPerPage = "X-resultsPerPage"
	HeaderCurrentPage    = "X-currentPage"
	HeaderTotalPages     = "X-totalPages"
	HeaderNextPage       = "X-NextPage"
)
