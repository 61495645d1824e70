package domain

import (
	"regexp"
	"strings"
	"time"
)

type AuctionStatus string

const (
	AuctionStatusUpcoming      AuctionStatus = "upcoming"
	AuctionStatusInProgress    AuctionStatus = "inProgress"
	AuctionStatusSoldAtAuction AuctionStatus = "soldAtAuction"
	AuctionStatusPassedIn      AuctionStatus = "passedIn"
	AuctionStatusWithdrawn     AuctionStatus = "withdrawn"
)

// AuctionDetails is synthesized locally; no such record exists upstream.
// Fields that cannot be extracted from the listing's free text are
// defaulted. AuctionDate stays zero when no date is extractable so callers
// can tell a synthesized unknown from an extracted value.
type AuctionDetails struct {
	AuctionDate          time.Time
	AuctionTime          string
	AuctionLocation      string
	RegistrationRequired bool
	AuctionStatus        AuctionStatus
	GuidePrice           string
	Auctioneer           string
	Deposit              string
	SettlementPeriod     string
}

// AuctionListing is a listing reclassified as an auction, with its disposal
// method overridden and synthetic auction metadata attached.
type AuctionListing struct {
	Listing
	Auction AuctionDetails
}

var (
	auctionDateRe = regexp.MustCompile(`(?i)auction[:\s]+(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`)
	auctionTimeRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s?(?:am|pm))`)
)

// day-first layouts, as the upstream listings are Australian
var auctionDateLayouts = []string{"2/1/2006", "2/1/06"}

// ExtractAuctionDetails builds auction metadata from a listing's free text.
func ExtractAuctionDetails(l Listing) AuctionDetails {
	details := AuctionDetails{
		AuctionTime:          "TBA",
		AuctionLocation:      "On Site",
		RegistrationRequired: true,
		AuctionStatus:        AuctionStatusUpcoming,
		Auctioneer:           "TBA",
		Deposit:              "10% of purchase price",
		SettlementPeriod:     "30 days",
	}

	if m := auctionDateRe.FindStringSubmatch(l.Description); m != nil {
		raw := strings.ReplaceAll(m[1], "-", "/")
		for _, layout := range auctionDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				details.AuctionDate = t
				break
			}
		}
	}
	if m := auctionTimeRe.FindStringSubmatch(l.Description); m != nil {
		details.AuctionTime = m[1]
	}
	if strings.Contains(l.Price, "$") {
		details.GuidePrice = l.Price
	}
	return details
}

// NewAuctionListing reclassifies a listing as an auction.
func NewAuctionListing(l Listing) AuctionListing {
	l.DisposalMethod = DisposalAuction
	return AuctionListing{Listing: l, Auction: ExtractAuctionDetails(l)}
}

type AuctionPage struct {
	Listings   []AuctionListing
	Pagination Pagination
}

// PaginateAuctions slices a classified auction set into one page.
func PaginateAuctions(listings []AuctionListing, page, perPage int) *AuctionPage {
	start, end, p := SlicePage(len(listings), page, perPage)
	return &AuctionPage{Listings: listings[start:end], Pagination: p}
}

// EmptyAuctionPage is the degraded auction result on upstream failure.
func EmptyAuctionPage(page, perPage int) *AuctionPage {
	_, _, p := SlicePage(0, page, perPage)
	return &AuctionPage{Listings: []AuctionListing{}, Pagination: p}
}
