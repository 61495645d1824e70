package rest

import (
	"time"

	"listings-gateway/internal/core/domain"
)

type ImageResponse struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type FloorplanResponse struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type FeatureResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type AddressResponse struct {
	Street         string `json:"street,omitempty"`
	Suburb         string `json:"suburb,omitempty"`
	State          string `json:"state,omitempty"`
	Postcode       string `json:"postcode,omitempty"`
	DisplayAddress string `json:"displayAddress,omitempty"`
}

type InspectionTimeResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

type AgentResponse struct {
	AgentID     string   `json:"agentID"`
	Name        string   `json:"name"`
	Title       string   `json:"title,omitempty"`
	Email       string   `json:"email,omitempty"`
	Mobile      string   `json:"mobile,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	ImageURL    string   `json:"imageURL,omitempty"`
	Profile     string   `json:"profile,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}

type ListingResponse struct {
	ID              string                   `json:"id"`
	ListingID       string                   `json:"listingID"`
	Heading         string                   `json:"heading"`
	Description     string                   `json:"description,omitempty"`
	Price           string                   `json:"price"`
	DisposalMethod  string                   `json:"disposalMethod"`
	Type            string                   `json:"type,omitempty"`
	Categories      []string                 `json:"categories,omitempty"`
	AgencyID        string                   `json:"agencyID,omitempty"`
	Bedrooms        int                      `json:"bedrooms"`
	Bathrooms       int                      `json:"bathrooms"`
	CarSpaces       int                      `json:"carSpaces"`
	LandSize        float64                  `json:"landSize,omitempty"`
	Area            float64                  `json:"area,omitempty"`
	Address         AddressResponse          `json:"address"`
	Images          []ImageResponse          `json:"images,omitempty"`
	Floorplans      []FloorplanResponse      `json:"floorplans,omitempty"`
	BedBathCarLand  []FeatureResponse        `json:"bedBathCarLand,omitempty"`
	Agents          []AgentResponse          `json:"agents,omitempty"`
	InspectionTimes []InspectionTimeResponse `json:"inspectionTimes,omitempty"`
	DateListed      string                   `json:"dateListed,omitempty"`
}

type PaginationResponse struct {
	TotalResults   int  `json:"totalResults"`
	ResultsPerPage int  `json:"resultsPerPage"`
	CurrentPage    int  `json:"currentPage"`
	TotalPages     int  `json:"totalPages"`
	NextPage       *int `json:"nextPage,omitempty"`
}

type PaginatedListingsResponse struct {
	Listings   []ListingResponse  `json:"listings"`
	Pagination PaginationResponse `json:"pagination"`
}

type AuctionDetailsResponse struct {
	AuctionDate          string `json:"auctionDate,omitempty"`
	AuctionTime          string `json:"auctionTime"`
	AuctionLocation      string `json:"auctionLocation"`
	RegistrationRequired bool   `json:"registrationRequired"`
	AuctionStatus        string `json:"auctionStatus"`
	GuidePrice           string `json:"guidePrice,omitempty"`
	Auctioneer           string `json:"auctioneer"`
	Deposit              string `json:"deposit"`
	SettlementPeriod     string `json:"settlementPeriod"`
}

type AuctionListingResponse struct {
	ListingResponse
	Auction AuctionDetailsResponse `json:"auction"`
}

type PaginatedAuctionsResponse struct {
	Listings   []AuctionListingResponse `json:"listings"`
	Pagination PaginationResponse       `json:"pagination"`
}

type CategoryGroupResponse struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Categories []string `json:"categories"`
}

type CategoriesResponse struct {
	Categories []string                `json:"categories"`
	Groups     []CategoryGroupResponse `json:"groups"`
}

func toAgentResponse(a domain.Agent) AgentResponse {
	return AgentResponse{
		AgentID:     a.AgentID,
		Name:        a.Name,
		Title:       a.Title,
		Email:       a.Email,
		Mobile:      a.Mobile,
		Phone:       a.Phone,
		ImageURL:    a.ImageURL,
		Profile:     a.Profile,
		Specialties: a.Specialties,
	}
}

func toListingResponse(l domain.Listing) ListingResponse {
	resp := ListingResponse{
		ID:             l.ID,
		ListingID:      l.ListingID,
		Heading:        l.Heading,
		Description:    l.Description,
		Price:          l.Price,
		DisposalMethod: string(l.DisposalMethod),
		Type:           string(l.Type),
		Categories:     l.Categories,
		AgencyID:       l.AgencyID,
		Bedrooms:       l.Bedrooms,
		Bathrooms:      l.Bathrooms,
		CarSpaces:      l.CarSpaces,
		LandSize:       l.LandSize,
		Area:           l.Area,
		DateListed:     l.DateListed,
		Address: AddressResponse{
			Street:         l.Address.Street,
			Suburb:         l.Address.Suburb,
			State:          l.Address.State,
			Postcode:       l.Address.Postcode,
			DisplayAddress: l.Address.DisplayAddress,
		},
	}
	for _, img := range l.Images {
		resp.Images = append(resp.Images, ImageResponse{URL: img.URL, Alt: img.Alt})
	}
	for _, fp := range l.Floorplans {
		resp.Floorplans = append(resp.Floorplans, FloorplanResponse{URL: fp.URL, Description: fp.Description})
	}
	for _, f := range l.Features {
		resp.BedBathCarLand = append(resp.BedBathCarLand, FeatureResponse{Key: f.Key, Label: f.Label, Value: f.Value})
	}
	for _, a := range l.Agents {
		resp.Agents = append(resp.Agents, toAgentResponse(a))
	}
	for _, it := range l.InspectionTimes {
		resp.InspectionTimes = append(resp.InspectionTimes, InspectionTimeResponse{
			Date:      it.Date,
			StartTime: it.StartTime,
			EndTime:   it.EndTime,
		})
	}
	return resp
}

func toListingResponses(listings []domain.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	return out
}

func toPaginationResponse(p domain.Pagination) PaginationResponse {
	return PaginationResponse{
		TotalResults:   p.TotalResults,
		ResultsPerPage: p.ResultsPerPage,
		CurrentPage:    p.CurrentPage,
		TotalPages:     p.TotalPages,
		NextPage:       p.NextPage,
	}
}

func toAuctionListingResponse(a domain.AuctionListing) AuctionListingResponse {
	details := AuctionDetailsResponse{
		AuctionTime:          a.Auction.AuctionTime,
		AuctionLocation:      a.Auction.AuctionLocation,
		RegistrationRequired: a.Auction.RegistrationRequired,
		AuctionStatus:        string(a.Auction.AuctionStatus),
		GuidePrice:           a.Auction.GuidePrice,
		Auctioneer:           a.Auction.Auctioneer,
		Deposit:              a.Auction.Deposit,
		SettlementPeriod:     a.Auction.SettlementPeriod,
	}
	if !a.Auction.AuctionDate.IsZero() {
		details.AuctionDate = a.Auction.AuctionDate.Format(time.RFC3339)
	}
	return AuctionListingResponse{
		ListingResponse: toListingResponse(a.Listing),
		Auction:         details,
	}
}
