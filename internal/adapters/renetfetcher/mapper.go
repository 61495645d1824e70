package renetfetcher

import (
	"strconv"
	"strings"

	"listings-gateway/internal/core/domain"
)

// upgradeURL rewrites plain http image links to https. The upstream CDN
// serves both, but mixed content breaks consumers behind TLS.
func upgradeURL(u string) string {
	if strings.HasPrefix(u, "http://") {
		return "https://" + strings.TrimPrefix(u, "http://")
	}
	return u
}

func numToInt(n string) int {
	if n == "" {
		return 0
	}
	v, err := strconv.Atoi(n)
	if err != nil {
		f, ferr := strconv.ParseFloat(n, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return v
}

func numToFloat(n string) float64 {
	if n == "" {
		return 0
	}
	v, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return 0
	}
	return v
}

// featureLookup pulls one value out of the bedBathCarLand list by key,
// matching case-insensitively on both key and label.
func featureLookup(features []featureDTO, key string) string {
	for _, f := range features {
		if strings.EqualFold(f.Key, key) || strings.EqualFold(f.Label, key) {
			return string(f.Value)
		}
	}
	return ""
}

func (a *RenetFetcherAdapter) mapAgent(dto agentDTO) domain.Agent {
	id := string(dto.AgentID)
	if id == "" {
		id = string(dto.ID)
	}
	image := dto.ImageURL
	if image == "" {
		image = dto.Photo
	}
	return domain.Agent{
		AgentID:     id,
		Name:        dto.Name,
		Title:       dto.Title,
		Email:       dto.Email,
		Mobile:      dto.Mobile,
		Phone:       dto.Phone,
		ImageURL:    upgradeURL(image),
		Profile:     dto.Profile,
		Specialties: dto.Specialties,
	}
}

// mapListing converts one upstream record into the canonical domain shape.
// Attribute counts arrive either as flat fields or as a bedBathCarLand
// feature list depending on the endpoint; after mapping both views are
// populated so downstream code never has to care which one was sent.
func (a *RenetFetcherAdapter) mapListing(dto listingDTO) domain.Listing {
	l := domain.Listing{
		ID:             string(dto.ID),
		ListingID:      string(dto.ListingID),
		Heading:        domain.CleanHeading(dto.Heading, a.opts.BrandNames),
		Description:    dto.Description,
		Price:          string(dto.Price),
		DisposalMethod: domain.DisposalMethod(dto.DisposalMethod),
		Type:           domain.PropertyType(dto.Type),
		Categories:     dto.Categories,
		AgencyID:       string(dto.AgencyID),
		Bedrooms:       numToInt(string(dto.Bedrooms)),
		Bathrooms:      numToInt(string(dto.Bathrooms)),
		CarSpaces:      numToInt(string(dto.CarSpaces)),
		LandSize:       numToFloat(string(dto.LandSize)),
		Area:           numToFloat(string(dto.Area)),
		DateListed:     dto.DateListed,
		Address: domain.Address{
			Street:         dto.Address.Street,
			Suburb:         dto.Address.Suburb,
			State:          dto.Address.State,
			Postcode:       dto.Address.Postcode,
			DisplayAddress: dto.Address.DisplayAddress,
		},
	}
	if l.ID == "" {
		l.ID = l.ListingID
	}
	if l.ListingID == "" {
		l.ListingID = l.ID
	}

	if l.Bedrooms == 0 {
		l.Bedrooms = numToInt(featureLookup(dto.BedBathCarLand, "bedrooms"))
	}
	if l.Bathrooms == 0 {
		l.Bathrooms = numToInt(featureLookup(dto.BedBathCarLand, "bathrooms"))
	}
	if l.CarSpaces == 0 {
		l.CarSpaces = numToInt(featureLookup(dto.BedBathCarLand, "carSpaces"))
	}
	if l.LandSize == 0 {
		l.LandSize = numToFloat(featureLookup(dto.BedBathCarLand, "landSize"))
	}

	for _, f := range dto.BedBathCarLand {
		l.Features = append(l.Features, domain.Feature{Key: f.Key, Label: f.Label, Value: string(f.Value)})
	}
	if len(l.Features) == 0 {
		l.Features = synthesizeFeatures(l)
	}

	for _, img := range dto.Images {
		if img.URL == "" {
			continue
		}
		l.Images = append(l.Images, domain.Image{URL: upgradeURL(img.URL), Alt: img.Description})
	}
	for _, fp := range dto.Floorplans {
		if fp.URL == "" {
			continue
		}
		l.Floorplans = append(l.Floorplans, domain.Floorplan{URL: upgradeURL(fp.URL), Description: fp.Description})
	}
	for _, ag := range dto.Agents {
		l.Agents = append(l.Agents, a.mapAgent(ag))
	}
	for _, it := range dto.InspectionTimes {
		l.InspectionTimes = append(l.InspectionTimes, domain.InspectionTime{
			Date:      it.Date,
			StartTime: it.StartTime,
			EndTime:   it.EndTime,
		})
	}
	return l
}

// synthesizeFeatures rebuilds the feature list from the flat fields when the
// upstream response omitted bedBathCarLand.
func synthesizeFeatures(l domain.Listing) []domain.Feature {
	var out []domain.Feature
	if l.Bedrooms > 0 {
		out = append(out, domain.Feature{Key: "bedrooms", Label: "Bedrooms", Value: strconv.Itoa(l.Bedrooms)})
	}
	if l.Bathrooms > 0 {
		out = append(out, domain.Feature{Key: "bathrooms", Label: "Bathrooms", Value: strconv.Itoa(l.Bathrooms)})
	}
	if l.CarSpaces > 0 {
		out = append(out, domain.Feature{Key: "carSpaces", Label: "Car Spaces", Value: strconv.Itoa(l.CarSpaces)})
	}
	if l.LandSize > 0 {
		out = append(out, domain.Feature{Key: "landSize", Label: "Land Size", Value: strconv.FormatFloat(l.LandSize, 'f', -1, 64)})
	}
	return out
}
