package renetfetcher

import (
	"encoding/json"
	"strings"
)

// flexString accepts JSON strings and numbers. The upstream API is not
// consistent about identifier types between endpoints.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// imageDTO accepts either a bare URL string or an object with url and
// description fields. Both shapes occur in live responses.
type imageDTO struct {
	URL         string
	Description string
}

func (i *imageDTO) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		i.URL = s
		return nil
	}
	var obj struct {
		URL         string `json:"url"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	i.URL = obj.URL
	i.Description = obj.Description
	return nil
}

// categoriesDTO accepts either a single string or an array of strings.
type categoriesDTO []string

func (c *categoriesDTO) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*c = nil
			return nil
		}
		*c = []string{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*c = list
	return nil
}

type featureDTO struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Value flexString `json:"value"`
}

type addressDTO struct {
	Street         string `json:"street"`
	Suburb         string `json:"suburb"`
	State          string `json:"state"`
	Postcode       string `json:"postcode"`
	DisplayAddress string `json:"displayAddress"`
}

type inspectionTimeDTO struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type agentDTO struct {
	AgentID     flexString `json:"agentID"`
	ID          flexString `json:"id"`
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Email       string     `json:"email"`
	Mobile      string     `json:"mobile"`
	Phone       string     `json:"phone"`
	ImageURL    string     `json:"imageURL"`
	Photo       string     `json:"photo"`
	Profile     string     `json:"profile"`
	Specialties []string   `json:"specialties"`
}

type floorplanDTO struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

type listingDTO struct {
	ID              flexString          `json:"id"`
	ListingID       flexString          `json:"listingID"`
	Heading         string              `json:"heading"`
	Description     string              `json:"description"`
	Price           flexString          `json:"price"`
	DisposalMethod  string              `json:"disposalMethod"`
	Type            string              `json:"type"`
	Categories      categoriesDTO       `json:"categories"`
	AgencyID        flexString          `json:"agencyID"`
	Bedrooms        flexString          `json:"bedrooms"`
	Bathrooms       flexString          `json:"bathrooms"`
	CarSpaces       flexString          `json:"carSpaces"`
	LandSize        flexString          `json:"landSize"`
	Area            flexString          `json:"area"`
	BedBathCarLand  []featureDTO        `json:"bedBathCarLand"`
	Address         addressDTO          `json:"address"`
	Images          []imageDTO          `json:"images"`
	Floorplans      []floorplanDTO      `json:"floorplans"`
	Agents          []agentDTO          `json:"agents"`
	InspectionTimes []inspectionTimeDTO `json:"inspectionTimes"`
	DateListed      string              `json:"dateListed"`
}
