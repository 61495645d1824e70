package domain

import (
	"fmt"
	"strings"
)

// PropertyCategory is the closed set of approved property categories.
// Any category string arriving from a query parameter or the upstream API
// must be validated against this set before being used to filter.
type PropertyCategory string

const (
	CategoryLand              PropertyCategory = "Land"
	CategoryHouse             PropertyCategory = "House"
	CategoryTownhouse         PropertyCategory = "Townhouse"
	CategoryUnit              PropertyCategory = "Unit"
	CategoryVilla             PropertyCategory = "Villa"
	CategoryApartment         PropertyCategory = "Apartment"
	CategoryPenthouse         PropertyCategory = "Penthouse"
	CategoryAcerage           PropertyCategory = "Acerage"
	CategoryStudio            PropertyCategory = "Studio"
	CategoryHouseAndLand      PropertyCategory = "House and Land"
	CategoryDuplex            PropertyCategory = "Duplex"
	CategoryTerrace           PropertyCategory = "Terrace"
	CategoryServicedApartment PropertyCategory = "Serviced Apartment"
	CategoryMobileHome        PropertyCategory = "Mobile Home"
	CategoryCommercial        PropertyCategory = "Commercial"
	CategoryBusiness          PropertyCategory = "Business"
	CategoryIndustrial        PropertyCategory = "Industrial"
	CategoryRural             PropertyCategory = "Rural"
	CategorySemiRural         PropertyCategory = "Semi Rural"
	CategoryAcerageSemiRural  PropertyCategory = "Acerage Semi Rural"
)

// AllCategories returns every approved category in canonical casing.
func AllCategories() []PropertyCategory {
	return []PropertyCategory{
		CategoryLand, CategoryHouse, CategoryTownhouse, CategoryUnit,
		CategoryVilla, CategoryApartment, CategoryPenthouse, CategoryAcerage,
		CategoryStudio, CategoryHouseAndLand, CategoryDuplex, CategoryTerrace,
		CategoryServicedApartment, CategoryMobileHome,
		CategoryCommercial, CategoryBusiness, CategoryIndustrial,
		CategoryRural, CategorySemiRural, CategoryAcerageSemiRural,
	}
}

// CategoryGroup clusters categories for UI grouping.
type CategoryGroup struct {
	Key        string
	Label      string
	Categories []PropertyCategory
}

func CategoryGroups() []CategoryGroup {
	return []CategoryGroup{
		{
			Key:   "residentialHouses",
			Label: "Residential Houses",
			Categories: []PropertyCategory{
				CategoryHouse, CategoryTownhouse, CategoryVilla,
				CategoryDuplex, CategoryTerrace,
			},
		},
		{
			Key:   "residentialUnits",
			Label: "Residential Units",
			Categories: []PropertyCategory{
				CategoryUnit, CategoryApartment, CategoryPenthouse,
				CategoryStudio, CategoryServicedApartment,
			},
		},
		{
			Key:        "residentialSpecialty",
			Label:      "Residential Specialty",
			Categories: []PropertyCategory{CategoryHouseAndLand, CategoryMobileHome},
		},
		{
			Key:        "commercial",
			Label:      "Commercial",
			Categories: []PropertyCategory{CategoryCommercial, CategoryBusiness, CategoryIndustrial},
		},
		{
			Key:   "landRural",
			Label: "Land & Rural",
			Categories: []PropertyCategory{
				CategoryLand, CategoryAcerage, CategoryRural,
				CategorySemiRural, CategoryAcerageSemiRural,
			},
		},
	}
}

// categoryFallbacks maps common variations and typos onto approved values.
var categoryFallbacks = map[string]PropertyCategory{
	"pent house":          CategoryPenthouse,
	"apt":                 CategoryApartment,
	"apartments":          CategoryApartment,
	"units":               CategoryUnit,
	"houses":              CategoryHouse,
	"townhouses":          CategoryTownhouse,
	"villas":              CategoryVilla,
	"studio apartment":    CategoryStudio,
	"acrage":              CategoryAcerage,
	"acre":                CategoryAcerage,
	"commercial property": CategoryCommercial,
	"commercial building": CategoryCommercial,
	"residential":         CategoryHouse,
	"property":            CategoryHouse,
	"home":                CategoryHouse,
	"residential house":   CategoryHouse,
	"flat":                CategoryUnit,
	"condo":               CategoryApartment,
	"condominium":         CategoryApartment,
}

// NormalizeCategory matches a candidate string against the approved set,
// case-insensitively, and returns the canonical casing on success.
func NormalizeCategory(s string) (PropertyCategory, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false
	}
	for _, c := range AllCategories() {
		if strings.EqualFold(string(c), trimmed) {
			return c, true
		}
	}
	return "", false
}

// ApplyCategoryFallback normalizes a candidate, falling back to the synonym
// map for values outside the approved set.
func ApplyCategoryFallback(s string) (PropertyCategory, bool) {
	if c, ok := NormalizeCategory(s); ok {
		return c, true
	}
	if c, ok := categoryFallbacks[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, true
	}
	return "", false
}

// CategoryValidationResult partitions a candidate list into approved values
// (canonical casing, deduplicated) and rejected ones. Partial success is
// allowed: a rejected value never aborts validation of the rest.
type CategoryValidationResult struct {
	Valid     []PropertyCategory
	Invalid   []string
	HasErrors bool
	Message   string
}

// ValidateAndNormalizeCategories validates a candidate category list.
// An empty or nil input is a valid "no category filter" and is not an error.
func ValidateAndNormalizeCategories(in []string) CategoryValidationResult {
	res := CategoryValidationResult{}
	if len(in) == 0 {
		return res
	}

	seen := make(map[PropertyCategory]struct{})
	var emptyCount int
	for _, raw := range in {
		if strings.TrimSpace(raw) == "" {
			emptyCount++
			res.Invalid = append(res.Invalid, raw)
			continue
		}
		c, ok := NormalizeCategory(raw)
		if !ok {
			res.Invalid = append(res.Invalid, raw)
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		res.Valid = append(res.Valid, c)
	}

	if len(res.Invalid) > 0 {
		res.HasErrors = true
		unknown := len(res.Invalid) - emptyCount
		var parts []string
		if unknown > 0 {
			var names []string
			for _, v := range res.Invalid {
				if strings.TrimSpace(v) != "" {
					names = append(names, fmt.Sprintf("%q", v))
				}
			}
			parts = append(parts, fmt.Sprintf("unknown categories: %s", strings.Join(names, ", ")))
		}
		if emptyCount > 0 {
			parts = append(parts, fmt.Sprintf("%d empty value(s)", emptyCount))
		}
		res.Message = fmt.Sprintf("%s; valid categories are: %s",
			strings.Join(parts, "; "), joinCategories(AllCategories()))
	}
	return res
}

// SanitizeCategoryForAPI converts a validated category into the token the
// upstream API expects. Upstream currently accepts the canonical casing, so
// the indirection exists only to isolate future naming drift. Injection
// characters are stripped and over-long input rejected before matching.
func SanitizeCategoryForAPI(s string) (string, bool) {
	cleaned := strings.NewReplacer(
		"<", "", ">", "", `"`, "", "'", "", ";", "", "&", "", "|", "", "`", "",
	).Replace(strings.TrimSpace(s))
	if len(cleaned) > 100 {
		cleaned = cleaned[:100]
	}
	c, ok := NormalizeCategory(cleaned)
	if !ok {
		return "", false
	}
	return string(c), true
}

func joinCategories(cats []PropertyCategory) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
