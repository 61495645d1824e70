package configs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"listings-gateway/internal/core/domain"
)

// heuristicsFile is the YAML shape of the optional keyword overrides file.
// Any list left empty falls back to the built-in defaults.
type heuristicsFile struct {
	ResidentialIndicators []string `yaml:"residentialIndicators"`
	AuctionKeywords       []string `yaml:"auctionKeywords"`
	AuctionPricePatterns  []string `yaml:"auctionPricePatterns"`
}

// LoadHeuristics builds the keyword heuristics, optionally merged with
// overrides from a YAML file. An empty path means defaults only.
func LoadHeuristics(path string) (*domain.KeywordHeuristics, error) {
	if path == "" {
		return domain.DefaultKeywordHeuristics(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read heuristics file %s: %w", path, err)
	}

	var file heuristicsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse heuristics file %s: %w", path, err)
	}

	h, err := domain.NewKeywordHeuristics(file.ResidentialIndicators, file.AuctionKeywords, file.AuctionPricePatterns)
	if err != nil {
		return nil, fmt.Errorf("invalid heuristics file %s: %w", path, err)
	}
	return h, nil
}
