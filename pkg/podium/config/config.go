package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/podium/pkg/podium/internalerr"
)

// Rules represents the keyword rule configuration
type Rules struct {
	Rules []RuleEntry `yaml:"rules"`
}

// RuleEntry is one configured keyword rule. Kind is "token" or "phrase".
type RuleEntry struct {
	Label   string `yaml:"label"`
	Pattern string `yaml:"pattern"`
	Kind    string `yaml:"kind"`
}

// LoadRules loads keyword rules from a YAML file
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}

	return &r, nil
}

// Parties maps president names to parties. Static reference data for the
// partisan report views, injected rather than embedded in code.
type Parties struct {
	Presidents map[string]string `yaml:"presidents"`
}

// LoadParties loads the president-to-party list from a YAML file
func LoadParties(path string) (*Parties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Parties
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Catalog describes the upstream archive: where the catalog page lives
// and which identifiers to drop (known defective or duplicate entries).
type Catalog struct {
	BaseURL string   `yaml:"base_url"`
	Page    string   `yaml:"page"`
	Exclude []string `yaml:"exclude"`
}

// LoadCatalog loads the catalog configuration from a YAML file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	if c.BaseURL == "" {
		return nil, fmt.Errorf("%w: catalog base_url is required", internalerr.ErrInvalidConfig)
	}

	return &c, nil
}
