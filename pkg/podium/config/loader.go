package config

import (
	"fmt"

	"github.com/cognicore/podium/pkg/podium/internalerr"
	"github.com/cognicore/podium/pkg/podium/keyword"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	RulesPath   string
	PartiesPath string
	CatalogPath string
}

// Components holds all loaded configuration components
type Components struct {
	Registry *keyword.Registry
	Parties  map[string]string
	Catalog  *Catalog
}

// Load reads all configuration files and returns initialized components.
// Rule patterns are compiled here, so a bad pattern fails before any
// document is fetched or processed.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Parties: map[string]string{}}

	if l.RulesPath != "" {
		rules, err := LoadRules(l.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
		comp.Registry, err = buildRegistry(rules)
		if err != nil {
			return nil, fmt.Errorf("compile rules: %w", err)
		}
	} else {
		var err error
		comp.Registry, err = keyword.NewRegistry()
		if err != nil {
			return nil, err
		}
	}

	if l.PartiesPath != "" {
		parties, err := LoadParties(l.PartiesPath)
		if err != nil {
			return nil, fmt.Errorf("load parties: %w", err)
		}
		comp.Parties = parties.Presidents
	}

	if l.CatalogPath != "" {
		catalog, err := LoadCatalog(l.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		comp.Catalog = catalog
	}

	return comp, nil
}

func buildRegistry(rules *Rules) (*keyword.Registry, error) {
	converted := make([]keyword.Rule, 0, len(rules.Rules))
	for _, entry := range rules.Rules {
		var kind keyword.Kind
		switch entry.Kind {
		case "token", "":
			kind = keyword.TokenRule
		case "phrase":
			kind = keyword.PhraseRule
		default:
			return nil, fmt.Errorf("%w: rule %q has unknown kind %q",
				internalerr.ErrInvalidConfig, entry.Label, entry.Kind)
		}
		converted = append(converted, keyword.Rule{
			Label:   entry.Label,
			Pattern: entry.Pattern,
			Kind:    kind,
		})
	}
	return keyword.NewRegistry(converted...)
}
