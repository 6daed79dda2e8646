package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/podium/pkg/podium/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRules(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
rules:
  - label: war
    pattern: "[Ww]ar"
    kind: token
  - label: god_bless
    pattern: "God [Bb]less"
    kind: phrase
`)

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(rules.Rules) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(rules.Rules))
	}
	if rules.Rules[0].Label != "war" || rules.Rules[0].Kind != "token" {
		t.Errorf("Rule 0 = %+v", rules.Rules[0])
	}
	if rules.Rules[1].Kind != "phrase" {
		t.Errorf("Rule 1 kind = %q", rules.Rules[1].Kind)
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules("/nonexistent/rules.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadParties(t *testing.T) {
	path := writeFile(t, "parties.yaml", `
presidents:
  Barack Obama: Democratic
  George W. Bush: Republican
`)

	parties, err := LoadParties(path)
	if err != nil {
		t.Fatal(err)
	}

	if parties.Presidents["Barack Obama"] != "Democratic" {
		t.Errorf("Obama party = %q", parties.Presidents["Barack Obama"])
	}
	if parties.Presidents["George W. Bush"] != "Republican" {
		t.Errorf("Bush party = %q", parties.Presidents["George W. Bush"])
	}
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
base_url: https://archive.example
page: /documents/catalog
exclude:
  - /documents/duplicate-entry
`)

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatal(err)
	}

	if catalog.BaseURL != "https://archive.example" {
		t.Errorf("BaseURL = %q", catalog.BaseURL)
	}
	if len(catalog.Exclude) != 1 || catalog.Exclude[0] != "/documents/duplicate-entry" {
		t.Errorf("Exclude = %v", catalog.Exclude)
	}
}

func TestLoadCatalogRequiresBaseURL(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "page: /documents/catalog\n")

	_, err := LoadCatalog(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
