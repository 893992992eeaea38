package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vsubramaniam/panchangam/internal/types"
	"github.com/vsubramaniam/panchangam/pkg/limbs"
)

// bilingualNameYAML mirrors limbs.BilingualName's {en, ta} shape on disk.
type bilingualNameYAML struct {
	En string `yaml:"en"`
	Ta string `yaml:"ta"`
}

func (n bilingualNameYAML) toBilingualName() limbs.BilingualName {
	return limbs.BilingualName{En: n.En, Ta: n.Ta}
}

// catalogYAML mirrors the three festival rule tables (§4.8) as they
// appear on disk.
type catalogYAML struct {
	TithiRules []struct {
		Name   bilingualNameYAML `yaml:"name"`
		Type   string            `yaml:"type"`
		Month  int               `yaml:"month"`
		Tithi  int               `yaml:"tithi"`
		Paksha string            `yaml:"paksha"`
	} `yaml:"tithiRules"`
	NakshatraRules []struct {
		Name      bilingualNameYAML `yaml:"name"`
		Type      string            `yaml:"type"`
		Month     int               `yaml:"month"`
		Nakshatra int               `yaml:"nakshatra"`
	} `yaml:"nakshatraRules"`
	FixedRules []struct {
		Name  bilingualNameYAML `yaml:"name"`
		Type  string            `yaml:"type"`
		Month int               `yaml:"month"`
		Day   int               `yaml:"day"`
	} `yaml:"fixedRules"`
}

// LoadCatalog reads a festival rule catalog from a YAML file, validating
// each tithi rule's advisory paksha field against its tithi index (the
// index encoding is authoritative; a mismatch is a catalog-authoring
// error surfaced to the caller rather than silently ignored).
func LoadCatalog(filename string) (types.Catalog, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return types.Catalog{}, err
	}

	var y catalogYAML
	if err := yaml.Unmarshal(raw, &y); err != nil {
		return types.Catalog{}, err
	}

	cat := types.Catalog{
		TithiRules:     make([]types.TithiRule, 0, len(y.TithiRules)),
		NakshatraRules: make([]types.NakshatraRule, 0, len(y.NakshatraRules)),
		FixedRules:     make([]types.FixedDateRule, 0, len(y.FixedRules)),
	}

	for _, r := range y.TithiRules {
		wantPaksha := "shukla"
		if r.Tithi > 15 {
			wantPaksha = "krishna"
		}
		if r.Paksha != "" && r.Paksha != wantPaksha {
			return types.Catalog{}, &CatalogValidationError{
				Rule:   r.Name.En,
				Reason: "paksha field " + r.Paksha + " inconsistent with tithi index " + wantPaksha,
			}
		}
		cat.TithiRules = append(cat.TithiRules, types.TithiRule{
			Name: r.Name.toBilingualName(), Type: r.Type, Month: r.Month, Tithi: r.Tithi, Paksha: r.Paksha,
		})
	}
	for _, r := range y.NakshatraRules {
		cat.NakshatraRules = append(cat.NakshatraRules, types.NakshatraRule{
			Name: r.Name.toBilingualName(), Type: r.Type, Month: r.Month, Nakshatra: r.Nakshatra,
		})
	}
	for _, r := range y.FixedRules {
		cat.FixedRules = append(cat.FixedRules, types.FixedDateRule{
			Name: r.Name.toBilingualName(), Type: r.Type, Month: r.Month, Day: r.Day,
		})
	}

	return cat, nil
}

// CatalogValidationError reports an internally-inconsistent catalog rule.
type CatalogValidationError struct {
	Rule   string
	Reason string
}

func (e *CatalogValidationError) Error() string {
	return "invalid festival rule " + e.Rule + ": " + e.Reason
}
