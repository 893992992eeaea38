package panchangam

import (
	"github.com/vsubramaniam/panchangam/internal/types"
	"github.com/vsubramaniam/panchangam/pkg/limbs"
)

// Catalog is an alias for the externally-supplied festival rule tables
// (internal/config loads them from YAML into this same shape).
type Catalog = types.Catalog

// TithiRule, NakshatraRule and FixedDateRule alias their internal/types
// counterparts so existing call sites naming panchangam.TithiRule etc.
// keep working without importing internal/types directly.
type TithiRule = types.TithiRule
type NakshatraRule = types.NakshatraRule
type FixedDateRule = types.FixedDateRule

// MatchFestivals joins the day's tithi, nakshatra, Tamil month and
// Gregorian month/day against the catalog, returning a deduplicated
// list keyed by English name, in rule-table order (tithi, nakshatra,
// fixed) and first-occurrence order within each table.
func MatchFestivals(cat Catalog, tithi limbs.TithiInfo, nakshatra limbs.NakshatraInfo, tamilMonth int, gregMonth, gregDay int) []types.Festival {
	seen := make(map[string]bool)
	var out []types.Festival

	add := func(name limbs.BilingualName, typ string) {
		if seen[name.En] {
			return
		}
		seen[name.En] = true
		out = append(out, types.Festival{Name: name, Type: typ})
	}

	for _, r := range cat.TithiRules {
		if (r.Month == 0 || r.Month == tamilMonth) && r.Tithi == tithi.Index {
			add(r.Name, r.Type)
		}
	}
	for _, r := range cat.NakshatraRules {
		if (r.Month == 0 || r.Month == tamilMonth) && r.Nakshatra == nakshatra.Index {
			add(r.Name, r.Type)
		}
	}
	for _, r := range cat.FixedRules {
		if r.Month == gregMonth && r.Day == gregDay {
			add(r.Name, r.Type)
		}
	}

	return out
}
