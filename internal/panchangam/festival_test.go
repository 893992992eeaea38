package panchangam

import (
	"testing"

	"github.com/vsubramaniam/panchangam/pkg/limbs"
)

func TestMatchFestivalsTithiRule(t *testing.T) {
	cat := Catalog{
		TithiRules: []TithiRule{
			{Name: limbs.BilingualName{En: "Deepavali", Ta: "Deepavali"}, Type: "religious", Month: 7, Tithi: 30, Paksha: "krishna"},
		},
	}
	tithi := limbs.TithiInfo{Index: 30}
	nakshatra := limbs.NakshatraInfo{Index: 1}

	got := MatchFestivals(cat, tithi, nakshatra, 7, 10, 20)
	if len(got) != 1 || got[0].Name.En != "Deepavali" {
		t.Fatalf("expected Deepavali to match, got %+v", got)
	}

	none := MatchFestivals(cat, tithi, nakshatra, 6, 10, 20)
	if len(none) != 0 {
		t.Errorf("expected no match for wrong month, got %+v", none)
	}
}

func TestMatchFestivalsFixedRuleAnyYear(t *testing.T) {
	cat := Catalog{
		FixedRules: []FixedDateRule{
			{Name: limbs.BilingualName{En: "Pongal", Ta: "Pongal"}, Type: "cultural", Month: 1, Day: 14},
		},
	}
	got := MatchFestivals(cat, limbs.TithiInfo{}, limbs.NakshatraInfo{}, 10, 1, 14)
	if len(got) != 1 || got[0].Name.En != "Pongal" {
		t.Fatalf("expected Pongal to match, got %+v", got)
	}
}

func TestMatchFestivalsDeduplicatesByName(t *testing.T) {
	cat := Catalog{
		TithiRules: []TithiRule{
			{Name: limbs.BilingualName{En: "Same Day"}, Type: "religious", Month: 0, Tithi: 15, Paksha: "shukla"},
		},
		NakshatraRules: []NakshatraRule{
			{Name: limbs.BilingualName{En: "Same Day"}, Type: "religious", Month: 0, Nakshatra: 6},
		},
	}
	tithi := limbs.TithiInfo{Index: 15}
	nakshatra := limbs.NakshatraInfo{Index: 6}

	got := MatchFestivals(cat, tithi, nakshatra, 9, 12, 25)
	if len(got) != 1 {
		t.Fatalf("expected dedup to leave a single entry, got %+v", got)
	}
}
