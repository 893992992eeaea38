package limbs

import "testing"

func TestTithiAtBoundaries(t *testing.T) {
	tests := []struct {
		elongation float64
		wantIndex  int
		wantPaksha Paksha
		wantName   string
	}{
		{0, 1, Shukla, "Pratipada"},
		{11.9, 1, Shukla, "Pratipada"},
		{168, 15, Shukla, "Purnima"},
		{180, 16, Krishna, "Pratipada"},
		{348, 30, Krishna, "Amavasya"},
		{359.9, 30, Krishna, "Amavasya"},
	}
	for _, tt := range tests {
		got := TithiAt(tt.elongation)
		if got.Index != tt.wantIndex || got.Paksha != tt.wantPaksha || got.Name.En != tt.wantName {
			t.Errorf("TithiAt(%v) = {%d %v %q}, want {%d %v %q}",
				tt.elongation, got.Index, got.Paksha, got.Name.En, tt.wantIndex, tt.wantPaksha, tt.wantName)
		}
	}
}

func TestTithiPakshaInvariant(t *testing.T) {
	for i := 0; i < 300; i++ {
		e := float64(i) * 1.2
		got := TithiAt(e)
		wantShukla := got.Index <= 15
		if (got.Paksha == Shukla) != wantShukla {
			t.Errorf("TithiAt(%v): index=%d paksha=%v violates paksha<=15 invariant", e, got.Index, got.Paksha)
		}
	}
}

func TestNakshatraAtPada(t *testing.T) {
	tests := []struct {
		moonLon  float64
		wantIdx  int
		wantPada int
	}{
		{0, 1, 1},
		{3.3, 1, 1},
		{3.4, 1, 2},
		{13.3, 1, 4},
		{359.9, 27, 4},
	}
	for _, tt := range tests {
		got := NakshatraAt(tt.moonLon)
		if got.Index != tt.wantIdx || got.Pada != tt.wantPada {
			t.Errorf("NakshatraAt(%v) = {idx:%d pada:%d}, want {idx:%d pada:%d}",
				tt.moonLon, got.Index, got.Pada, tt.wantIdx, tt.wantPada)
		}
	}
}

func TestYogaAtAllIndicesResolve(t *testing.T) {
	for i := 0; i < 27; i++ {
		deg := float64(i)*degreesPerYoga + 1
		got := YogaAt(deg)
		if got.Index != i+1 {
			t.Errorf("YogaAt(%v) index = %d, want %d", deg, got.Index, i+1)
		}
	}
}

func TestKaranaAtFixedSlots(t *testing.T) {
	tests := []struct {
		elongation  float64
		wantName    string
		wantType    KaranaType
		wantVariant int
	}{
		{0, "Kimstughna", Fixed, 8},
		{6, "Bava", Movable, 1},
		{342, "Shakuni", Fixed, 9},
		{348, "Chatushpada", Fixed, 10},
		{354, "Naga", Fixed, 11},
		{359.9, "Naga", Fixed, 11},
	}
	for _, tt := range tests {
		got := KaranaAt(tt.elongation)
		if got.Name.En != tt.wantName || got.Type != tt.wantType || got.Index != tt.wantVariant {
			t.Errorf("KaranaAt(%v) = {%q %v idx:%d}, want {%q %v idx:%d}",
				tt.elongation, got.Name.En, got.Type, got.Index, tt.wantName, tt.wantType, tt.wantVariant)
		}
	}
}

func TestKaranaMovableCycleRepeatsEightTimes(t *testing.T) {
	// slot 2 and slot 9 (one 7-cycle later) must share a name and variant index.
	first := KaranaAt(6) // slot 2
	slot9 := KaranaAt(float64(8) * degreesPerKarana)
	if first.Name.En != slot9.Name.En || first.Index != slot9.Index {
		t.Errorf("karana cycle did not repeat: slot2=%+v slot9=%+v", first, slot9)
	}
}

func TestRasiAtBoundaries(t *testing.T) {
	got := RasiAt(270)
	if got.Name.En != "Makara" {
		t.Errorf("RasiAt(270) = %q, want Makara", got.Name.En)
	}
	got = RasiAt(0)
	if got.Name.En != "Mesha" {
		t.Errorf("RasiAt(0) = %q, want Mesha", got.Name.En)
	}
}

func TestTamilMonthMatchesRasiBoundary(t *testing.T) {
	// 2025-01-15 falls with the sidereal Sun around 270 degrees (Makara),
	// which must resolve to Tamil month Thai.
	got := TamilMonthAt(271.5)
	if got.Name.En != "Thai" {
		t.Errorf("TamilMonthAt(271.5) = %q, want Thai", got.Name.En)
	}
}

func TestTamilDayOfMonth(t *testing.T) {
	if got := TamilDayOfMonth(271.5); got != 2 {
		t.Errorf("TamilDayOfMonth(271.5) = %d, want 2", got)
	}
	if got := TamilDayOfMonth(270.0); got != 1 {
		t.Errorf("TamilDayOfMonth(270.0) = %d, want 1", got)
	}
}

func TestTamilYearNameKnownEpoch(t *testing.T) {
	if got := TamilYearName(2000); got != "Vikruti" {
		t.Errorf("TamilYearName(2000) = %q, want Vikruti", got)
	}
	// cycle must be periodic every 60 years.
	if TamilYearName(2000) != TamilYearName(2060) {
		t.Errorf("TamilYearName not periodic over 60 years")
	}
}

func TestGowriNameAtWraps(t *testing.T) {
	a := GowriNameAt(3, 8)
	b := GowriNameAt(3, 16) // one full 8-cycle later
	if a.En != b.En {
		t.Errorf("GowriNameAt did not wrap at 8: %q vs %q", a.En, b.En)
	}
}
