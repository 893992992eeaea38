package panchangam

import (
	"testing"

	"github.com/vsubramaniam/panchangam/pkg/calendar"
	"github.com/vsubramaniam/panchangam/pkg/ephemeris"
)

func TestBirthNakshatraIndexKnownName(t *testing.T) {
	idx, ok := birthNakshatraIndex("Ashwini")
	if !ok {
		t.Fatal("expected Ashwini to resolve")
	}
	if idx != 1 {
		t.Errorf("expected index 1 for Ashwini, got %d", idx)
	}
}

func TestBirthNakshatraIndexUnknownName(t *testing.T) {
	if _, ok := birthNakshatraIndex("NotANakshatra"); ok {
		t.Error("expected unrecognized name to fail")
	}
}

func TestComputeChandrashtamaUnknownNameFails(t *testing.T) {
	p := ephemeris.NewAnalytic()
	refJD, err := calendar.ToJD("2025-03-10", "UTC")
	if err != nil {
		t.Fatalf("ToJD: %v", err)
	}
	_, ok := ComputeChandrashtama(p, refJD, "NotANakshatra")
	if ok {
		t.Error("expected ComputeChandrashtama to fail for unrecognized nakshatra")
	}
}

func TestComputeChandrashtamaKnownNameResolves(t *testing.T) {
	p := ephemeris.NewAnalytic()
	refJD, err := calendar.ToJD("2025-03-10", "UTC")
	if err != nil {
		t.Fatalf("ToJD: %v", err)
	}
	res, ok := ComputeChandrashtama(p, refJD, "Rohini")
	if !ok {
		t.Fatal("expected ComputeChandrashtama to resolve for Rohini")
	}
	if res.Active && res.EndJD <= res.StartJD {
		t.Errorf("active window has non-positive duration: start=%.6f end=%.6f", res.StartJD, res.EndJD)
	}
}
