package panchangam

import (
	"testing"

	"github.com/vsubramaniam/panchangam/pkg/calendar"
	"github.com/vsubramaniam/panchangam/pkg/ephemeris"
)

func TestComputeTamilDateDegreeApproxDayInRange(t *testing.T) {
	p := ephemeris.NewAnalytic()
	sunriseJD, err := calendar.ToJD("2025-05-10", "UTC")
	if err != nil {
		t.Fatalf("ToJD: %v", err)
	}
	sunsetJD := sunriseJD + 0.5

	got := ComputeTamilDate(p, sunriseJD, sunsetJD, TamilDateDegreeApprox)
	if got.DayOfMonth < 1 || got.DayOfMonth > 32 {
		t.Errorf("day of month %d out of plausible range", got.DayOfMonth)
	}
	if got.Month.Index < 1 || got.Month.Index > 12 {
		t.Errorf("month index %d out of [1,12]", got.Month.Index)
	}
}

func TestComputeTamilDateCivilSankrantiDayAtLeastOne(t *testing.T) {
	p := ephemeris.NewAnalytic()
	sunriseJD, err := calendar.ToJD("2025-05-10", "UTC")
	if err != nil {
		t.Fatalf("ToJD: %v", err)
	}
	sunsetJD := sunriseJD + 0.5

	got := ComputeTamilDate(p, sunriseJD, sunsetJD, TamilDateCivilSankranti)
	if got.DayOfMonth < 1 {
		t.Errorf("day of month %d should be >= 1", got.DayOfMonth)
	}
}
