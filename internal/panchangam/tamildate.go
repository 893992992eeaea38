package panchangam

import (
	"math"

	"github.com/vsubramaniam/panchangam/pkg/crossing"
	"github.com/vsubramaniam/panchangam/pkg/ephemeris"
	"github.com/vsubramaniam/panchangam/pkg/limbs"
)

// sankrantiBackScanWindowDays brackets the search for the most recent
// sun-rasi ingress (Sankranti); a solar month is never longer than
// roughly 32 days, so 35 is a safe margin.
const sankrantiBackScanWindowDays = 35.0

// TamilDateMode selects which of the two source Tamil-date semantics
// (see SPEC_FULL.md's Open Questions) the engine uses.
type TamilDateMode int

const (
	// TamilDateCivilSankranti is the default: if Sankranti (the Sun's
	// ingress into the current Tamil month's rasi) falls between
	// sunrise and sunset on a date, that date is day 1 of the new month;
	// if it falls after sunset, the next date is day 1. Each later date
	// adds one, sunsets being taken to fall one day apart.
	TamilDateCivilSankranti TamilDateMode = iota
	// TamilDateDegreeApprox is the simplified degree-based
	// approximation: day = floor(sunLon mod 30) + 1.
	TamilDateDegreeApprox
)

// tamilDateResult is the Tamil month/day before report assembly.
type tamilDateResult struct {
	Month      limbs.TamilMonthInfo
	DayOfMonth int
}

// ComputeTamilDate returns the Tamil solar calendar month and
// day-of-month for the request date. The degree-based approximation reads
// both from the Sun's longitude at sunrise; the civil Sankranti rule reads
// the month from the Sun's longitude at sunset and counts the day from
// the most recent Sankranti.
func ComputeTamilDate(p ephemeris.Provider, sunriseJD float64, sunsetJD float64, mode TamilDateMode) tamilDateResult {
	sunLon := p.SunLon(sunriseJD)
	month := limbs.TamilMonthAt(sunLon)

	if mode == TamilDateDegreeApprox {
		return tamilDateResult{Month: month, DayOfMonth: limbs.TamilDayOfMonth(sunLon)}
	}

	angleFn := func(jd float64) float64 { return p.SunLon(jd) }
	month = limbs.TamilMonthAt(p.SunLon(sunsetJD))
	sankJD := crossing.Find(sunsetJD-sankrantiBackScanWindowDays, sunsetJD, month.SunStartDegree, angleFn)

	if sankJD > sunsetJD-1.0 {
		return tamilDateResult{Month: month, DayOfMonth: 1}
	}

	daysSince := int(math.Floor(sunsetJD - sankJD))
	if daysSince < 1 {
		daysSince = 1
	}
	return tamilDateResult{Month: month, DayOfMonth: daysSince + 1}
}
