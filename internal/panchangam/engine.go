// Package panchangam orchestrates the limb engines, day-segment
// partitioner, Lagnam scanner, and festival matcher into a single daily
// report, wiring together pkg/ephemeris, pkg/crossing, pkg/calendar and
// pkg/limbs.
package panchangam

import (
	"github.com/vsubramaniam/panchangam/pkg/crossing"
	"github.com/vsubramaniam/panchangam/pkg/ephemeris"
	"github.com/vsubramaniam/panchangam/pkg/limbs"
)

// nudge is the small forward step used to sample a limb mapper just past
// a solved boundary crossing, to read off the name of the limb that
// follows. It must be small relative to the mapper's span (6 degrees
// being the narrowest, for karana) but large enough to clear
// floating-point error at the boundary.
const nudge = 1e-4

const (
	tithiSearchWindowDays     = 2.0
	nakshatraSearchWindowDays = 2.0
	yogaSearchWindowDays      = 2.0
	karanaSearchWindowDays    = 1.0
	rasiBackScanWindowDays    = 3.0
)

func elongationAt(p ephemeris.Provider, jd float64) float64 {
	sun, moon := p.SunMoon(jd)
	return ephemeris.NormalizeDegrees(moon - sun)
}

func sunMoonSumAt(p ephemeris.Provider, jd float64) float64 {
	sun, moon := p.SunMoon(jd)
	return ephemeris.NormalizeDegrees(sun + moon)
}

// ComputeTithi returns the tithi active at refJD, together with its end
// instant and the name of the tithi that follows.
func ComputeTithi(p ephemeris.Provider, refJD float64) limbsTithi {
	elong := elongationAt(p, refJD)
	info := limbs.TithiAt(elong)

	nextBoundary := float64(info.Index) * 12.0
	angleFn := func(jd float64) float64 { return elongationAt(p, jd) }
	endJD := crossing.Find(refJD, refJD+tithiSearchWindowDays, ephemeris.NormalizeDegrees(nextBoundary), angleFn)

	next := limbs.TithiAt(ephemeris.NormalizeDegrees(nextBoundary) + nudge)
	return limbsTithi{Info: info, EndJD: endJD, NextName: next.Name}
}

// ComputeNakshatra returns the nakshatra active at refJD.
func ComputeNakshatra(p ephemeris.Provider, refJD float64) limbsNakshatra {
	moonLon := p.MoonLon(refJD)
	info := limbs.NakshatraAt(moonLon)

	span := 360.0 / 27.0
	nextBoundary := float64(info.Index) * span
	angleFn := func(jd float64) float64 { return p.MoonLon(jd) }
	endJD := crossing.Find(refJD, refJD+nakshatraSearchWindowDays, ephemeris.NormalizeDegrees(nextBoundary), angleFn)

	next := limbs.NakshatraAt(ephemeris.NormalizeDegrees(nextBoundary) + nudge)
	return limbsNakshatra{Info: info, EndJD: endJD, NextName: next.Name}
}

// ComputeYoga returns the yoga active at refJD.
func ComputeYoga(p ephemeris.Provider, refJD float64) limbsYoga {
	sum := sunMoonSumAt(p, refJD)
	info := limbs.YogaAt(sum)

	span := 360.0 / 27.0
	nextBoundary := float64(info.Index) * span
	angleFn := func(jd float64) float64 { return sunMoonSumAt(p, jd) }
	endJD := crossing.Find(refJD, refJD+yogaSearchWindowDays, ephemeris.NormalizeDegrees(nextBoundary), angleFn)

	return limbsYoga{Info: info, EndJD: endJD}
}

// ComputeKarana returns the karana active at refJD.
func ComputeKarana(p ephemeris.Provider, refJD float64) limbsKarana {
	elong := elongationAt(p, refJD)
	info := limbs.KaranaAt(elong)

	nextBoundary := float64(info.Slot) * 6.0
	angleFn := func(jd float64) float64 { return elongationAt(p, jd) }
	endJD := crossing.Find(refJD, refJD+karanaSearchWindowDays, ephemeris.NormalizeDegrees(nextBoundary), angleFn)

	next := limbs.KaranaAt(ephemeris.NormalizeDegrees(nextBoundary) + nudge)
	return limbsKarana{Info: info, EndJD: endJD, NextName: next.Name}
}

// limbsTithi, limbsNakshatra, limbsYoga and limbsKarana are the engine's
// internal widened records; the orchestrator renders them into
// internal/types' public report records once it knows the request zone.
type limbsTithi struct {
	Info     limbs.TithiInfo
	EndJD    float64
	NextName limbs.BilingualName
}

type limbsNakshatra struct {
	Info     limbs.NakshatraInfo
	EndJD    float64
	NextName limbs.BilingualName
}

type limbsYoga struct {
	Info  limbs.YogaInfo
	EndJD float64
}

type limbsKarana struct {
	Info     limbs.KaranaInfo
	EndJD    float64
	NextName limbs.BilingualName
}
