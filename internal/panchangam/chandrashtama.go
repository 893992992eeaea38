package panchangam

import (
	"github.com/vsubramaniam/panchangam/pkg/crossing"
	"github.com/vsubramaniam/panchangam/pkg/ephemeris"
	"github.com/vsubramaniam/panchangam/pkg/limbs"
)

// chandrashtamaResult mirrors types.Chandrashtama before zone rendering.
type chandrashtamaResult struct {
	Active  bool
	StartJD float64
	EndJD   float64
}

// birthNakshatraIndex maps an English nakshatra name (case as stored in
// the fixed table) to its 1..27 index, or ok=false if unrecognized.
func birthNakshatraIndex(name string) (int, bool) {
	for i := 1; i <= 27; i++ {
		info := limbs.NakshatraAt(float64(i-1) * (360.0 / 27.0))
		if info.Name.En == name {
			return info.Index, true
		}
	}
	return 0, false
}

// ComputeChandrashtama evaluates the 8th-house Moon condition for a
// querant whose birth nakshatra is birthNakshatraName. It returns
// ok=false when the name is unrecognized (an InvalidInput case the
// caller should surface), and a zero-value, inactive result when the
// condition simply does not hold today.
func ComputeChandrashtama(p ephemeris.Provider, refJD float64, birthNakshatraName string) (chandrashtamaResult, bool) {
	nakIndex, ok := birthNakshatraIndex(birthNakshatraName)
	if !ok {
		return chandrashtamaResult{}, false
	}

	// The birth-moon rasi is the rasi containing the birth nakshatra's
	// starting degree.
	nakSpan := 360.0 / 27.0
	nakStartDeg := float64(nakIndex-1) * nakSpan
	birthMoonRasi := limbs.RasiAt(nakStartDeg)

	// 8th house from birthMoonRasi, 1-based, wrapping 1..12.
	chandrashtamaRasiIndex := ((birthMoonRasi.Index-1+7)%12 + 1)

	transitMoonLon := p.MoonLon(refJD)
	transitRasi := limbs.RasiAt(transitMoonLon)

	if transitRasi.Index != chandrashtamaRasiIndex {
		return chandrashtamaResult{Active: false}, true
	}

	startDeg := float64(chandrashtamaRasiIndex-1) * 30.0
	endDeg := ephemeris.NormalizeDegrees(startDeg + 30.0)

	angleFn := func(jd float64) float64 { return p.MoonLon(jd) }

	startJD := crossing.Find(refJD-rasiBackScanWindowDays, refJD, startDeg, angleFn)
	endJD := crossing.Find(refJD, refJD+rasiBackScanWindowDays, endDeg, angleFn)

	return chandrashtamaResult{Active: true, StartJD: startJD, EndJD: endJD}, true
}
