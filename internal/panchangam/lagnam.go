package panchangam

import (
	"math"

	"github.com/vsubramaniam/panchangam/pkg/ephemeris"
	"github.com/vsubramaniam/panchangam/pkg/limbs"
)

// lagnamStepJD is the scanner's fixed resolution: 10 minutes, expressed
// as a fraction of a Julian Day (1/144).
const lagnamStepJD = 1.0 / 144.0

// jdRasiInterval is a single rising-sign window, before zone rendering.
type jdRasiInterval struct {
	RasiIndex int
	RasiName  limbs.BilingualName
	StartJD   float64
	EndJD     float64
}

// ComputeLagnam walks the ascendant from sunriseJD to sunriseJD+1 in
// 10-minute steps and collapses consecutive equal-rasi steps into
// intervals. Steps at which the ascendant formula fails (extreme
// latitudes) are skipped; if every step fails, an empty slice is
// returned.
func ComputeLagnam(p ephemeris.Provider, sunriseJD, lat, lon float64) []jdRasiInterval {
	type sample struct {
		jd   float64
		rasi limbs.RasiInfo
		ok   bool
	}

	var samples []sample
	for jd := sunriseJD; jd <= sunriseJD+1.0+1e-9; jd += lagnamStepJD {
		asc := p.Ascendant(jd, lat, lon)
		if math.IsNaN(asc) || math.IsInf(asc, 0) {
			samples = append(samples, sample{jd: jd, ok: false})
			continue
		}
		samples = append(samples, sample{jd: jd, rasi: limbs.RasiAt(asc), ok: true})
	}

	var intervals []jdRasiInterval
	var current *jdRasiInterval
	for _, s := range samples {
		if !s.ok {
			continue
		}
		if current != nil && current.RasiIndex == s.rasi.Index {
			continue
		}
		if current != nil {
			// Close the completed interval exactly where the new one
			// starts, so consecutive intervals abut with no gap.
			current.EndJD = s.jd
			intervals = append(intervals, *current)
		}
		current = &jdRasiInterval{
			RasiIndex: s.rasi.Index,
			RasiName:  s.rasi.Name,
			StartJD:   s.jd,
			EndJD:     s.jd,
		}
	}
	if current != nil {
		intervals = append(intervals, *current)
	}
	// The final interval closes at the end of the walk.
	if len(intervals) > 0 {
		intervals[len(intervals)-1].EndJD = sunriseJD + 1.0
	}
	return intervals
}
