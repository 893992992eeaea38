// Package ephemeris computes sidereal positions of the Sun and Moon, the
// Lahiri ayanamsa, sunrise/sunset, and the rising ecliptic degree
// (ascendant) for a given Julian Day and observer location.
//
// All longitudes returned by this package are sidereal (Lahiri /
// Chitrapaksha), not tropical: tropical ecliptic longitude is computed
// analytically and the ayanamsa for that instant is subtracted.
package ephemeris

import (
	"math"
	"time"
)

// Provider is the capability every ephemeris backend must expose. The
// engine depends only on this interface; concrete backends (the analytic
// one shipped here, or a future high-precision file-backed one) are
// selected once at startup by Init.
type Provider interface {
	// SunLon returns the Sun's sidereal ecliptic longitude in degrees, [0,360).
	SunLon(jd float64) float64
	// MoonLon returns the Moon's sidereal ecliptic longitude in degrees, [0,360).
	MoonLon(jd float64) float64
	// SunMoon returns both longitudes in one call, avoiding duplicate work.
	SunMoon(jd float64) (sun, moon float64)
	// Sunrise returns the JD of geometric solar-center horizon crossing at
	// the given latitude/longitude for the civil day containing jd. ok is
	// false when no sunrise occurs (polar night/day); callers should then
	// apply the §4.2 twilight-midpoint fallback.
	Sunrise(jd, lat, lon float64) (riseJD float64, ok bool)
	// Sunset mirrors Sunrise.
	Sunset(jd, lat, lon float64) (setJD float64, ok bool)
	// Ayanamsa returns the Lahiri ayanamsa in degrees at the given JD.
	Ayanamsa(jd float64) float64
	// Ascendant returns the sidereal ecliptic longitude of the eastern
	// horizon point (Lagnam) at the given JD, latitude and longitude.
	Ascendant(jd, lat, lon float64) float64
}

// JDFromTime converts a UTC time.Time to a Julian Day.
func JDFromTime(t time.Time) float64 {
	return 2440587.5 + float64(t.UnixNano())/8.64e13
}

// TimeFromJD converts a Julian Day to a UTC time.Time.
func TimeFromJD(jd float64) time.Time {
	unixSeconds := (jd - 2440587.5) * 86400.0
	sec := int64(unixSeconds)
	nsec := int64((unixSeconds - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}

// NormalizeDegrees wraps an angle to [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
