package ephemeris

// lahiriJ2000Deg is the Lahiri (Chitrapaksha) ayanamsa at J2000.0 (JD
// 2451545.0), in degrees: 23°51'11".
const lahiriJ2000Deg = 23.85305556

// precessionDegPerCentury is the constant lunisolar precession rate used
// to extrapolate the Lahiri ayanamsa away from J2000.0, in degrees per
// Julian century (50.2788"/year).
const precessionDegPerCentury = 1.396633

// lahiriAyanamsa returns the Lahiri (Chitrapaksha) ayanamsa in degrees at
// the given Julian Day: the angular offset between the tropical and
// sidereal zodiacs. This is a linear extrapolation from the J2000.0
// reference value at the standard precession rate, the same order of
// approximation as the mean-obliquity polynomial in analytic.go; it is
// not the full trigonometric series the Swiss Ephemeris ships, but is
// accurate to a few arcseconds over the multi-century range normal civil
// dates fall in.
func lahiriAyanamsa(jd float64) float64 {
	T := julianCenturies(jd)
	return lahiriJ2000Deg + precessionDegPerCentury*T
}
