package ephemeris

import (
	"math"
	"time"
)

// analyticProvider is a pure-Go, dependency-free Provider. It adapts the
// truncated periodic-term Sun/Moon ecliptic-longitude series (accurate to
// ~0.01° for the Sun and ~0.3-0.5° for the Moon, sufficient to resolve
// tithi boundaries to the minute) together with a declination-based
// sunrise/sunset formula and a sidereal-time-derived ascendant.
type analyticProvider struct{}

// NewAnalytic returns the built-in analytic ephemeris provider. It never
// needs on-disk data and is safe for concurrent use (it holds no state).
func NewAnalytic() Provider {
	return analyticProvider{}
}

func julianCenturies(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

// sunEclipticLongitude returns the Sun's tropical ecliptic longitude in
// degrees for Julian centuries T since J2000.0.
func sunEclipticLongitude(T float64) float64 {
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T

	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	Mrad := degToRad(NormalizeDegrees(M))

	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	return NormalizeDegrees(L0 + C)
}

// moonEclipticLongitude returns the Moon's tropical ecliptic longitude in
// degrees for Julian centuries T since J2000.0, using the dominant terms
// of the ELP2000 series (Meeus ch. 47).
func moonEclipticLongitude(T float64) float64 {
	L := 218.3164477 +
		481267.88123421*T -
		0.0015786*T*T +
		T*T*T/538841 -
		T*T*T*T/65194000

	D := 297.8501921 +
		445267.1114034*T -
		0.0018819*T*T +
		T*T*T/545868 -
		T*T*T*T/113065000

	Mp := 134.9633964 +
		477198.8675055*T +
		0.0087414*T*T +
		T*T*T/69699 -
		T*T*T*T/14712000

	Drad := degToRad(NormalizeDegrees(D))
	Mprad := degToRad(NormalizeDegrees(Mp))

	lambdaMoon := L +
		6.289*math.Sin(Mprad) +
		1.274*math.Sin(2*Drad-Mprad) +
		0.658*math.Sin(2*Drad) +
		0.214*math.Sin(2*Mprad) +
		0.110*math.Sin(Drad)

	return NormalizeDegrees(lambdaMoon)
}

// obliquity returns the mean obliquity of the ecliptic in degrees (IAU formula).
func obliquity(T float64) float64 {
	return 23.439291111 - 0.013004167*T - 0.00000164*T*T + 0.000000504*T*T*T
}

func (analyticProvider) SunLon(jd float64) float64 {
	T := julianCenturies(jd)
	return NormalizeDegrees(sunEclipticLongitude(T) - lahiriAyanamsa(jd))
}

func (analyticProvider) MoonLon(jd float64) float64 {
	T := julianCenturies(jd)
	return NormalizeDegrees(moonEclipticLongitude(T) - lahiriAyanamsa(jd))
}

func (p analyticProvider) SunMoon(jd float64) (sun, moon float64) {
	T := julianCenturies(jd)
	aya := lahiriAyanamsa(jd)
	return NormalizeDegrees(sunEclipticLongitude(T) - aya), NormalizeDegrees(moonEclipticLongitude(T) - aya)
}

func (analyticProvider) Ayanamsa(jd float64) float64 {
	return lahiriAyanamsa(jd)
}

// equationOfTimeMinutes returns the equation of time in minutes for the
// UTC instant t: the difference between apparent and mean solar time.
func equationOfTimeMinutes(t time.Time) float64 {
	jd := JDFromTime(t)
	T := julianCenturies(jd)

	L0 := NormalizeDegrees(280.46646 + T*(36000.76983+T*0.0003032))
	M := NormalizeDegrees(357.52911 + T*(35999.05029-T*0.0001537))
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)
	eps0 := obliquity(T)

	y := math.Tan(degToRad(eps0)/2) * math.Tan(degToRad(eps0)/2)
	Mrad := degToRad(M)
	L0rad := degToRad(L0)

	eqTime := y*math.Sin(2*L0rad) -
		2*e*math.Sin(Mrad) +
		4*e*y*math.Sin(Mrad)*math.Cos(2*L0rad) -
		0.5*y*y*math.Sin(4*L0rad) -
		1.25*e*e*math.Sin(2*Mrad)

	return radToDeg(eqTime) * 4
}

// solarDeclination returns the Sun's geometric declination in degrees for
// the given day-of-year, using the same formula the teacher's sunrise
// estimator used for the tropical case; valid year-round to the
// precision sunrise/sunset needs.
func solarDeclination(dayOfYear float64) float64 {
	innerAngle := degToRad(356.6 + 0.9856*dayOfYear)
	outerAngle := degToRad(278.97 + 0.9856*dayOfYear + 1.9165*math.Sin(innerAngle))
	return radToDeg(math.Asin(0.39785 * math.Sin(outerAngle)))
}

// riseSet computes the sunrise or sunset JD (geometric center, horizon =
// 90 degrees) for the UT day containing jd. ok is false for polar
// day/night, in which case the caller should fall back to the midpoint
// of astronomical twilight (±18° below horizon, averaged).
func riseSet(jd, lat, lon float64, wantSunset bool) (result float64, ok bool) {
	dayStart := math.Floor(jd-0.5) + 0.5 // 0h UT of the UT day containing jd
	t := TimeFromJD(dayStart)
	dayOfYear := float64(t.YearDay())

	declDeg := solarDeclination(dayOfYear)
	latRad := degToRad(lat)
	declRad := degToRad(declDeg)

	cosH := -math.Tan(latRad) * math.Tan(declRad)
	if cosH < -1.0 || cosH > 1.0 {
		return 0, false
	}

	hourAngleHours := radToDeg(math.Acos(cosH)) / 15.0
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	eotMinutes := equationOfTimeMinutes(noon)

	solarNoonUTCMinutes := 720.0 - lon*4.0 - eotMinutes
	offsetMinutes := hourAngleHours * 60.0

	var eventMinutes float64
	if wantSunset {
		eventMinutes = solarNoonUTCMinutes + offsetMinutes
	} else {
		eventMinutes = solarNoonUTCMinutes - offsetMinutes
	}

	eventJD := dayStart + eventMinutes/1440.0
	return eventJD, true
}

// twilightMidpoint returns the midpoint of astronomical twilight (sun at
// -18°) for the civil day containing jd, used as the NoDiurnalEvent
// sentinel when no true sunrise/sunset exists.
func twilightMidpoint(jd, lat float64, wantSunset bool) float64 {
	dayStart := math.Floor(jd-0.5) + 0.5
	t := TimeFromJD(dayStart)
	dayOfYear := float64(t.YearDay())

	declDeg := solarDeclination(dayOfYear)
	latRad := degToRad(lat)
	declRad := degToRad(declDeg)

	cosH := (math.Sin(degToRad(-18)) - math.Sin(latRad)*math.Sin(declRad)) /
		(math.Cos(latRad) * math.Cos(declRad))
	if cosH < -1 {
		cosH = -1
	} else if cosH > 1 {
		cosH = 1
	}
	hourAngleHours := radToDeg(math.Acos(cosH)) / 15.0

	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	eotMinutes := equationOfTimeMinutes(noon)
	solarNoonUTCMinutes := 720.0 - eotMinutes

	var eventMinutes float64
	if wantSunset {
		eventMinutes = solarNoonUTCMinutes + hourAngleHours*60.0
	} else {
		eventMinutes = solarNoonUTCMinutes - hourAngleHours*60.0
	}
	return dayStart + eventMinutes/1440.0
}

func (analyticProvider) Sunrise(jd, lat, lon float64) (float64, bool) {
	return riseSet(jd, lat, lon, false)
}

func (analyticProvider) Sunset(jd, lat, lon float64) (float64, bool) {
	return riseSet(jd, lat, lon, true)
}

// TwilightMidpointSunrise returns the §4.2 NoDiurnalEvent sentinel for a
// missing sunrise: the midpoint of astronomical twilight.
func TwilightMidpointSunrise(jd, lat float64) float64 {
	return twilightMidpoint(jd, lat, false)
}

// TwilightMidpointSunset mirrors TwilightMidpointSunrise for sunset.
func TwilightMidpointSunset(jd, lat float64) float64 {
	return twilightMidpoint(jd, lat, true)
}

// greenwichMeanSiderealTime returns GMST in degrees for the given Julian Day.
func greenwichMeanSiderealTime(jd float64) float64 {
	jd0 := math.Floor(jd-0.5) + 0.5
	S := jd0 - 2451545.0
	T := S / 36525.0

	gmst := 6.697374558 + 2400.0513369*T + 0.0000258622*T*T - 1.7222e-9*T*T*T

	ut := (jd - jd0) * 24.0
	gmst += 1.00273790935 * ut

	gmst = math.Mod(gmst, 24)
	if gmst < 0 {
		gmst += 24
	}
	return gmst * 15.0
}

// localSiderealTimeDeg returns local sidereal time in degrees (= right
// ascension of the local meridian, RAMC) for a JD and east-positive
// longitude in degrees.
func localSiderealTimeDeg(jd, lonDeg float64) float64 {
	return NormalizeDegrees(greenwichMeanSiderealTime(jd) + lonDeg)
}

// tropicalAscendant returns the tropical ecliptic longitude of the
// eastern horizon (ascendant) for a JD, latitude and east-positive
// longitude in degrees, using the standard RAMC/obliquity formula.
func tropicalAscendant(jd, lat, lonDeg float64) float64 {
	T := julianCenturies(jd)
	eps := degToRad(obliquity(T))
	ramc := degToRad(localSiderealTimeDeg(jd, lonDeg))
	phi := degToRad(lat)

	y := math.Cos(ramc)
	x := -(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps))
	asc := radToDeg(math.Atan2(y, x))
	return NormalizeDegrees(asc)
}

func (analyticProvider) Ascendant(jd, lat, lon float64) float64 {
	return NormalizeDegrees(tropicalAscendant(jd, lat, lon) - lahiriAyanamsa(jd))
}
