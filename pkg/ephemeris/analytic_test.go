package ephemeris

import (
	"math"
	"testing"
	"time"
)

func TestSunMoonRangeInvariant(t *testing.T) {
	p := NewAnalytic()
	base := JDFromTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	for i := 0; i < 730; i++ {
		jd := base + float64(i)*0.5
		sun, moon := p.SunMoon(jd)
		if sun < 0 || sun >= 360 {
			t.Fatalf("jd %.2f: sun longitude %.4f out of [0,360)", jd, sun)
		}
		if moon < 0 || moon >= 360 {
			t.Fatalf("jd %.2f: moon longitude %.4f out of [0,360)", jd, moon)
		}
	}
}

func TestSunLonMatchesSunMoon(t *testing.T) {
	p := NewAnalytic()
	jd := JDFromTime(time.Date(2025, 6, 21, 6, 0, 0, 0, time.UTC))
	sun, moon := p.SunMoon(jd)
	if math.Abs(sun-p.SunLon(jd)) > 1e-9 {
		t.Errorf("SunLon disagrees with SunMoon: %.6f vs %.6f", p.SunLon(jd), sun)
	}
	if math.Abs(moon-p.MoonLon(jd)) > 1e-9 {
		t.Errorf("MoonLon disagrees with SunMoon: %.6f vs %.6f", p.MoonLon(jd), moon)
	}
}

func TestAyanamsaIsPositiveAndGrowing(t *testing.T) {
	jd2000 := 2451545.0
	jd2025 := JDFromTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	a2000 := lahiriAyanamsa(jd2000)
	a2025 := lahiriAyanamsa(jd2025)

	if a2000 < 20 || a2000 > 25 {
		t.Errorf("ayanamsa at J2000 = %.4f, expected near 23.85", a2000)
	}
	if a2025 <= a2000 {
		t.Errorf("ayanamsa should increase over time: a2000=%.4f a2025=%.4f", a2000, a2025)
	}
}

func TestSunriseBeforeSunsetMidLatitude(t *testing.T) {
	p := NewAnalytic()
	jd := JDFromTime(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))

	rise, ok := p.Sunrise(jd, 13.0827, 80.2707)
	if !ok {
		t.Fatal("expected sunrise at Chennai latitude")
	}
	set, ok := p.Sunset(jd, 13.0827, 80.2707)
	if !ok {
		t.Fatal("expected sunset at Chennai latitude")
	}
	if set <= rise {
		t.Errorf("sunset JD %.6f should be after sunrise JD %.6f", set, rise)
	}
	if set-rise < 0.3 || set-rise > 0.6 {
		t.Errorf("day length %.4f days is not plausible near the equinox", set-rise)
	}
}

func TestPolarSummerHasNoSunset(t *testing.T) {
	p := NewAnalytic()
	jd := JDFromTime(time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC))

	_, ok := p.Sunset(jd, 78.0, 15.0)
	if ok {
		t.Error("expected no sunset at 78N on the June solstice")
	}
}

func TestAscendantRange(t *testing.T) {
	p := NewAnalytic()
	jd := JDFromTime(time.Date(2025, 1, 15, 1, 0, 0, 0, time.UTC))

	for h := 0; h < 24; h++ {
		asc := p.Ascendant(jd+float64(h)/24.0, 13.0827, 80.2707)
		if asc < 0 || asc >= 360 {
			t.Errorf("hour %d: ascendant %.4f out of [0,360)", h, asc)
		}
	}
}

func TestAscendantAdvancesOverADay(t *testing.T) {
	// The ascendant should complete (approximately) one full rotation
	// over 24 hours at a mid-latitude, non-polar site.
	p := NewAnalytic()
	jd := JDFromTime(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	first := p.Ascendant(jd, 13.0827, 80.2707)
	var totalAdvance float64
	prev := first
	for i := 1; i <= 144; i++ {
		cur := p.Ascendant(jd+float64(i)/144.0, 13.0827, 80.2707)
		delta := cur - prev
		if delta < -180 {
			delta += 360
		} else if delta > 180 {
			delta -= 360
		}
		totalAdvance += delta
		prev = cur
	}
	if totalAdvance < 300 || totalAdvance > 420 {
		t.Errorf("ascendant advanced %.2f degrees over 24h, expected roughly 360", totalAdvance)
	}
}
