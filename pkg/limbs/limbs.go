package limbs

import "math"

const (
	degreesPerTithi     = 12.0
	degreesPerNakshatra = 360.0 / 27.0
	degreesPerPada      = degreesPerNakshatra / 4.0
	degreesPerYoga      = 360.0 / 27.0
	degreesPerKarana    = 6.0
	degreesPerRasi      = 30.0
)

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// TithiAt returns the tithi whose 12-degree elongation band contains the
// given Moon-minus-Sun elongation (already normalized to [0,360)).
// Index runs 1..30.
func TithiAt(elongation float64) TithiInfo {
	elongation = normalize(elongation)
	index := int(elongation/degreesPerTithi) + 1
	if index > 30 {
		index = 30
	}

	paksha := Shukla
	pos := index - 1 // 0..29
	if index > 15 {
		paksha = Krishna
		pos = index - 16 // 0..14 within the waning fortnight
	}

	name := tithiBaseNames[pos]
	if pos == 14 {
		if paksha == Krishna {
			name = amavasya
		} else {
			name = tithiBaseNames[14] // Purnima
		}
	}

	return TithiInfo{Index: index, Name: name, Paksha: paksha}
}

// NakshatraAt returns the nakshatra and pada (1-4) containing the given
// sidereal Moon longitude. Index runs 1..27.
func NakshatraAt(moonLon float64) NakshatraInfo {
	moonLon = normalize(moonLon)
	index := int(moonLon/degreesPerNakshatra) + 1
	if index > 27 {
		index = 27
	}
	offsetInNakshatra := moonLon - float64(index-1)*degreesPerNakshatra
	pada := int(offsetInNakshatra/degreesPerPada) + 1
	if pada > 4 {
		pada = 4
	}
	entry := nakshatraTable[index-1]
	return NakshatraInfo{Index: index, Name: entry.Name, Pada: pada, Lord: entry.Lord}
}

// YogaAt returns the yoga containing the given sum of sidereal Sun and
// Moon longitudes (already normalized to [0,360)). Index runs 1..27.
func YogaAt(sunMoonSum float64) YogaInfo {
	sunMoonSum = normalize(sunMoonSum)
	index := int(sunMoonSum/degreesPerYoga) + 1
	if index > 27 {
		index = 27
	}
	entry := yogaTable[index-1]
	return YogaInfo{Index: index, Name: entry.Name, Nature: entry.Nature}
}

// KaranaAt returns the karana occupying the 6-degree elongation slot (of
// 60 total) that contains the given elongation. Slot 1 is the fixed
// Kimstughna, slots 2..57 cycle through the 7 movable karanas eight
// times, and slots 58-60 are the fixed Shakuni, Chatushpada, and Naga.
// The returned Index (1..11) identifies the named variant: 1-7 for the
// movable cycle in Bava..Vishti order, 8-11 for Kimstughna, Shakuni,
// Chatushpada, Naga.
func KaranaAt(elongation float64) KaranaInfo {
	elongation = normalize(elongation)
	slot := int(elongation/degreesPerKarana) + 1
	if slot > 60 {
		slot = 60
	}

	switch slot {
	case 1:
		return KaranaInfo{Index: 8, Slot: slot, Name: karanaKimstughna, Type: Fixed}
	case 58:
		return KaranaInfo{Index: 9, Slot: slot, Name: karanaShakuni, Type: Fixed}
	case 59:
		return KaranaInfo{Index: 10, Slot: slot, Name: karanaChatushpada, Type: Fixed}
	case 60:
		return KaranaInfo{Index: 11, Slot: slot, Name: karanaNaga, Type: Fixed}
	default:
		cycleIndex := (slot - 2) % 7
		return KaranaInfo{Index: cycleIndex + 1, Slot: slot, Name: karanaMovable[cycleIndex], Type: Movable}
	}
}

// RasiAt returns the zodiac sign containing the given sidereal
// longitude. Index runs 1..12.
func RasiAt(siderealLon float64) RasiInfo {
	siderealLon = normalize(siderealLon)
	index := int(siderealLon/degreesPerRasi) + 1
	if index > 12 {
		index = 12
	}
	entry := rasiTable[index-1]
	return RasiInfo{
		Index:       index,
		Name:        entry.Name,
		Lord:        entry.Lord,
		StartDegree: float64(index-1) * degreesPerRasi,
	}
}

// TamilMonthAt returns the Tamil solar month containing the given
// sidereal Sun longitude. Index runs 1..12. The month boundaries are
// identical to the Rasi boundaries: month i begins exactly when Sun
// enters rasi i.
func TamilMonthAt(siderealSunLon float64) TamilMonthInfo {
	siderealSunLon = normalize(siderealSunLon)
	index := int(siderealSunLon/degreesPerRasi) + 1
	if index > 12 {
		index = 12
	}
	return TamilMonthInfo{
		Index:          index,
		Name:           tamilMonthTable[index-1],
		SunStartDegree: float64(index-1) * degreesPerRasi,
	}
}

// TamilDayOfMonth returns the 1-based day-of-month within the current
// Tamil solar month, approximated from the Sun's position within its
// current 30-degree rasi span.
func TamilDayOfMonth(siderealSunLon float64) int {
	siderealSunLon = normalize(siderealSunLon)
	offset := math.Mod(siderealSunLon, degreesPerRasi)
	return int(offset) + 1
}

// TamilYearName returns the name of the 60-year Samvatsara cycle entry
// for the given Gregorian year, using the conventional epoch alignment
// where the year 2000 CE falls on cycle index 23 (zero-based, Vikruti).
func TamilYearName(gregorianYear int) string {
	const epochIndex = 23
	idx := (epochIndex + (gregorianYear - 2000)) % 60
	if idx < 0 {
		idx += 60
	}
	return tamilYearCycle[idx]
}

// GowriNameAt returns the Gowri-segment planet name for the nth segment
// (1-based, 1..8) of a weekday whose first segment name starts at cycle
// offset weekday (0-6, Sunday=0).
func GowriNameAt(weekday, segment int) BilingualName {
	idx := (segment - 1 + weekday) % 8
	if idx < 0 {
		idx += 8
	}
	return gowriPlanetNames[idx]
}
