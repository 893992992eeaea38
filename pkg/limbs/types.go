// Package limbs holds the fixed classical tables and the pure
// angle-to-index partitioning arithmetic for the five Panchangam limbs
// plus Rasi and the Tamil solar calendar. Nothing here touches a clock —
// every function is a deterministic function of an angle or index.
package limbs

// BilingualName is an opaque English/Tamil label pair. The engine treats
// it as a value with no semantics of its own.
type BilingualName struct {
	En string
	Ta string
}

// Paksha identifies the lunar fortnight.
type Paksha string

const (
	Shukla  Paksha = "shukla"
	Krishna Paksha = "krishna"
)

// YogaNature classifies a Yoga as auspicious or inauspicious.
type YogaNature string

const (
	Auspicious   YogaNature = "auspicious"
	Inauspicious YogaNature = "inauspicious"
)

// KaranaType distinguishes the 7 movable (chara) karanas, which repeat
// each lunation, from the 4 fixed (sthira) karanas, which occur exactly
// once.
type KaranaType string

const (
	Movable KaranaType = "movable"
	Fixed   KaranaType = "fixed"
)

// TithiInfo is the pure, angle-derived part of a tithi: everything
// except the crossing-solved end time, which is a C5 concern. Index
// runs 1..30; paksha is shukla iff index <= 15.
type TithiInfo struct {
	Index  int
	Name   BilingualName
	Paksha Paksha
}

// NakshatraInfo is the pure, angle-derived part of a nakshatra. Index
// runs 1..27, Pada 1..4.
type NakshatraInfo struct {
	Index int
	Name  BilingualName
	Pada  int
	Lord  BilingualName
}

// YogaInfo is the pure, angle-derived part of a yoga. Index runs 1..27.
type YogaInfo struct {
	Index  int
	Name   BilingualName
	Nature YogaNature
}

// KaranaInfo is the pure, angle-derived part of a karana. Index is the
// named-variant index (1..11, the 7 movable then the 4 fixed); Slot is
// the raw 1..60 half-tithi position within the lunation.
type KaranaInfo struct {
	Index int
	Slot  int
	Name  BilingualName
	Type  KaranaType
}

// RasiInfo is a zodiac sign: 30 degrees of the ecliptic. Index runs
// 1..12.
type RasiInfo struct {
	Index       int
	Name        BilingualName
	Lord        BilingualName
	StartDegree float64
}

// TamilMonthInfo is one of the 12 Tamil solar months. Index runs 1..12.
type TamilMonthInfo struct {
	Index          int
	Name           BilingualName
	SunStartDegree float64
}
