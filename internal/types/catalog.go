package types

import "github.com/vsubramaniam/panchangam/pkg/limbs"

// TithiRule matches on Tamil month (0 = any) and tithi index.
type TithiRule struct {
	Name   limbs.BilingualName
	Type   string
	Month  int // 0 = any, else 1..12
	Tithi  int // 1..30
	Paksha string
}

// NakshatraRule matches on Tamil month (0 = any) and nakshatra index.
type NakshatraRule struct {
	Name      limbs.BilingualName
	Type      string
	Month     int // 0 = any, else 1..12
	Nakshatra int // 1..27
}

// FixedDateRule matches on the Gregorian month/day of the request date.
type FixedDateRule struct {
	Name  limbs.BilingualName
	Type  string
	Month int // 1..12
	Day   int // 1..31
}

// Catalog bundles the three externally-supplied festival rule tables
// (§4.8).
type Catalog struct {
	TithiRules     []TithiRule
	NakshatraRules []NakshatraRule
	FixedRules     []FixedDateRule
}
