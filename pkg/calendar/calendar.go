// Package calendar converts between civil dates (YYYY-MM-DD in an IANA
// time zone) and Julian Day, and renders JDs back to zoned clock strings.
package calendar

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ErrInvalidZone is returned when an IANA zone identifier cannot be loaded.
type ErrInvalidZone struct {
	Zone string
	Err  error
}

func (e *ErrInvalidZone) Error() string {
	return fmt.Sprintf("invalid timezone %q: %v", e.Zone, e.Err)
}

func (e *ErrInvalidZone) Unwrap() error { return e.Err }

// ErrInvalidDate is returned when a date string cannot be parsed as YYYY-MM-DD.
type ErrInvalidDate struct {
	Date string
	Err  error
}

func (e *ErrInvalidDate) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Date, e.Err)
}

func (e *ErrInvalidDate) Unwrap() error { return e.Err }

// LoadZone loads an IANA time zone, wrapping failures as ErrInvalidZone.
func LoadZone(zone string) (*time.Location, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, &ErrInvalidZone{Zone: zone, Err: err}
	}
	return loc, nil
}

// ToJD interprets dateStr as YYYY-MM-DD at 00:00:00 in the given IANA
// zone, converts to UTC, and returns the corresponding Julian Day.
func ToJD(dateStr, zone string) (float64, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return 0, err
	}
	t, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return 0, &ErrInvalidDate{Date: dateStr, Err: err}
	}
	return julian.TimeToJD(t.UTC()), nil
}

// StartOfDay is an alias for ToJD: the civil date's 00:00:00 instant in
// the given zone, as a Julian Day. Kept distinct from ToJD in the public
// API because callers conceptually want "the day", not "a parsed date".
func StartOfDay(dateStr, zone string) (float64, error) {
	return ToJD(dateStr, zone)
}

// ZonedCivil is a Julian Day rendered into a specific IANA zone's civil
// calendar and clock.
type ZonedCivil struct {
	Zone string
	Time time.Time
}

// FromJD converts a Julian Day to UTC and then to the given zone's civil time.
func FromJD(jd float64, zone string) (ZonedCivil, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return ZonedCivil{}, err
	}
	t := julian.JDToTime(jd)
	return ZonedCivil{Zone: zone, Time: t.In(loc)}, nil
}

// WeekdayIndex returns the 0 (Sunday) .. 6 (Saturday) weekday of the
// civil date dateStr in the given zone.
func WeekdayIndex(dateStr, zone string) (int, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return 0, err
	}
	t, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return 0, &ErrInvalidDate{Date: dateStr, Err: err}
	}
	return int(t.Weekday()), nil
}

// WeekdayIndexAt returns the 0..6 weekday of the zoned rendering of jd.
func WeekdayIndexAt(jd float64, zone string) (int, error) {
	zc, err := FromJD(jd, zone)
	if err != nil {
		return 0, err
	}
	return int(zc.Time.Weekday()), nil
}

// FormatHHMMSS renders the Julian Day as HH:MM:SS in the given zone.
func FormatHHMMSS(jd float64, zone string) (string, error) {
	zc, err := FromJD(jd, zone)
	if err != nil {
		return "", err
	}
	return zc.Time.Format("15:04:05"), nil
}

// FormatHHMM renders the Julian Day as HH:MM in the given zone.
func FormatHHMM(jd float64, zone string) (string, error) {
	zc, err := FromJD(jd, zone)
	if err != nil {
		return "", err
	}
	return zc.Time.Format("15:04"), nil
}
