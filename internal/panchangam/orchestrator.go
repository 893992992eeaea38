package panchangam

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/vsubramaniam/panchangam/internal/config"
	"github.com/vsubramaniam/panchangam/internal/log"
	"github.com/vsubramaniam/panchangam/internal/types"
	"github.com/vsubramaniam/panchangam/pkg/calendar"
	"github.com/vsubramaniam/panchangam/pkg/ephemeris"
	"github.com/vsubramaniam/panchangam/pkg/limbs"
)

// Request is the single engine entry point's input (§6).
type Request struct {
	Date           string
	Latitude       float64
	Longitude      float64
	Timezone       string
	BirthNakshatra string // optional; empty means not supplied
}

// Engine bundles the dependencies the orchestrator needs: the ephemeris
// provider, the festival catalog, and the Tamil-day rule selection.
type Engine struct {
	Provider ephemeris.Provider
	Catalog  Catalog
	TamilDay config.TamilDayRule
}

func tamilModeFromConfig(rule config.TamilDayRule) TamilDateMode {
	if rule == config.TamilDayRuleDegree {
		return TamilDateDegreeApprox
	}
	return TamilDateCivilSankranti
}

// Daily is the C9 orchestrator entry point: parse the request, run the
// ephemeris/limb/segment/lagnam/festival/chandrashtama pipeline in the
// §4.9 order, and assemble a rendered DailyReport. Cancellation is
// observed between steps via ctx.
func (e Engine) Daily(ctx context.Context, req Request) (types.DailyReport, error) {
	corrID := uuid.New().String()
	log.Infow("daily panchangam request", "correlationId", corrID, "date", req.Date, "lat", req.Latitude, "lon", req.Longitude, "zone", req.Timezone)

	if req.Latitude < -90 || req.Latitude > 90 {
		return types.DailyReport{}, fmt.Errorf("latitude %v out of range [-90,90]: %w", req.Latitude, types.ErrInvalidInput)
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return types.DailyReport{}, fmt.Errorf("longitude %v out of range [-180,180]: %w", req.Longitude, types.ErrInvalidInput)
	}

	startOfDay, err := calendar.ToJD(req.Date, req.Timezone)
	if err != nil {
		return types.DailyReport{}, fmt.Errorf("parsing request date/zone: %w: %v", types.ErrInvalidInput, err)
	}

	if err := ctx.Err(); err != nil {
		return types.DailyReport{}, err
	}

	// Sunrise and Sunset answer for the UT day containing the JD they are
	// given, so they are asked about local noon, which falls on the
	// requested date in UT for zones less than twelve hours from UTC.
	localNoon := startOfDay + 0.5
	sunriseJD, sunriseOK := e.Provider.Sunrise(localNoon, req.Latitude, req.Longitude)
	sunsetJD, sunsetOK := e.Provider.Sunset(localNoon, req.Latitude, req.Longitude)
	incomplete := !sunriseOK || !sunsetOK
	if !sunriseOK {
		sunriseJD = ephemeris.TwilightMidpointSunrise(localNoon, req.Latitude)
		log.Warnw("no sunrise on requested date; using twilight midpoint", "correlationId", corrID, "date", req.Date)
	}
	if !sunsetOK {
		sunsetJD = ephemeris.TwilightMidpointSunset(localNoon, req.Latitude)
		log.Warnw("no sunset on requested date; using twilight midpoint", "correlationId", corrID, "date", req.Date)
	}

	if err := ctx.Err(); err != nil {
		return types.DailyReport{}, err
	}

	tamilDate := ComputeTamilDate(e.Provider, sunriseJD, sunsetJD, tamilModeFromConfig(e.TamilDay))

	tithi := ComputeTithi(e.Provider, sunriseJD)
	nakshatra := ComputeNakshatra(e.Provider, sunriseJD)
	yoga := ComputeYoga(e.Provider, sunriseJD)
	karana := ComputeKarana(e.Provider, sunriseJD)

	moonLonAtSunrise := e.Provider.MoonLon(sunriseJD)
	moonRasi := limbs.RasiAt(moonLonAtSunrise)

	if err := ctx.Err(); err != nil {
		return types.DailyReport{}, err
	}

	lagnamIntervals := ComputeLagnam(e.Provider, sunriseJD, req.Latitude, req.Longitude)

	weekday, err := calendar.WeekdayIndex(req.Date, req.Timezone)
	if err != nil {
		return types.DailyReport{}, fmt.Errorf("computing weekday: %w: %v", types.ErrInvalidInput, err)
	}

	rahu := ComputeRahuKalam(sunriseJD, sunsetJD, weekday)
	yama := ComputeYamaGandam(sunriseJD, sunsetJD, weekday)
	kuligai := ComputeKuligai(sunriseJD, sunsetJD, weekday)
	gowri := ComputeGowriNeram(sunriseJD, sunsetJD, weekday)
	nalla := NallaNeram(gowri)

	if err := ctx.Err(); err != nil {
		return types.DailyReport{}, err
	}

	gregYear, gregMonth, gregDay, err := gregorianDate(req.Date)
	if err != nil {
		return types.DailyReport{}, fmt.Errorf("parsing request date: %w: %v", types.ErrInvalidInput, err)
	}
	festivals := MatchFestivals(e.Catalog, tithi.Info, nakshatra.Info, tamilDate.Month.Index, gregMonth, gregDay)
	tamilYearName := limbs.TamilYearName(gregYear)
	tamilYearNumber := gregYear + 3101

	var chandra *types.Chandrashtama
	if req.BirthNakshatra != "" {
		result, ok := ComputeChandrashtama(e.Provider, sunriseJD, req.BirthNakshatra)
		if !ok {
			return types.DailyReport{}, fmt.Errorf("birth nakshatra %q unrecognized: %w", req.BirthNakshatra, types.ErrInvalidInput)
		}
		rendered, err := renderChandrashtama(result, req.Timezone)
		if err != nil {
			return types.DailyReport{}, err
		}
		chandra = &rendered
	}

	report, err := assembleReport(req, startOfDay, sunriseJD, sunsetJD, incomplete, tithi, nakshatra, yoga, karana, moonRasi, tamilDate, tamilYearName, tamilYearNumber, rahu, yama, kuligai, gowri, nalla, lagnamIntervals, festivals, chandra)
	if err != nil {
		return types.DailyReport{}, err
	}

	log.Infow("daily panchangam request complete", "correlationId", corrID, "incomplete", incomplete)
	return report, nil
}

// gregorianDate extracts the Gregorian year/month/day from a YYYY-MM-DD
// string without reparsing through a zone (the civil digits are what
// the fixed-date festival rules and the Tamil-year cycle match against,
// regardless of zone).
func gregorianDate(dateStr string) (year, month, day int, err error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected YYYY-MM-DD, got %q", dateStr)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, err
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, err
	}
	return year, month, day, nil
}
