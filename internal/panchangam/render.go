package panchangam

import (
	"github.com/vsubramaniam/panchangam/internal/types"
	"github.com/vsubramaniam/panchangam/pkg/calendar"
	"github.com/vsubramaniam/panchangam/pkg/limbs"
)

func renderChandrashtama(r chandrashtamaResult, zone string) (types.Chandrashtama, error) {
	if !r.Active {
		return types.Chandrashtama{Active: false}, nil
	}
	start, err := calendar.FormatHHMM(r.StartJD, zone)
	if err != nil {
		return types.Chandrashtama{}, err
	}
	end, err := calendar.FormatHHMM(r.EndJD, zone)
	if err != nil {
		return types.Chandrashtama{}, err
	}
	return types.Chandrashtama{Active: true, StartHHMM: start, EndHHMM: end}, nil
}

func renderDaySegment(s jdSegment, zone string) (types.DaySegment, error) {
	start, err := calendar.FormatHHMM(s.StartJD, zone)
	if err != nil {
		return types.DaySegment{}, err
	}
	end, err := calendar.FormatHHMM(s.EndJD, zone)
	if err != nil {
		return types.DaySegment{}, err
	}
	return types.DaySegment{Start: start, End: end}, nil
}

func renderGowriSegment(s gowriJDSegment, zone string) (types.GowriSegment, error) {
	base, err := renderDaySegment(s.jdSegment, zone)
	if err != nil {
		return types.GowriSegment{}, err
	}
	typ := types.GowriBad
	if s.Good {
		typ = types.GowriGood
	}
	return types.GowriSegment{DaySegment: base, Type: typ, Name: s.Name}, nil
}

func renderLagnam(intervals []jdRasiInterval, zone string) ([]types.LagnamInterval, error) {
	out := make([]types.LagnamInterval, 0, len(intervals))
	for _, iv := range intervals {
		start, err := calendar.FormatHHMM(iv.StartJD, zone)
		if err != nil {
			return nil, err
		}
		end, err := calendar.FormatHHMM(iv.EndJD, zone)
		if err != nil {
			return nil, err
		}
		out = append(out, types.LagnamInterval{
			RasiIndex: iv.RasiIndex,
			RasiName:  iv.RasiName.En,
			StartHHMM: start,
			EndHHMM:   end,
		})
	}
	return out, nil
}

// assembleReport renders every JD-bearing intermediate into the request
// zone and builds the final DailyReport tree.
func assembleReport(
	req Request,
	startOfDay, sunriseJD, sunsetJD float64,
	incomplete bool,
	tithi limbsTithi,
	nakshatra limbsNakshatra,
	yoga limbsYoga,
	karana limbsKarana,
	moonRasi limbs.RasiInfo,
	tamilDate tamilDateResult,
	tamilYearName string,
	tamilYearNumber int,
	rahu, yama, kuligai jdSegment,
	gowri []gowriJDSegment,
	nalla []jdSegment,
	lagnam []jdRasiInterval,
	festivals []types.Festival,
	chandra *types.Chandrashtama,
) (types.DailyReport, error) {
	zone := req.Timezone

	sunriseStr, err := calendar.FormatHHMMSS(sunriseJD, zone)
	if err != nil {
		return types.DailyReport{}, err
	}
	sunsetStr, err := calendar.FormatHHMMSS(sunsetJD, zone)
	if err != nil {
		return types.DailyReport{}, err
	}

	tithiEnd, err := calendar.FormatHHMMSS(tithi.EndJD, zone)
	if err != nil {
		return types.DailyReport{}, err
	}
	nakshatraEnd, err := calendar.FormatHHMMSS(nakshatra.EndJD, zone)
	if err != nil {
		return types.DailyReport{}, err
	}
	yogaEnd, err := calendar.FormatHHMMSS(yoga.EndJD, zone)
	if err != nil {
		return types.DailyReport{}, err
	}
	karanaEnd, err := calendar.FormatHHMMSS(karana.EndJD, zone)
	if err != nil {
		return types.DailyReport{}, err
	}

	rahuRendered, err := renderDaySegment(rahu, zone)
	if err != nil {
		return types.DailyReport{}, err
	}
	yamaRendered, err := renderDaySegment(yama, zone)
	if err != nil {
		return types.DailyReport{}, err
	}
	kuligaiRendered, err := renderDaySegment(kuligai, zone)
	if err != nil {
		return types.DailyReport{}, err
	}

	gowriRendered := make([]types.GowriSegment, 0, len(gowri))
	for _, g := range gowri {
		r, err := renderGowriSegment(g, zone)
		if err != nil {
			return types.DailyReport{}, err
		}
		gowriRendered = append(gowriRendered, r)
	}

	nallaRendered := make([]types.DaySegment, 0, len(nalla))
	for _, n := range nalla {
		r, err := renderDaySegment(n, zone)
		if err != nil {
			return types.DailyReport{}, err
		}
		nallaRendered = append(nallaRendered, r)
	}

	lagnamRendered, err := renderLagnam(lagnam, zone)
	if err != nil {
		return types.DailyReport{}, err
	}

	return types.DailyReport{
		Date:      req.Date,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  zone,

		SunriseHHMMS: sunriseStr,
		SunsetHHMMS:  sunsetStr,
		Incomplete:   incomplete,

		Tithi: types.Tithi{
			TithiInfo: tithi.Info,
			EndJD:     tithi.EndJD,
			EndHHMMS:  tithiEnd,
			NextName:  tithi.NextName,
		},
		Nakshatra: types.Nakshatra{
			NakshatraInfo: nakshatra.Info,
			EndJD:         nakshatra.EndJD,
			EndHHMMS:      nakshatraEnd,
			NextName:      nakshatra.NextName,
		},
		Yoga: types.Yoga{
			YogaInfo: yoga.Info,
			EndJD:    yoga.EndJD,
			EndHHMMS: yogaEnd,
		},
		Karana: types.Karana{
			KaranaInfo: karana.Info,
			EndJD:      karana.EndJD,
			EndHHMMS:   karanaEnd,
			NextName:   karana.NextName,
		},
		MoonRasi: moonRasi,

		Tamil: types.TamilDate{
			Month:      tamilDate.Month,
			DayOfMonth: tamilDate.DayOfMonth,
			YearName:   tamilYearName,
			YearNumber: tamilYearNumber,
		},

		DaySegments: types.DaySegments{
			RahuKalam:  rahuRendered,
			YamaGandam: yamaRendered,
			Kuligai:    kuligaiRendered,
			Gowri:      gowriRendered,
			NallaNeram: nallaRendered,
		},
		Lagnam:    lagnamRendered,
		Festivals: festivals,

		Chandrashtama: chandra,
	}, nil
}
