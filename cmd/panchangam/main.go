// Command panchangam prints the five-limb almanac for a civil date and
// location.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vsubramaniam/panchangam/internal/config"
	"github.com/vsubramaniam/panchangam/internal/log"
	"github.com/vsubramaniam/panchangam/internal/panchangam"
	"github.com/vsubramaniam/panchangam/internal/types"
	"github.com/vsubramaniam/panchangam/pkg/ephemeris"
)

func main() {
	var (
		dateStr        string
		lat            float64
		lon            float64
		zone           string
		birthNakshatra string
		catalogPath    string
		debug          bool
	)

	flag.StringVar(&dateStr, "date", "", "civil date to compute, YYYY-MM-DD (default: today in the given zone)")
	flag.Float64Var(&lat, "lat", 13.0827, "observer latitude, degrees [-90,90]")
	flag.Float64Var(&lon, "lon", 80.2707, "observer longitude, degrees [-180,180]")
	flag.StringVar(&zone, "zone", "Asia/Kolkata", "IANA timezone")
	flag.StringVar(&birthNakshatra, "birth-nakshatra", "", "birth nakshatra, for Chandrashtama (optional)")
	flag.StringVar(&catalogPath, "catalog", "", "festival catalog YAML path (default: "+config.FestivalCatalogEnv+" env; none: no festivals)")
	flag.BoolVar(&debug, "debug", false, "enable development-mode logging")
	flag.Parse()

	if err := log.Init(debug); err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if dateStr == "" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid zone %q: %v\n", zone, err)
			os.Exit(1)
		}
		dateStr = time.Now().In(loc).Format("2006-01-02")
	}

	if catalogPath == "" {
		catalogPath = os.Getenv(config.FestivalCatalogEnv)
	}
	var catalog types.Catalog
	if catalogPath != "" {
		var err error
		catalog, err = config.LoadCatalog(catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading festival catalog: %v\n", err)
			os.Exit(1)
		}
	}

	engineCfg, err := config.Load(os.Getenv("PANCHANGAM_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading engine config: %v\n", err)
		os.Exit(1)
	}

	engine := panchangam.Engine{
		Provider: ephemeris.Default(),
		Catalog:  catalog,
		TamilDay: engineCfg.TamilDayRule,
	}

	report, err := engine.Daily(context.Background(), panchangam.Request{
		Date:           dateStr,
		Latitude:       lat,
		Longitude:      lon,
		Timezone:       zone,
		BirthNakshatra: birthNakshatra,
	})
	if err != nil {
		// Both InvalidInput and EphemerisFailure map to exit code 1;
		// NoDiurnalEvent never reaches here (it's a success-path flag).
		fmt.Fprintf(os.Stderr, "computing panchangam: %v\n", err)
		os.Exit(1)
	}

	printReport(report)
}

func printReport(r types.DailyReport) {
	fmt.Printf("Panchangam for %s (%.4f, %.4f, %s)\n", r.Date, r.Latitude, r.Longitude, r.Timezone)
	if r.Incomplete {
		fmt.Println("  (no sunrise/sunset today; times approximated from twilight)")
	}
	fmt.Printf("  Sunrise: %s   Sunset: %s\n", r.SunriseHHMMS, r.SunsetHHMMS)
	fmt.Printf("  Tithi:      %-20s (%s) until %s, then %s\n", r.Tithi.Name.En, r.Tithi.Paksha, r.Tithi.EndHHMMS, r.Tithi.NextName.En)
	fmt.Printf("  Nakshatra:  %-20s pada %d until %s, then %s\n", r.Nakshatra.Name.En, r.Nakshatra.Pada, r.Nakshatra.EndHHMMS, r.Nakshatra.NextName.En)
	fmt.Printf("  Yoga:       %-20s (%s) until %s\n", r.Yoga.Name.En, r.Yoga.Nature, r.Yoga.EndHHMMS)
	fmt.Printf("  Karana:     %-20s (%s) until %s, then %s\n", r.Karana.Name.En, r.Karana.Type, r.Karana.EndHHMMS, r.Karana.NextName.En)
	fmt.Printf("  Moon Rasi:  %s\n", r.MoonRasi.Name.En)
	fmt.Printf("  Tamil date: %s %d, %s %d\n", r.Tamil.Month.Name.En, r.Tamil.DayOfMonth, r.Tamil.YearName, r.Tamil.YearNumber)

	fmt.Printf("  Rahu Kalam:  %s - %s\n", r.DaySegments.RahuKalam.Start, r.DaySegments.RahuKalam.End)
	fmt.Printf("  Yama Gandam: %s - %s\n", r.DaySegments.YamaGandam.Start, r.DaySegments.YamaGandam.End)
	fmt.Printf("  Kuligai:     %s - %s\n", r.DaySegments.Kuligai.Start, r.DaySegments.Kuligai.End)

	if len(r.Festivals) > 0 {
		fmt.Println("  Festivals:")
		for _, f := range r.Festivals {
			fmt.Printf("    - %s / %s (%s)\n", f.Name.En, f.Name.Ta, f.Type)
		}
	}

	if r.Chandrashtama != nil && r.Chandrashtama.Active {
		fmt.Printf("  Chandrashtama: active, %s - %s\n", r.Chandrashtama.StartHHMM, r.Chandrashtama.EndHHMM)
	}
}
