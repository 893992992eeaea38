// Package config loads the engine's process-wide settings (the Tamil-day
// rule and the festival catalog location) and the festival rule catalog.
// The ephemeris data path is read by pkg/ephemeris itself, and there is
// no ayanamsa setting. Settings are read once at startup (A2) and
// never mutated afterward, the same pay-once discipline pkg/ephemeris
// uses for backend selection.
package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// EphemerisPathEnv names the environment variable carrying the on-disk
// high-precision ephemeris directory. Duplicated here (rather than
// imported from pkg/ephemeris) to keep config free of a dependency on
// the engine internals it configures.
const EphemerisPathEnv = "PANCHANGAM_EPHEMERIS_PATH"

// FestivalCatalogEnv names the environment variable carrying the path
// to a festival rule catalog YAML file. When it is unset and no other
// path is given, no catalog is loaded and no festivals are matched; the
// seed file under testdata is not loaded by default.
const FestivalCatalogEnv = "PANCHANGAM_FESTIVAL_CATALOG"

// TamilDayRule selects which of the two Tamil-day semantics (see
// SPEC_FULL.md's Open Questions) the engine uses.
type TamilDayRule string

const (
	TamilDayRuleSankranti TamilDayRule = "sankranti"
	TamilDayRuleDegree    TamilDayRule = "degree"
)

// Engine holds the process-wide, once-loaded engine configuration.
type Engine struct {
	TamilDayRule    TamilDayRule `yaml:"tamil-day-rule,omitempty"`
	FestivalCatalog string       `yaml:"festival-catalog,omitempty"`
}

// defaultEngine is returned by Load when no config file is supplied.
func defaultEngine() Engine {
	return Engine{TamilDayRule: TamilDayRuleSankranti}
}

// Load reads an Engine config from a YAML file. An empty filename
// returns defaultEngine(), the same "no file, use defaults" fallback
// pkg/ephemeris applies to its own environment-driven selection.
func Load(filename string) (Engine, error) {
	if filename == "" {
		return defaultEngine(), nil
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		return Engine{}, err
	}

	cfg := defaultEngine()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Engine{}, err
	}
	if cfg.TamilDayRule == "" {
		cfg.TamilDayRule = TamilDayRuleSankranti
	}
	return cfg, nil
}
