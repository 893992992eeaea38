package ephemeris

import (
	"os"
	"sync"

	"github.com/vsubramaniam/panchangam/internal/log"
)

// EphemerisPathEnv is the environment variable naming the on-disk
// directory containing high-precision ephemeris files (sepl*.se1,
// semo*.se1). When unset, or when the directory can't be opened, Init
// falls back to the analytic provider; it logs at Info level when the
// variable is unset and at Warn level when the path can't be read.
const EphemerisPathEnv = "PANCHANGAM_EPHEMERIS_PATH"

var (
	once     sync.Once
	provider Provider
)

// Init performs the one-time, idempotent, thread-safe selection of the
// ephemeris backend. It is safe to call Init from multiple goroutines;
// only the first call's path is honored. Subsequent calls are no-ops.
func Init() {
	once.Do(func() {
		provider = selectProvider()
	})
}

func selectProvider() Provider {
	path := os.Getenv(EphemerisPathEnv)
	if path == "" {
		log.Infow("ephemeris path not configured, using analytic fallback", "env", EphemerisPathEnv)
		return NewAnalytic()
	}
	if _, err := os.Stat(path); err != nil {
		log.Warnw("ephemeris path unreadable, using analytic fallback", "path", path, "error", err)
		return NewAnalytic()
	}
	// No high-precision backend is bundled with this engine; a
	// configured-but-present path still resolves to the analytic
	// provider today. The capability interface (Provider) is the seam a
	// future sepl*.se1/semo*.se1-backed implementation would plug into.
	log.Infow("ephemeris path configured but no file-backed provider is bundled; using analytic fallback", "path", path)
	return NewAnalytic()
}

// Default returns the process-wide ephemeris provider, initializing it
// on first use with Init's default (environment-driven) selection.
func Default() Provider {
	Init()
	return provider
}
