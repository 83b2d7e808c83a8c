package config

import (
	"time"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable bigcalc reads, e.g.
// BIGCALC_FFT_THRESHOLD.
const EnvPrefix = "BIGCALC_"

// AppConfig holds every tunable bigcalc accepts, whether from flags,
// environment variables, a calibration profile, or a hardware-adaptive
// estimate. Precedence, highest first (Resolve applies env over flags'
// defaults; app.New applies the profile or the adaptive estimate):
//
//  1. CLI flags
//  2. Environment variables
//  3. Cached calibration profile (on disk, TOML)
//  4. Adaptive hardware estimation
//  5. Static defaults
type AppConfig struct {
	Op string // add, sub, mul, div, pow, cmp
	A  string
	B  string

	InputBase  int
	OutputBase int

	FFTThreshold int // magnitude bit length above which Mul dispatches to FFT

	Timeout            time.Duration
	OutputFile         string
	CalibrationProfile string
	MemoryLimit        string

	Verbose       bool
	Details       bool
	Quiet         bool
	Calibrate     bool
	AutoCalibrate bool
	TUI           bool

	Serve     bool
	ServeAddr string
}

// Default returns the static baseline configuration before any flag, env,
// profile, or adaptive-estimate override is applied.
func Default() AppConfig {
	return AppConfig{
		Op:                 "add",
		InputBase:          10,
		OutputBase:         10,
		FFTThreshold:       0, // 0 means "use adaptive estimate"
		Timeout:            30 * time.Second,
		CalibrationProfile: "~/.bigcalc_calibration.toml",
		ServeAddr:          ":9090",
	}
}

// Resolve applies environment overrides for any flag the user did not set
// explicitly. Callers apply CLI flag values onto cfg before calling Resolve,
// so flags always win over env. A threshold still at its zero value is left
// for app.New, which fills it from the cached calibration profile or, failing
// that, from the adaptive hardware estimate.
func Resolve(cfg AppConfig, fs *pflag.FlagSet) AppConfig {
	applyEnvOverrides(&cfg, fs)
	return cfg
}
