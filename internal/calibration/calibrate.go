package calibration

import (
	"io"
	"time"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/config"
)

// calibrationResult is one benchmarked FFT threshold and how long a fixed
// multiplication took when forced through it.
type calibrationResult struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// operandDigits is the decimal digit count of the fixed operand pair used
// to benchmark each threshold. Large enough that FFT has a chance to win
// on capable hardware, small enough that a quick calibration run stays
// quick.
const operandDigits = 2_000_000

// benchmarkOperand returns a deterministic operandDigits-digit value:
// 10^operandDigits - 1, i.e. a repunit of nines.
func benchmarkOperand() *bignum.BigInt {
	ten := bignum.FromSigned(10)
	return ten.PowUint(uint64(operandDigits)).Sub(bignum.FromSigned(1))
}

// Run benchmarks each candidate FFT threshold against a fixed operand pair,
// picks the fastest, writes cfg.FFTThreshold with it, persists the winner
// in a calibration profile at profilePath, and reports the run to out.
func Run(cfg config.AppConfig, profilePath string, quick bool, out io.Writer) config.AppConfig {
	return RunWithProgress(cfg, profilePath, quick, out, nil)
}

// RunWithProgress is Run with an optional step callback, invoked after each
// threshold is benchmarked with the number of thresholds completed and the
// total, so a caller like the TUI can render a progress bar.
func RunWithProgress(cfg config.AppConfig, profilePath string, quick bool, out io.Writer, onStep func(done, total int)) config.AppConfig {
	a := benchmarkOperand()
	b := a.Clone()

	thresholds := GenerateQuickFFTThresholds()
	if !quick {
		thresholds = append(thresholds, 250000, 500000, 2000000, 3000000)
	}

	results := make([]calibrationResult, 0, len(thresholds))
	best := thresholds[0]
	var bestDuration time.Duration

	for i, threshold := range thresholds {
		start := time.Now()
		_ = a.MulWithThreshold(b, threshold)
		elapsed := time.Since(start)

		results = append(results, calibrationResult{Threshold: threshold, Duration: elapsed})
		if i == 0 || elapsed < bestDuration {
			best = threshold
			bestDuration = elapsed
		}
		if onStep != nil {
			onStep(i+1, len(thresholds))
		}
	}

	cfg.FFTThreshold = best
	printCalibrationResults(out, results, best)
	printCalibrationOutput(cfg, out)

	profile := NewProfile()
	profile.OptimalFFTThreshold = best
	profile.CalibrationDuration = bestDuration.String()
	_ = profile.SaveProfile(profilePath) // persistence failure just means next run recalibrates

	return cfg
}

// maxProfileAge is how long a cached calibration profile is trusted before
// AutoCalibrate re-runs the sweep instead of reusing it.
const maxProfileAge = 30 * 24 * time.Hour

// LoadCachedCalibration applies a cached, still-valid FFT threshold from the
// profile at profilePath onto cfg, unless the user already set one. The bool
// reports whether a usable cached value was found.
func LoadCachedCalibration(cfg config.AppConfig, profilePath string) (config.AppConfig, bool) {
	if cfg.FFTThreshold != 0 {
		return cfg, false
	}
	profile, loaded := LoadOrCreateProfile(profilePath)
	if !loaded || !profile.IsValid() || profile.IsStale(maxProfileAge) {
		return cfg, false
	}
	cfg.FFTThreshold = profile.OptimalFFTThreshold
	return cfg, true
}

// AutoCalibrate runs a quick calibration sweep and applies its result to
// cfg when cfg.AutoCalibrate is set and no threshold is already fixed.
func AutoCalibrate(cfg config.AppConfig, out io.Writer) config.AppConfig {
	if !cfg.AutoCalibrate || cfg.FFTThreshold != 0 {
		return cfg
	}
	return Run(cfg, cfg.CalibrationProfile, true, out)
}
