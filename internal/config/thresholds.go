package config

import "runtime"

// Threshold resolution chain (highest priority first):
//   1. CLI flags (--fft-threshold)
//   2. Environment variables (BIGCALC_FFT_THRESHOLD)
//   3. Cached calibration profile (~/.bigcalc_calibration.toml)
//   4. Adaptive hardware estimation (this file)
//   5. Static default in bignum.DefaultFFTThreshold

// ApplyAdaptiveThresholds fills FFTThreshold from a hardware-based estimate
// when it is still at its zero default, preserving any value set via flag,
// env, or calibration profile.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.FFTThreshold == 0 {
		cfg.FFTThreshold = EstimateOptimalFFTThreshold()
	}
	return cfg
}

// EstimateOptimalFFTThreshold provides a heuristic estimate, in bits, of the
// magnitude size above which the FFT convolution path outperforms
// schoolbook multiplication, without running a calibration pass.
func EstimateOptimalFFTThreshold() int {
	wordSize := 32 << (^uint(0) >> 63)
	cores := runtime.NumCPU()

	base := 500000 // 64-bit baseline
	if wordSize != 64 {
		base = 250000
	}
	if cores >= 8 {
		return base / 2 // more cores amortize the FFT setup cost sooner
	}
	return base
}
