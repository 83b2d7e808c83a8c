// This file implements adaptive threshold generation based on hardware characteristics.

package calibration

import (
	"github.com/agbru/bignum/internal/config"
)

// GenerateQuickFFTThresholds generates a small set of bit-length
// thresholds to benchmark during startup auto-calibration, trading
// coverage for speed.
func GenerateQuickFFTThresholds() []int {
	return []int{0, 750000, 1000000, 1500000}
}

// EstimateOptimalFFTThreshold delegates to config.EstimateOptimalFFTThreshold.
func EstimateOptimalFFTThreshold() int { return config.EstimateOptimalFFTThreshold() }
