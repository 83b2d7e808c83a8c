package calibration

import (
	"testing"
)

func TestGenerateQuickFFTThresholds(t *testing.T) {
	t.Parallel()
	thresholds := GenerateQuickFFTThresholds()

	if len(thresholds) < 2 {
		t.Error("Expected multiple quick FFT thresholds")
	}

	t.Logf("Generated %d quick FFT thresholds: %v", len(thresholds), thresholds)
}

func TestEstimateOptimalFFTThreshold(t *testing.T) {
	t.Parallel()
	threshold := EstimateOptimalFFTThreshold()

	if threshold <= 0 {
		t.Errorf("Estimated FFT threshold should be positive: %d", threshold)
	}

	if threshold > 10000000 {
		t.Errorf("Estimated FFT threshold seems too high: %d", threshold)
	}

	t.Logf("Estimated FFT threshold: %d", threshold)
}

func BenchmarkGenerateQuickFFTThresholds(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = GenerateQuickFFTThresholds()
	}
}
