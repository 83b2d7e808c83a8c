package tui

import (
	"time"

	"github.com/agbru/bignum/internal/orchestration"
)

// TickMsg drives the periodic CPU/memory sampling loop.
type TickMsg time.Time

// MemStatsMsg carries a runtime.MemStats sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapInuse    uint64
	NumGC        uint32
	NumGoroutine int
}

// SysStatsMsg carries a sysmon system-wide CPU/memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// ProgressMsg reports one step of a calibration sweep.
type ProgressMsg struct {
	Done  int
	Total int
	Value float64
	ETA   time.Duration
}

// ProgressDoneMsg signals the progress channel has closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the schoolbook/FFT comparison results.
type ComparisonResultsMsg struct {
	Results []orchestration.CalculationResult
}

// FinalResultMsg carries the winning result.
type FinalResultMsg struct {
	Result orchestration.CalculationResult
}

// ErrorMsg reports a run-ending error.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// CalculationCompleteMsg signals a multiply comparison run has finished.
type CalculationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals the run's context was canceled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
