package orchestration

import (
	"io"
	"time"

	"github.com/agbru/bignum/bignum"
)

// CalculationResult encapsulates the outcome of a single multiplication run
// under one algorithm choice. It is the shared domain type between
// orchestration and presentation.
type CalculationResult struct {
	// Name identifies the algorithm used ("schoolbook" or "fft").
	Name string
	// Value is the computed product. Nil if Err is non-nil.
	Value    *bignum.BigInt
	Duration time.Duration
	Err      error
}

// ResultPresenter decouples the orchestration layer from output formatting,
// allowing CLI, TUI, and test doubles to share the same comparison logic.
//
//go:generate mockgen -source=interfaces.go -destination=mock_presenter.go -package=orchestration
type ResultPresenter interface {
	// PresentComparisonTable displays every algorithm's outcome side by side.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult displays the single agreed-upon value.
	PresentResult(result CalculationResult, out io.Writer)
}
