//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bignum/internal/format"
)

// FormatExecutionDuration delegates to format.FormatExecutionDuration.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges is the number of digits shown at each end of a truncated
	// decimal result.
	DisplayEdges = 25
	// SpinnerRefreshRate is the animation interval for the progress spinner.
	SpinnerRefreshRate = 200 * time.Millisecond
)

// Spinner abstracts a terminal spinner so WithSpinner doesn't depend on
// a specific implementation, easing tests.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start()                    { rs.s.Start() }
func (rs *realSpinner) Stop()                      { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// WithSpinner runs fn while a spinner animates with the given suffix,
// stopping it regardless of how fn returns. Used around long-running
// divisions and multiplications in non-quiet CLI mode.
func WithSpinner(suffix string, quiet bool, fn func()) {
	if quiet {
		fn()
		return
	}
	s := newSpinner()
	s.UpdateSuffix(" " + suffix)
	s.Start()
	defer s.Stop()
	fn()
}
