package cli

import (
	"fmt"
	"io"

	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/ui"
)

// ResultPresenter implements orchestration.ResultPresenter for CLI output,
// rendering the schoolbook-vs-FFT comparison as a colorized table.
type ResultPresenter struct {
	Base int // radix to render the winning value in; 0 means base 10
}

var _ orchestration.ResultPresenter = ResultPresenter{}

// PresentComparisonTable displays the comparison summary table with
// algorithm names, durations, and status in a formatted layout.
func (p ResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := 9
	maxDurationLen := 8
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := FormatExecutionDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sAlgorithm%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-9),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s✗ failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✓ success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight returns a string of length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the agreed-upon product chosen from the comparison.
func (p ResultPresenter) PresentResult(result orchestration.CalculationResult, out io.Writer) {
	base := p.Base
	if base == 0 {
		base = 10
	}
	DisplayResult("mul", result.Value, result.Duration, false, base, out)
}
