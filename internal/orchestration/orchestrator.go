package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/bignum/bignum"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/parallel"
)

// algorithmRunner names one multiplication path and the threshold that
// forces Mul down it. A threshold of 0 forces FFT for any non-empty
// operand; a threshold above both operand bit-lengths forces schoolbook.
type algorithmRunner struct {
	name      string
	threshold int
}

var algorithms = []algorithmRunner{
	{name: "schoolbook", threshold: 1 << 62},
	{name: "fft", threshold: 0},
}

// RunComparison multiplies a and b under both the schoolbook and FFT paths
// concurrently, using errgroup to join their results. Both paths share ctx
// and check it once before multiplying; a panic or error in one path does not
// cancel the other, since the whole point is to observe both outcomes.
func RunComparison(ctx context.Context, a, b *bignum.BigInt) []CalculationResult {
	results := make([]CalculationResult, len(algorithms))

	// panics collects the first panic from either goroutine; each result's
	// own Err field already carries it, but this logs once for the whole run
	// instead of requiring a caller to scan every result.
	var panics parallel.ErrorCollector

	g, gctx := errgroup.WithContext(ctx)
	for i, algo := range algorithms {
		idx, algo := i, algo
		g.Go(func() error {
			start := time.Now()
			func() {
				defer func() {
					if r := recover(); r != nil {
						err := fmt.Errorf("%s: panic: %v", algo.name, r)
						panics.SetError(err)
						results[idx] = CalculationResult{
							Name: algo.name, Duration: time.Since(start), Err: err,
						}
					}
				}()
				if err := gctx.Err(); err != nil {
					results[idx] = CalculationResult{Name: algo.name, Duration: time.Since(start), Err: err}
					return
				}
				value := a.MulWithThreshold(b, algo.threshold)
				results[idx] = CalculationResult{
					Name: algo.name, Value: value, Duration: time.Since(start),
				}
			}()
			return nil
		})
	}
	_ = g.Wait()
	if err := panics.Err(); err != nil {
		logging.NewDefaultLogger().Error("comparison run had a panic", err)
	}

	return results
}

// AnalyzeComparisonResults sorts results fastest-first, detects disagreement
// between algorithms, and hands the winning result to presenter. It returns
// an application exit code.
func AnalyzeComparisonResults(results []CalculationResult, presenter ResultPresenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var first *CalculationResult
	var firstErr error
	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
			continue
		}
		if first == nil {
			first = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if first == nil {
		fmt.Fprintf(out, "\nno algorithm produced a result: %v\n", firstErr)
		return apperrors.ExitErrorGeneric
	}

	for _, res := range results {
		if res.Err == nil && !res.Value.Equal(first.Value) {
			fmt.Fprintf(out, "\nalgorithm disagreement: %s and %s produced different results\n", first.Name, res.Name)
			return apperrors.ExitErrorMismatch
		}
	}

	presenter.PresentResult(*first, out)
	return apperrors.ExitSuccess
}
