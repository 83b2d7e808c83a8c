package orchestration

import (
	"bytes"
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/bignum/bignum"
)

func TestRunComparisonAgrees(t *testing.T) {
	t.Parallel()
	a := bignum.FromSigned(123456789)
	b := bignum.FromSigned(987654321)

	results := RunComparison(context.Background(), a, b)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: unexpected error: %v", r.Name, r.Err)
		}
	}
	if !results[0].Value.Equal(results[1].Value) {
		t.Fatalf("algorithms disagree: %s=%s, %s=%s",
			results[0].Name, results[0].Value.String(),
			results[1].Name, results[1].Value.String())
	}
}

func TestAnalyzeComparisonResultsCallsPresenter(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	presenter := NewMockResultPresenter(ctrl)

	a := bignum.FromSigned(42)
	b := bignum.FromSigned(2)
	results := RunComparison(context.Background(), a, b)

	presenter.EXPECT().PresentComparisonTable(gomock.Any(), gomock.Any())
	presenter.EXPECT().PresentResult(gomock.Any(), gomock.Any())

	var buf bytes.Buffer
	code := AnalyzeComparisonResults(results, presenter, &buf)
	if code != 0 {
		t.Fatalf("expected success exit code, got %d", code)
	}
}

func TestAnalyzeComparisonResultsDetectsMismatch(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	presenter := NewMockResultPresenter(ctrl)

	results := []CalculationResult{
		{Name: "schoolbook", Value: bignum.FromSigned(5)},
		{Name: "fft", Value: bignum.FromSigned(6)},
	}

	presenter.EXPECT().PresentComparisonTable(gomock.Any(), gomock.Any())

	var buf bytes.Buffer
	code := AnalyzeComparisonResults(results, presenter, &buf)
	if code != 3 { // apperrors.ExitErrorMismatch
		t.Fatalf("expected mismatch exit code, got %d", code)
	}
}
