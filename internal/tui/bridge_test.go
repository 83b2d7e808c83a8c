package tui

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/progress"
)

func TestTUIProgressReporter_DrainsChannel(t *testing.T) {
	ref := &programRef{} // nil program - Send is a no-op

	reporter := &TUIProgressReporter{ref: ref}

	ch := make(chan progress.Update, 10)
	var wg sync.WaitGroup
	wg.Add(1)

	ch <- progress.Update{Done: 1, Total: 4}
	ch <- progress.Update{Done: 2, Total: 4}
	ch <- progress.Update{Done: 3, Total: 4}
	ch <- progress.Update{Done: 4, Total: 4}
	close(ch)

	go reporter.DisplayProgress(&wg, ch, io.Discard)
	wg.Wait()
}

func TestTUIProgressReporter_EmptyChannel(t *testing.T) {
	ref := &programRef{}
	reporter := &TUIProgressReporter{ref: ref}

	ch := make(chan progress.Update)
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, io.Discard)
	wg.Wait()
}

func TestTUIResultPresenter_FormatDuration(t *testing.T) {
	ref := &programRef{}
	presenter := &TUIResultPresenter{ref: ref}

	tests := []struct {
		name  string
		input time.Duration
	}{
		{"zero", 0},
		{"microseconds", 500 * time.Microsecond},
		{"milliseconds", 42 * time.Millisecond},
		{"seconds", 2*time.Second + 500*time.Millisecond},
		{"minutes", 3 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := presenter.FormatDuration(tt.input)
			if result == "" {
				t.Errorf("expected non-empty duration format for %v", tt.input)
			}
		})
	}
}

func TestProgramRef_Send_NilProgram(t *testing.T) {
	ref := &programRef{} // program is nil
	// Should not panic
	ref.Send(ProgressMsg{Value: 0.5})
}

func TestProgramRef_Send_Concurrent(t *testing.T) {
	ref := &programRef{} // nil program - Send is a no-op

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ref.Send(ProgressMsg{Value: float64(i) / 100})
		}(i)
	}
	wg.Wait()
}

func TestTUIResultPresenter_PresentComparisonTable(t *testing.T) {
	ref := &programRef{} // nil program — just verify no panic
	presenter := &TUIResultPresenter{ref: ref}

	results := []orchestration.CalculationResult{
		{Name: "schoolbook", Value: bignum.FromSigned(55), Duration: 100 * time.Millisecond},
		{Name: "fft", Value: bignum.FromSigned(55), Duration: 200 * time.Millisecond},
	}
	presenter.PresentComparisonTable(results, nil)
}

func TestTUIResultPresenter_PresentResult(t *testing.T) {
	ref := &programRef{}
	presenter := &TUIResultPresenter{ref: ref}

	result := orchestration.CalculationResult{
		Name:     "schoolbook",
		Value:    bignum.FromSigned(55),
		Duration: 100 * time.Millisecond,
	}
	presenter.PresentResult(result, nil)
}
