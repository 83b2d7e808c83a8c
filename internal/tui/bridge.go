package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/progress"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the bridge goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter drains a calibration progress channel and forwards
// each step as a ProgressMsg.
type TUIProgressReporter struct {
	ref *programRef
}

// DisplayProgress drains progressChan until it closes, sending a ProgressMsg
// per update and a ProgressDoneMsg at the end.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ io.Writer) {
	defer wg.Done()

	p := format.NewProgressWithETA(1)
	for update := range progressChan {
		avg, eta := p.UpdateWithETA(0, update.Fraction())
		t.ref.Send(ProgressMsg{Done: update.Done, Total: update.Total, Value: avg, ETA: eta})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter implements orchestration.ResultPresenter, sending
// results to the TUI instead of writing to stdout.
type TUIResultPresenter struct {
	ref *programRef
}

var _ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)

// PresentComparisonTable sends the comparison results to the TUI.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: results})
}

// PresentResult sends the winning result to the TUI.
func (t *TUIResultPresenter) PresentResult(result orchestration.CalculationResult, _ io.Writer) {
	t.ref.Send(FinalResultMsg{Result: result})
}

// FormatDuration delegates to the shared duration formatter.
func (t *TUIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}
