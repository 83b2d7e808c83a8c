package cli

import (
	"testing"

	"github.com/briandowns/spinner"
)

// mockSpinner records its lifecycle calls instead of animating a terminal.
type mockSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (m *mockSpinner) Start()                    { m.started = true }
func (m *mockSpinner) Stop()                      { m.stopped = true }
func (m *mockSpinner) UpdateSuffix(suffix string) { m.suffix = suffix }

func TestWithSpinner_Quiet(t *testing.T) {
	var sp *mockSpinner
	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner {
		sp = &mockSpinner{}
		return sp
	}
	defer func() { newSpinner = orig }()

	ran := false
	WithSpinner("working...", true, func() { ran = true })

	if !ran {
		t.Error("fn should run even in quiet mode")
	}
	if sp != nil {
		t.Error("quiet mode should never construct a spinner")
	}
}

func TestWithSpinner_NonQuiet(t *testing.T) {
	var sp *mockSpinner
	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner {
		sp = &mockSpinner{}
		return sp
	}
	defer func() { newSpinner = orig }()

	ran := false
	WithSpinner("working...", false, func() { ran = true })

	if !ran {
		t.Error("fn should run")
	}
	if sp == nil {
		t.Fatal("non-quiet mode should construct a spinner")
	}
	if !sp.started || !sp.stopped {
		t.Errorf("spinner should be started and stopped, got started=%v stopped=%v", sp.started, sp.stopped)
	}
	if sp.suffix != " working..." {
		t.Errorf("suffix = %q, want %q", sp.suffix, " working...")
	}
}
