package tui

import "strings"

// FooterModel renders the bottom status/help bar.
type FooterModel struct {
	width   int
	done    bool
	err     bool
	paused  bool
}

// NewFooterModel creates a new footer.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) { f.width = w }

// SetDone marks the run as finished (or not).
func (f *FooterModel) SetDone(done bool) { f.done = done }

// SetError marks the run as having failed (or not).
func (f *FooterModel) SetError(err bool) { f.err = err }

// SetPaused marks the run as paused (or not).
func (f *FooterModel) SetPaused(paused bool) { f.paused = paused }

// View renders the footer.
func (f FooterModel) View() string {
	status := statusRunningStyle.Render("RUNNING")
	switch {
	case f.err:
		status = statusErrorStyle.Render("ERROR")
	case f.done:
		status = statusDoneStyle.Render("DONE")
	case f.paused:
		status = statusPausedStyle.Render("PAUSED")
	}

	help := strings.Join([]string{
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit"),
		footerKeyStyle.Render("space") + footerDescStyle.Render(" pause"),
		footerKeyStyle.Render("r") + footerDescStyle.Render(" reset"),
		footerKeyStyle.Render("↑/↓") + footerDescStyle.Render(" scroll"),
	}, "  ")

	row := status + "  " + help
	return headerStyle.Width(f.width).Render(row)
}
