package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/orchestration"
)

// logEntry is one rendered line in the scrolling log panel.
type logEntry struct {
	time  time.Time
	style func(string) string
	text  string
}

// LogsModel is a scrolling log of the dashboard's run history.
type LogsModel struct {
	algoNames []string
	entries   []logEntry
	offset    int
	width     int
	height    int
}

// NewLogsModel creates a log panel for the given algorithm names.
func NewLogsModel(algoNames []string) LogsModel {
	return LogsModel{algoNames: algoNames}
}

// SetSize updates dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
}

// AddExecutionConfig logs the resolved configuration for this run.
func (l *LogsModel) AddExecutionConfig(cfg config.AppConfig) {
	l.add(func(s string) string { return logAlgoStyle.Render(s) }, fmt.Sprintf("op=%s base=%d fft_threshold=%d", cfg.Op, cfg.InputBase, cfg.FFTThreshold))
}

// AddProgressEntry logs one calibration-sweep step.
func (l *LogsModel) AddProgressEntry(msg ProgressMsg) {
	l.add(func(s string) string { return logProgressStyle.Render(s) }, fmt.Sprintf("calibration: %d/%d (%.0f%%) ETA %s",
		msg.Done, msg.Total, msg.Value*100, format.FormatETA(msg.ETA)))
}

// AddResults logs the comparison table, fastest first.
func (l *LogsModel) AddResults(results []orchestration.CalculationResult) {
	for _, r := range results {
		if r.Err != nil {
			l.add(func(s string) string { return logErrorStyle.Render(s) }, fmt.Sprintf("%s: %v", r.Name, r.Err))
			continue
		}
		l.add(func(s string) string { return logAlgoStyle.Render(s) }, fmt.Sprintf("%s: %s", r.Name, format.FormatExecutionDuration(r.Duration)))
	}
}

// AddFinalResult logs the winning algorithm.
func (l *LogsModel) AddFinalResult(msg FinalResultMsg) {
	l.add(func(s string) string { return logSuccessStyle.Render(s) }, fmt.Sprintf("winner: %s in %s", msg.Result.Name, format.FormatExecutionDuration(msg.Result.Duration)))
}

// AddError logs a run-ending error.
func (l *LogsModel) AddError(msg ErrorMsg) {
	l.add(func(s string) string { return logErrorStyle.Render(s) }, fmt.Sprintf("error: %v", msg.Err))
}

// Reset clears the log.
func (l *LogsModel) Reset() {
	l.entries = nil
	l.offset = 0
}

// Update handles scroll key messages.
func (l *LogsModel) Update(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if l.offset > 0 {
			l.offset--
		}
	case "down", "j":
		if l.offset < len(l.entries)-1 {
			l.offset++
		}
	case "pgup":
		l.offset -= l.height
		if l.offset < 0 {
			l.offset = 0
		}
	case "pgdown":
		l.offset += l.height
		if l.offset > len(l.entries)-1 {
			l.offset = len(l.entries) - 1
		}
		if l.offset < 0 {
			l.offset = 0
		}
	}
}

func (l *LogsModel) add(style func(string) string, text string) {
	l.entries = append(l.entries, logEntry{time: time.Now(), style: style, text: text})
	if len(l.entries) > l.offset+l.height || l.offset == 0 {
		l.offset = max(0, len(l.entries)-l.height)
	}
}

// renderToHeight renders the log panel clamped to exactly h lines tall.
func (l LogsModel) renderToHeight(h int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Log"))

	start := l.offset
	if start < 0 {
		start = 0
	}
	end := start + h - 1
	if end > len(l.entries) {
		end = len(l.entries)
	}

	for i := start; i < end; i++ {
		e := l.entries[i]
		b.WriteString("\n")
		b.WriteString(logTimeStyle.Render(e.time.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(e.style(e.text))
	}

	return panelStyle.
		Width(l.width - 2).
		Height(h - 2).
		Render(b.String())
}
