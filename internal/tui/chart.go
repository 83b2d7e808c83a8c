package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bignum/internal/format"
)

// sparklineWidth is how much horizontal space the chart panel reserves for
// each of the CPU/MEM sparkline labels and their history buffer.
const sparklineWidth = 17

// ChartModel renders overall progress (a bar plus ETA) and, when tall
// enough, live CPU/memory sparklines sourced from sysmon samples.
type ChartModel struct {
	value           float64
	averageProgress float64
	eta             time.Duration
	done            bool
	elapsed         time.Duration

	cpuHistory *RingBuffer
	memHistory *RingBuffer

	width  int
	height int
}

// NewChartModel creates a new chart panel.
func NewChartModel() ChartModel {
	return ChartModel{
		cpuHistory: NewRingBuffer(1),
		memHistory: NewRingBuffer(1),
	}
}

// SetSize updates dimensions and resizes the sparkline history buffers to
// fit the new width.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	histWidth := w - sparklineWidth
	if histWidth < 1 {
		histWidth = 1
	}
	c.cpuHistory.Resize(histWidth)
	c.memHistory.Resize(histWidth)
}

// AddDataPoint records one progress sample.
func (c *ChartModel) AddDataPoint(value, averageProgress float64, eta time.Duration) {
	c.value = value
	c.averageProgress = averageProgress
	c.eta = eta
}

// UpdateSysStats records one CPU/memory usage sample (0..100 each).
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpuHistory.Push(cpuPercent)
	c.memHistory.Push(memPercent)
}

// SetDone freezes the chart at a final elapsed duration.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.elapsed = elapsed
}

// Reset clears all progress and history state.
func (c *ChartModel) Reset() {
	c.value = 0
	c.averageProgress = 0
	c.eta = 0
	c.done = false
	c.elapsed = 0
	c.cpuHistory.Reset()
	c.memHistory.Reset()
}

// renderProgressBar renders a filled/empty block bar with a trailing
// percentage. Returns "" when the panel is too narrow to hold one.
func (c ChartModel) renderProgressBar() string {
	barWidth := c.width - 12
	if barWidth < 5 {
		return ""
	}
	filled := int(c.averageProgress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf("%s %s%5.1f%%%s", bar, chartBarStyle.Render(""), c.averageProgress*100, "")
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Progress Chart"))
	b.WriteString("\n")

	bar := c.renderProgressBar()
	if bar != "" {
		b.WriteString(bar)
		b.WriteString("\n")
	}

	etaStr := format.FormatETA(c.eta)
	b.WriteString(metricLabelStyle.Render("ETA: ") + metricValueStyle.Render(etaStr))

	if c.height >= 10 {
		b.WriteString("\n")
		b.WriteString(renderSparklineRow("CPU", c.cpuHistory, cpuSparklineStyle))
		b.WriteString("\n")
		b.WriteString(renderSparklineRow("MEM", c.memHistory, memSparklineStyle))
	}

	return panelStyle.
		Width(c.width - 2).
		Height(c.height - 2).
		Render(b.String())
}

func renderSparklineRow(label string, hist *RingBuffer, style lipgloss.Style) string {
	spark := RenderSparkline(hist.Slice())
	return fmt.Sprintf("%s %s", metricLabelStyle.Render(label+":"), style.Render(spark))
}
