package format

import (
	"fmt"
	"strings"
	"time"
)

// ProgressState tracks fractional progress (0..1) across a fixed number of
// independently-progressing tasks and exposes their average.
type ProgressState struct {
	numCalculators int
	progresses     []float64
}

// NewProgressState creates a tracker for n independent tasks.
func NewProgressState(n int) *ProgressState {
	return &ProgressState{
		numCalculators: n,
		progresses:     make([]float64, n),
	}
}

// Update records task index's latest progress fraction. Out-of-range
// indices are ignored.
func (p *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(p.progresses) {
		return
	}
	p.progresses[index] = value
}

// CalculateAverage returns the mean progress across all tracked tasks, or 0
// if there are none.
func (p *ProgressState) CalculateAverage() float64 {
	if len(p.progresses) == 0 {
		return 0
	}
	var sum float64
	for _, v := range p.progresses {
		sum += v
	}
	return sum / float64(len(p.progresses))
}

// ProgressWithETA layers an estimated-time-to-completion calculation on top
// of ProgressState, smoothing the observed completion rate between updates.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	lastUpdate   time.Time
	lastAverage  float64
	progressRate float64 // fraction of total progress completed per second
}

// NewProgressWithETA creates an ETA-tracking wrapper around n independent
// tasks.
func NewProgressWithETA(n int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(n),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records a progress update for one task and recomputes the
// smoothed completion rate, returning the new overall average and ETA.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	now := time.Now()
	dt := now.Sub(p.lastUpdate).Seconds()
	if dt > 0 {
		instantRate := (avg - p.lastAverage) / dt
		if instantRate > 0 {
			if p.progressRate > 0 {
				p.progressRate = 0.7*p.progressRate + 0.3*instantRate
			} else {
				p.progressRate = instantRate
			}
		}
		p.lastAverage = avg
		p.lastUpdate = now
	}

	return avg, p.GetETA()
}

// GetETA estimates remaining time from the current average progress and
// smoothed rate, capped at 24 hours.
func (p *ProgressWithETA) GetETA() time.Duration {
	avg := p.CalculateAverage()
	if p.progressRate <= 0 || avg >= 1 {
		return 0
	}
	remaining := (1 - avg) / p.progressRate
	eta := time.Duration(remaining * float64(time.Second))
	const maxETA = 24 * time.Hour
	if eta > maxETA {
		return maxETA
	}
	return eta
}

// FormatETA renders an ETA duration for display, rounding to whole seconds
// above one second and reporting "calculating..." when no estimate is
// available yet.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}

	h := eta / time.Hour
	m := (eta % time.Hour) / time.Minute
	s := (eta % time.Minute) / time.Second

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ProgressBar renders a fixed-width bar of filled/empty block characters
// for progress in [0,1], clamping out-of-range input.
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	if filled > length {
		filled = length
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA combines a bracketed progress bar, percentage,
// and ETA into a single line.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	bar := ProgressBar(progress, width)
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", bar, progress*100, FormatETA(eta))
}

// FormatNumberString inserts thousands separators into a decimal digit
// string, preserving a leading sign.
func FormatNumberString(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ",")
	if neg {
		return "-" + out
	}
	return out
}
