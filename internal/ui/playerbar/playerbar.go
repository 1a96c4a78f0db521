// Package playerbar renders the progress and volume gauges shown at the
// bottom of spindle's TUI.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// progressLayout holds the pieces a rendered progress bar is assembled
// from, so the narrow-terminal fallback and the normal bar share the same
// status/time computation instead of duplicating it.
type progressLayout struct {
	status, posStr, durStr string
}

func newProgressLayout(position, duration time.Duration, playing bool) progressLayout {
	status := playSymbol
	if !playing {
		status = pauseSymbol
	}
	return progressLayout{status: status, posStr: formatDuration(position), durStr: formatDuration(duration)}
}

// RenderProgressBar renders a block-style progress bar, e.g.
// "▶  1:23  ▓▓▓▓▓░░░░░  4:56". Terminals too narrow for a bar fall back to
// "status  pos / dur".
func RenderProgressBar(position, duration time.Duration, width int, playing bool) string {
	l := newProgressLayout(position, duration, playing)

	fixedWidth := lipgloss.Width(l.status) + lipgloss.Width(l.posStr) + lipgloss.Width(l.durStr) + 6
	barWidth := width - fixedWidth
	if barWidth < 3 {
		return lipgloss.JoinHorizontal(lipgloss.Center, l.status, "  ", l.posStr, " / ", l.durStr)
	}

	bar := blockBar(progressRatio(position, duration), barWidth)
	return lipgloss.JoinHorizontal(lipgloss.Center, l.status, "  ", l.posStr, "  ", bar, "  ", l.durStr)
}

// progressRatio clamps position/duration into [0,1], treating a
// non-positive duration as no progress rather than dividing by zero.
func progressRatio(position, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	switch {
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}

func blockBar(ratio float64, width int) string {
	filled := min(int(float64(width)*ratio), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// volumeChars represents volume bar characters from low to high.
var volumeChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderVolume renders the volume indicator, e.g. "75% ▆▆▆▆". A volume of
// exactly zero has no separate "muted" flag in this engine, so it is
// rendered with a dimmed bar instead, the same visual cue the bar uses
// for silence.
func RenderVolume(pct uint8, width int) string {
	if pct == 0 {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(strings.Repeat(emptyBlock, width))
		return fmt.Sprintf("%3d%% %s", pct, dim)
	}
	bar := VolumeBar(float64(pct)/100.0, width)
	return fmt.Sprintf("%3d%% %s", pct, VolumeStyle().Render(bar))
}

// VolumeBar creates a horizontal bar representation of volume, picking a
// single fill character by level rather than a gradient across width.
func VolumeBar(volume float64, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(string(volumeChars[volumeCharIndex(volume)]), width)
}

func volumeCharIndex(volume float64) int {
	idx := int(volume * float64(len(volumeChars)-1))
	switch {
	case idx < 0:
		return 0
	case idx >= len(volumeChars):
		return len(volumeChars) - 1
	default:
		return idx
	}
}

// VolumeStyle returns the style for the volume indicator.
func VolumeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
