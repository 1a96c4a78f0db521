package playerbar

import (
	"strings"
	"testing"
	"time"
)

func TestRenderProgressBarNarrowFallsBackToTimes(t *testing.T) {
	got := RenderProgressBar(30*time.Second, 2*time.Minute, 10, true)
	if !strings.Contains(got, "0:30") || !strings.Contains(got, "2:00") {
		t.Errorf("RenderProgressBar narrow output = %q, want both times present", got)
	}
}

func TestRenderProgressBarPausedSymbol(t *testing.T) {
	got := RenderProgressBar(0, time.Minute, 40, false)
	if !strings.HasPrefix(got, pauseSymbol) {
		t.Errorf("RenderProgressBar paused = %q, want prefix %q", got, pauseSymbol)
	}
}

func TestRenderProgressBarFullRatioFillsBar(t *testing.T) {
	got := RenderProgressBar(time.Minute, time.Minute, 40, true)
	if strings.Contains(got, emptyBlock) {
		t.Errorf("RenderProgressBar at 100%% = %q, want no empty blocks", got)
	}
}

func TestRenderVolumeZeroRendersDimmedBar(t *testing.T) {
	got := RenderVolume(0, 4)
	if !strings.Contains(got, strings.Repeat(emptyBlock, 4)) {
		t.Errorf("RenderVolume(0, 4) = %q, want a fully dimmed bar of empty blocks", got)
	}
	if !strings.Contains(got, "0%") {
		t.Errorf("RenderVolume(0, 4) = %q, want the percentage shown", got)
	}
}

func TestRenderVolumeNonZeroUsesLevelBar(t *testing.T) {
	got := RenderVolume(75, 4)
	if strings.Contains(got, strings.Repeat(emptyBlock, 4)) {
		t.Errorf("RenderVolume(75, 4) = %q, want a level bar, not the muted placeholder", got)
	}
}

func TestVolumeBarWidth(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		width  int
		want   int
	}{
		{name: "zero width", volume: 0.5, width: 0, want: 0},
		{name: "normal width", volume: 0.5, width: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VolumeBar(tt.volume, tt.width)
			if len([]rune(got)) != tt.want {
				t.Errorf("VolumeBar(%v, %d) length = %d, want %d", tt.volume, tt.width, len([]rune(got)), tt.want)
			}
		})
	}
}
