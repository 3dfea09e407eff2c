// Package tui runs the sentinel engine in a terminal with Bubble Tea.
// It maps key presses onto the engine's input contract, drives ticks from
// wall-clock time and draws snapshots through lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/f47-sentinel/internal/core"
)

// TickMsg is sent to trigger a simulation tick. It carries the frame time
// so the model can measure the real delta.
type TickMsg time.Time

// tickCmd schedules the next tick at the given frame rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, falling back to the
// nominal frame time for the first tick or a clock that went backwards.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	nominal := core.RuntimeConfig{TickRate: tickRate}.FrameDelta()
	if prev.IsZero() || !now.After(prev) {
		return nominal
	}
	return now.Sub(prev).Seconds()
}
