// Package tui drives Ball in the terminal with Bubble Tea: it maps key
// presses to held keys, ticks the simulation with wall-clock time, renders
// the cell buffer with lipgloss and serves sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a frame. The model derives the
// elapsed time from consecutive ticks.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
