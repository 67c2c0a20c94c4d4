// Package tui runs blockfall modes in a terminal, locally or over SSH.
// Key presses are mapped to actions, expanded by the auto-repeat handler and
// fed to the game once per frame; the game's screen buffer is rendered with
// lipgloss colors.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the simulation by one frame. A model ignores ticks
// scheduled for another epoch, so a game left for the menu stops cleanly.
type TickMsg struct {
	Time  time.Time
	epoch int
}

// frameDuration is the simulated time one tick covers at tickRate.
func frameDuration(tickRate int) time.Duration {
	return time.Second / time.Duration(max(tickRate, 1))
}

// tickCmd schedules the next TickMsg of epoch one frame from now.
func tickCmd(frame time.Duration, epoch int) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, epoch: epoch}
	})
}
