// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a frame message at the given rate.
// Simulation ticks are gated separately by the game's own timer.
func tickCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
