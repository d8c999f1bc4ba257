// Package tui is the Bubble Tea integration for the teapot arcade. It owns
// the terminal loop, key-to-action mapping, and screen rendering; the game
// itself stays pure behind registry.Game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick.
type TickMsg time.Time

// defaultTickRate is used until the game reports its own rate.
const defaultTickRate = 30

// tickCmd schedules the next tick. The rate comes from the game's state
// each tick, so the loop slows down on the title and game-over screens
// without the platform knowing why.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
