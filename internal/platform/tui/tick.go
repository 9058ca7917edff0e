// Package tui hosts SnakeNeo in a terminal with Bubble Tea. It maps keys
// to simulation commands, feeds real elapsed time into the game, renders
// the screen buffer with a color theme and wires the persistence, replay
// and audio collaborators to the game's events.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the default host frame rate.
const DefaultFPS = 60

// TickMsg is sent once per host frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
