package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives the simulation. Each tick advances the session once;
// the next tick is scheduled with the session's current interval, so
// the game naturally speeds up as the score grows.
type TickMsg struct {
	At time.Time
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t}
	})
}
