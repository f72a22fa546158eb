// Package tui provides the Bubble Tea host for the game center: the landing
// view, the game views, the tick chain and the terminal presenter.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks a game view to advance one tick. View and Gen identify the
// chain that scheduled it; a view drops any tick that is not its own current
// generation, so a chain cut by pause, restart, game over or teardown can
// never step a game again.
type TickMsg struct {
	View uint64
	Gen  uint64
	Time time.Time
}

// tickCmd schedules the next tick of a chain.
func tickCmd(interval time.Duration, view, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{View: view, Gen: gen, Time: t}
	})
}
