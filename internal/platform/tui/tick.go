// Package tui provides the Bubble Tea integration for the kite game.
// It handles the terminal UI loop, input mapping, and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the run
// that armed it; ticks from an earlier run are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd arms a single tick for the given run. The model re-arms it after
// every tick while the round is running.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
