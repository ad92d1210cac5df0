// Package tui provides the Bubble Tea integration for the flappy arcade.
// It handles the terminal UI loop, input mapping, asset loading and the SSH
// front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent when a requested frame is due.
type FrameMsg struct {
	Time time.Time
}

// TimerMsg is sent when a repeating timer fires.
type TimerMsg struct {
	ID   int
	Time time.Time
}

// frameCmd returns a Bubble Tea command that sends one frame message after
// interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// timerCmd returns a Bubble Tea command that fires timer id once after d.
func timerCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TimerMsg{ID: id, Time: t}
	})
}
