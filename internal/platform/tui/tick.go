// Package tui renders the LED grid in a terminal with Bubble Tea, locally or
// over SSH, and maps keys onto runner commands.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/led-arcade/internal/engine"
)

// TickMsg is sent to trigger a local runner step.
type TickMsg time.Time

// softDropReleaseMsg ends the soft drop started by press number seq.
type softDropReleaseMsg struct{ seq uint64 }

// softDropHold is how long one soft drop press keeps fast gravity on.
// Key repeat while holding the key keeps extending it.
const softDropHold = 250 * time.Millisecond

// sessionClosedMsg reports that the panel's session stopped receiving events.
type sessionClosedMsg struct{}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// softDropReleaseCmd sends the release for press seq after softDropHold.
func softDropReleaseCmd(seq uint64) tea.Cmd {
	return tea.Tick(softDropHold, func(time.Time) tea.Msg {
		return softDropReleaseMsg{seq: seq}
	})
}

// waitForEvent returns a command that blocks for the next session event.
func waitForEvent(session *engine.ChannelSession) tea.Cmd {
	return func() tea.Msg {
		select {
		case evt := <-session.Events():
			return evt
		case <-session.Done():
			return sessionClosedMsg{}
		}
	}
}
