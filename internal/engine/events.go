package engine

import "github.com/vovakirdan/led-arcade/internal/core"

// SessionEvent represents an event sent from the runner to a session.
type SessionEvent interface {
	sessionEvent()
}

// SnapshotEvent carries the periodic state broadcast.
type SnapshotEvent struct {
	Tick     uint64
	Snapshot core.StateSnapshot
}

func (SnapshotEvent) sessionEvent() {}

// GameChangedEvent is sent when a different game becomes active.
type GameChangedEvent struct {
	GameID string
	Title  string
}

func (GameChangedEvent) sessionEvent() {}

// ModeChangedEvent is sent when the active game switches between AI and manual.
type ModeChangedEvent struct {
	GameID string
	Mode   core.Mode
}

func (ModeChangedEvent) sessionEvent() {}

// GameOverEvent is sent when the active game ends.
type GameOverEvent struct {
	Result GameResult
}

func (GameOverEvent) sessionEvent() {}
